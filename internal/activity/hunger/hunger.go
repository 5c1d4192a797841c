// Package hunger tracks tolerated hunger as a discrete level from -2
// (overate) to +2 (comfortably hungry). Same shape as diet control but a
// separate score stream, since appetite discipline and menu discipline
// drift independently.
package hunger

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

const (
	MinLevel = -2
	MaxLevel = 2
)

// Day holds the day's hunger level.
type Day struct {
	Level int `json:"level"`
}

// Hunger is the appetite-discipline activity.
type Hunger struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *Hunger {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:           "hunger",
		Rules:          scoring.HungerRules,
		Merge:          func(_ Day, _ bool, in Day) Day { return in },
		Weigh:          func(d Day) float64 { return float64(d.Level) },
		Ratio:          scoring.RatioBypass,
		Delta:          func(d Day) float64 { return float64(d.Level) * scoring.PointsPerLevel },
		Level:          func(d Day) (int, bool) { return d.Level, true },
		WeightedRollup: scoring.RollupMode,
	})

	h := &Hunger{Base: activity.NewBase(
		"hunger", "Hunger", "Tolerated hunger level for the day",
		activity.CategoryDiet, nil, engine,
	)}
	h.Parse = func(args map[string]string) (Day, error) {
		level, err := activity.BoundedIntArg(args, "level", MinLevel, MaxLevel)
		if err != nil {
			return Day{}, err
		}
		return Day{Level: level}, nil
	}
	return h
}
