// Package dietcontrol tracks how well the day's eating stuck to plan as a
// discrete level from -2 (completely off) to +2 (perfectly on). The level
// maps directly to a score delta; recording again overwrites the earlier
// judgement for the day.
package dietcontrol

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// MinLevel and MaxLevel bound the recordable judgement.
const (
	MinLevel = -2
	MaxLevel = 2
)

// Day holds the day's judgement level.
type Day struct {
	Level int `json:"level"`
}

// DietControl is the diet-adherence activity.
type DietControl struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *DietControl {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "dietcontrol",
		Rules: scoring.DietControlRules,
		// Latest judgement wins; levels are not additive.
		Merge:          func(_ Day, _ bool, in Day) Day { return in },
		Weigh:          func(d Day) float64 { return float64(d.Level) },
		Ratio:          scoring.RatioBypass,
		Delta:          func(d Day) float64 { return float64(d.Level) * scoring.PointsPerLevel },
		Level:          func(d Day) (int, bool) { return d.Level, true },
		WeightedRollup: scoring.RollupMode,
	})

	dc := &DietControl{Base: activity.NewBase(
		"dietcontrol", "Diet Control", "How closely the day's eating stuck to plan",
		activity.CategoryDiet, nil, engine,
	)}
	dc.Parse = func(args map[string]string) (Day, error) {
		level, err := activity.BoundedIntArg(args, "level", MinLevel, MaxLevel)
		if err != nil {
			return Day{}, err
		}
		return Day{Level: level}, nil
	}
	return dc
}
