// Package swimming tracks daily swim distance, speed-adjusted so a fast
// short swim can outweigh a slow long one.
package swimming

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day accumulates all swims in one calendar day.
type Day struct {
	Meters  float64 `json:"meters"`
	Minutes float64 `json:"minutes"`
}

// SpeedMultiplier converts meters-per-minute pace into a distance
// multiplier. Bands step down from tempo pace to easy drift.
func SpeedMultiplier(speed float64) float64 {
	switch {
	case speed >= 30:
		return 1.2
	case speed >= 25:
		return 1.0
	case speed >= 20:
		return 0.8
	default:
		return 0.5
	}
}

// Weigh returns the day's speed-adjusted distance.
func Weigh(d Day) float64 {
	if d.Minutes <= 0 {
		return 0
	}
	return d.Meters * SpeedMultiplier(d.Meters/d.Minutes)
}

// Swimming is the swim-tracking activity.
type Swimming struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *Swimming {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "swimming",
		Rules: scoring.SwimmingRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			existing.Meters += in.Meters
			existing.Minutes += in.Minutes
			return existing
		},
		Weigh: Weigh,
		Ratio: scoring.RatioHistoricalMax,
	})

	s := &Swimming{Base: activity.NewBase(
		"swimming", "Swimming", "Daily swim distance, adjusted by pace",
		activity.CategoryExercise, scoring.ProgressThresholds, engine,
	)}
	s.Parse = func(args map[string]string) (Day, error) {
		meters, err := activity.PositiveFloatArg(args, "distance")
		if err != nil {
			return Day{}, err
		}
		minutes, err := activity.PositiveFloatArg(args, "duration")
		if err != nil {
			return Day{}, err
		}
		return Day{Meters: meters, Minutes: minutes}, nil
	}
	return s
}
