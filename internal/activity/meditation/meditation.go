// Package meditation tracks daily meditation minutes, scored against the
// personal best like the other effort activities.
package meditation

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day accumulates the day's meditation time.
type Day struct {
	Minutes float64 `json:"minutes"`
}

// Meditation is the meditation activity.
type Meditation struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *Meditation {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "meditation",
		Rules: scoring.MeditationRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			existing.Minutes += in.Minutes
			return existing
		},
		Weigh: func(d Day) float64 { return d.Minutes },
		Ratio: scoring.RatioHistoricalMax,
	})

	m := &Meditation{Base: activity.NewBase(
		"meditation", "Meditation", "Daily meditation minutes",
		activity.CategoryLifestyle, scoring.ProgressThresholds, engine,
	)}
	m.Parse = func(args map[string]string) (Day, error) {
		minutes, err := activity.PositiveFloatArg(args, "minutes")
		if err != nil {
			return Day{}, err
		}
		return Day{Minutes: minutes}, nil
	}
	return m
}
