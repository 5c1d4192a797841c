// Package hydration tracks daily water intake against a fixed milliliter
// goal. Unlike the effort activities the ratio runs against an absolute
// target, capped at 1.0, because drinking twice the goal is not twice as
// good.
package hydration

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// DefaultGoalML is the daily intake target when none is configured.
const DefaultGoalML = 3000.0

// Day accumulates the day's intake.
type Day struct {
	Milliliters float64 `json:"milliliters"`
}

// Hydration is the water-intake activity.
type Hydration struct {
	*activity.Base[Day]
	goalML float64
}

// New builds the activity. goalML <= 0 falls back to the default goal.
func New(goalML float64) *Hydration {
	if goalML <= 0 {
		goalML = DefaultGoalML
	}
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "hydration",
		Rules: scoring.HydrationRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			existing.Milliliters += in.Milliliters
			return existing
		},
		Weigh:  func(d Day) float64 { return d.Milliliters },
		Ratio:  scoring.RatioFixedTarget,
		Target: goalML,
	})

	h := &Hydration{
		Base: activity.NewBase(
			"hydration", "Hydration", "Daily water intake in milliliters",
			activity.CategoryLifestyle, scoring.ProgressThresholds, engine,
		),
		goalML: goalML,
	}
	h.Parse = func(args map[string]string) (Day, error) {
		ml, err := activity.PositiveFloatArg(args, "amount")
		if err != nil {
			return Day{}, err
		}
		return Day{Milliliters: ml}, nil
	}
	return h
}

// GoalML returns the configured daily target.
func (h *Hydration) GoalML() float64 { return h.goalML }
