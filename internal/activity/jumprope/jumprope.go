// Package jumprope tracks daily jump-rope counts.
package jumprope

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day accumulates the day's jump count.
type Day struct {
	Jumps int `json:"jumps"`
}

// JumpRope is the jump-rope activity.
type JumpRope struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *JumpRope {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "jumprope",
		Rules: scoring.JumpRopeRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			existing.Jumps += in.Jumps
			return existing
		},
		Weigh: func(d Day) float64 { return float64(d.Jumps) },
		Ratio: scoring.RatioHistoricalMax,
	})

	j := &JumpRope{Base: activity.NewBase(
		"jumprope", "Jump Rope", "Daily jump count",
		activity.CategoryExercise, scoring.ProgressThresholds, engine,
	)}
	j.Parse = func(args map[string]string) (Day, error) {
		jumps, err := activity.BoundedIntArg(args, "count", 1, 100000)
		if err != nil {
			return Day{}, err
		}
		return Day{Jumps: jumps}, nil
	}
	return j
}
