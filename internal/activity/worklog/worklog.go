// Package worklog tracks daily focused-work units against a six-unit
// target. Missing a day costs little; the point is the long steady line,
// not the heroic spike.
package worklog

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day accumulates the day's completed units.
type Day struct {
	Units float64 `json:"units"`
}

// WorkLog is the focused-work activity.
type WorkLog struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *WorkLog {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "worklog",
		Rules: scoring.WorkLogRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			existing.Units += in.Units
			return existing
		},
		Weigh: func(d Day) float64 { return d.Units },
		Ratio: scoring.RatioBypass,
		Delta: func(d Day) float64 { return scoring.WorkLogScoreChange(d.Units) },
	})

	w := &WorkLog{Base: activity.NewBase(
		"worklog", "Work Log", "Focused work units for the day",
		activity.CategoryFocus, nil, engine,
	)}
	w.Parse = func(args map[string]string) (Day, error) {
		units, err := activity.PositiveFloatArg(args, "units")
		if err != nil {
			return Day{}, err
		}
		return Day{Units: units}, nil
	}
	return w
}
