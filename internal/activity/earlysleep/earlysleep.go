// Package earlysleep tracks bedtime. Scoring uses fixed clock thresholds;
// the weighted record is minutes of evening saved before midnight, kept for
// charts only, where week and month views average instead of sum.
package earlysleep

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day holds bedtime as minutes after midnight.
type Day struct {
	BedtimeMinutes int `json:"bedtimeMinutes"`
}

// Weigh maps earlier bedtime to higher weight for display.
func Weigh(d Day) float64 {
	w := float64(24*60 - d.BedtimeMinutes)
	if w < 0 {
		return 0
	}
	return w
}

// EarlySleep is the bedtime activity.
type EarlySleep struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *EarlySleep {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "earlysleep",
		Rules: scoring.EarlySleepRules,
		// A later entry corrects the earlier one.
		Merge:          func(_ Day, _ bool, in Day) Day { return in },
		Weigh:          Weigh,
		Ratio:          scoring.RatioBypass,
		Delta:          func(d Day) float64 { return scoring.EarlySleepScoreChange(d.BedtimeMinutes) },
		WeightedRollup: scoring.RollupAverage,
	})

	es := &EarlySleep{Base: activity.NewBase(
		"earlysleep", "Early Sleep", "Bedtime against the 21:00 and 22:00 marks",
		activity.CategoryLifestyle, nil, engine,
	)}
	es.Parse = func(args map[string]string) (Day, error) {
		minutes, err := activity.ClockArg(args, "bedtime")
		if err != nil {
			return Day{}, err
		}
		return Day{BedtimeMinutes: minutes}, nil
	}
	return es
}
