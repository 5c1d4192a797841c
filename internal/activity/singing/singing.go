// Package singing tracks whether the day's vocal practice succeeded. The
// outcome maps straight to a score delta and silent days cost nothing, so
// the score is a pure win/loss ledger over practiced days.
package singing

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Day holds the day's practice outcome.
type Day struct {
	Success bool `json:"success"`
}

// Singing is the vocal-practice activity.
type Singing struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *Singing {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "singing",
		Rules: scoring.SingingRules,
		// The latest verdict for the day wins.
		Merge: func(_ Day, _ bool, in Day) Day { return in },
		// Weekly sum counts successful practice days.
		Weigh: func(d Day) float64 {
			if d.Success {
				return 1
			}
			return 0
		},
		Ratio: scoring.RatioBypass,
		Delta: func(d Day) float64 {
			if d.Success {
				return scoring.SingingSuccessBonus
			}
			return scoring.SingingFailPenalty
		},
	})

	s := &Singing{Base: activity.NewBase(
		"singing", "Singing", "Daily vocal practice outcome",
		activity.CategoryFocus, nil, engine,
	)}
	s.Parse = func(args map[string]string) (Day, error) {
		result, err := activity.StringArg(args, "result")
		if err != nil {
			return Day{}, err
		}
		switch result {
		case "success", "ok":
			return Day{Success: true}, nil
		case "fail", "failed":
			return Day{Success: false}, nil
		default:
			return Day{}, apperrors.New(apperrors.ErrInvalidInput.Code,
				"argument result must be success or fail")
		}
	}
	return s
}
