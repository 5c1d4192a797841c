// Package workout tracks strength-training sets per exercise. A day's
// effective volume is reps times load times a per-exercise multiplier that
// is inverse to the exercise's historical average load per rep, so light
// high-rep work and heavy low-rep work land on a comparable scale.
package workout

import (
	"sort"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Set is one training set of an exercise.
type Set struct {
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// Day maps exercise name to the sets performed that day.
type Day map[string][]Set

// Multipliers computes the per-exercise multiplier table. Exercises known
// from days before the latest recorded day get max-average / own-average,
// normalized so the table mean is 1. Exercises appearing for the first time
// on the latest day are bootstrapped from the historical global average, or
// from the new exercises' mutual average when no history exists at all.
// The table shifts whenever a new exercise is learned, so every day's
// weighted record must be recomputed against the current table.
func Multipliers(records map[datekey.Key]Day) map[string]float64 {
	if len(records) == 0 {
		return map[string]float64{}
	}

	keys := make([]datekey.Key, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	latest := keys[len(keys)-1]

	pastAvg := averageLoadPerRep(records, func(k datekey.Key) bool { return k < latest })

	table := make(map[string]float64, len(pastAvg))
	if len(pastAvg) > 0 {
		maxAvg := 0.0
		for _, avg := range pastAvg {
			if avg > maxAvg {
				maxAvg = avg
			}
		}
		for ex, avg := range pastAvg {
			if avg > 0 {
				table[ex] = maxAvg / avg
			} else {
				table[ex] = maxAvg
			}
		}
		normalizeMean(table)
	}

	latestAvg := averageLoadPerRep(records, func(k datekey.Key) bool { return k == latest })
	var newAvgs []float64
	for ex, avg := range latestAvg {
		if _, known := table[ex]; !known {
			newAvgs = append(newAvgs, avg)
		}
	}
	if len(newAvgs) == 0 {
		return table
	}

	// Bootstrap anchor: global historical average when any history exists,
	// otherwise the new exercises' own mutual average.
	anchor := 0.0
	if len(pastAvg) > 0 {
		for _, avg := range pastAvg {
			anchor += avg
		}
		anchor /= float64(len(pastAvg))
		if anchor <= 0 {
			anchor = 1
		}
	} else {
		for _, avg := range newAvgs {
			anchor += avg
		}
		anchor /= float64(len(newAvgs))
	}

	for ex, avg := range latestAvg {
		if _, known := table[ex]; known {
			continue
		}
		if avg > 0 {
			table[ex] = anchor / avg
		} else {
			table[ex] = 1
		}
	}
	return table
}

func averageLoadPerRep(records map[datekey.Key]Day, include func(datekey.Key) bool) map[string]float64 {
	sums := make(map[string]float64)
	reps := make(map[string]int)
	for k, day := range records {
		if !include(k) {
			continue
		}
		for ex, sets := range day {
			for _, set := range sets {
				sums[ex] += float64(set.Count) * set.Weight
				reps[ex] += set.Count
			}
		}
	}
	out := make(map[string]float64, len(sums))
	for ex, sum := range sums {
		if reps[ex] > 0 {
			out[ex] = sum / float64(reps[ex])
		} else {
			out[ex] = 0
		}
	}
	return out
}

func normalizeMean(table map[string]float64) {
	total := 0.0
	for _, w := range table {
		total += w
	}
	mean := total / float64(len(table))
	if mean <= 0 {
		return
	}
	for ex := range table {
		table[ex] /= mean
	}
}

// WeighAll recomputes every day's weighted volume against the current
// multiplier table.
func WeighAll(records map[datekey.Key]Day) map[datekey.Key]float64 {
	table := Multipliers(records)
	out := make(map[datekey.Key]float64, len(records))
	for k, day := range records {
		volume := 0.0
		for ex, sets := range day {
			mult, ok := table[ex]
			if !ok {
				mult = 1
			}
			for _, set := range sets {
				volume += float64(set.Count) * set.Weight * mult
			}
		}
		out[k] = volume
	}
	return out
}

// Workout is the strength-training activity.
type Workout struct {
	*activity.Base[Day]
}

// New builds the activity with empty state.
func New() *Workout {
	engine := scoring.NewEngine(scoring.Options[Day]{
		Name:  "workout",
		Rules: scoring.WorkoutRules,
		Merge: func(existing Day, has bool, in Day) Day {
			if !has {
				return in
			}
			for ex, sets := range in {
				existing[ex] = append(existing[ex], sets...)
			}
			return existing
		},
		WeighAll: WeighAll,
		Ratio:    scoring.RatioHistoricalMax,
	})

	w := &Workout{Base: activity.NewBase(
		"workout", "Workout", "Strength training volume per exercise",
		activity.CategoryExercise, scoring.ProgressThresholds, engine,
	)}
	w.Parse = func(args map[string]string) (Day, error) {
		exercise, err := activity.StringArg(args, "exercise")
		if err != nil {
			return nil, err
		}
		count, err := activity.BoundedIntArg(args, "reps", 1, 1000)
		if err != nil {
			return nil, err
		}
		weight, err := activity.FloatArg(args, "weight")
		if err != nil {
			return nil, err
		}
		if weight < 0 {
			return nil, apperrors.New(apperrors.ErrInvalidInput.Code, "argument weight must not be negative")
		}
		return Day{exercise: {{Count: count, Weight: weight}}}, nil
	}
	return w
}

// AddSet records one set directly, used by programmatic callers and tests.
func (w *Workout) AddSet(exercise string, count int, weight float64, today datekey.Key) {
	w.Engine().RecordInput(Day{exercise: {{Count: count, Weight: weight}}}, today)
}
