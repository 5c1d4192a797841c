// Package scoring implements the generic activity score engine: per-day raw
// records are reduced to a weighted record, compared against history or a
// fixed target, and folded into a clamped running score with absence
// penalties filling unrecorded days.
package scoring

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

// RatioMode selects how a day's weighted record becomes a ratio.
type RatioMode int

const (
	// RatioHistoricalMax divides today's weighted record by the best
	// strictly-earlier day. The first recorded day gets the initial score.
	RatioHistoricalMax RatioMode = iota
	// RatioFixedTarget divides by an absolute target and caps at 1.0.
	RatioFixedTarget
	// RatioBypass skips the ratio pipeline; the score delta comes straight
	// from the day's raw record.
	RatioBypass
)

// State is the full serializable per-activity state. It contains plain data
// only so the persistence boundary can round-trip it as JSON.
type State[T any] struct {
	Records         map[datekey.Key]T       `json:"records"`
	WeightedRecords map[datekey.Key]float64 `json:"weightedRecords"`
	Scores          map[datekey.Key]float64 `json:"scores"`
	Ratios          map[datekey.Key]float64 `json:"ratios"`
	RatioIncrements map[datekey.Key]float64 `json:"ratioIncrements"`
}

// NewState returns an empty state with all maps allocated.
func NewState[T any]() State[T] {
	return State[T]{
		Records:         make(map[datekey.Key]T),
		WeightedRecords: make(map[datekey.Key]float64),
		Scores:          make(map[datekey.Key]float64),
		Ratios:          make(map[datekey.Key]float64),
		RatioIncrements: make(map[datekey.Key]float64),
	}
}

func (s *State[T]) ensure() {
	if s.Records == nil {
		s.Records = make(map[datekey.Key]T)
	}
	if s.WeightedRecords == nil {
		s.WeightedRecords = make(map[datekey.Key]float64)
	}
	if s.Scores == nil {
		s.Scores = make(map[datekey.Key]float64)
	}
	if s.Ratios == nil {
		s.Ratios = make(map[datekey.Key]float64)
	}
	if s.RatioIncrements == nil {
		s.RatioIncrements = make(map[datekey.Key]float64)
	}
}

// Options parameterizes an Engine for one activity.
type Options[T any] struct {
	Name  string
	Rules Rules

	// Merge folds a new input into the existing day bucket. hasExisting is
	// false on the first input of the day.
	Merge func(existing T, hasExisting bool, input T) T

	// Weigh derives the day's weighted record from its raw record. Ignored
	// when WeighAll is set.
	Weigh func(day T) float64

	// WeighAll recomputes every day's weighted record from the full record
	// set. Required for activities whose weighting depends on history
	// (workout exercise multipliers shift retroactively).
	WeighAll func(records map[datekey.Key]T) map[datekey.Key]float64

	Ratio RatioMode

	// Target is the fixed ratio denominator for RatioFixedTarget.
	Target float64

	// Delta supplies the per-day score change for RatioBypass.
	Delta func(day T) float64

	// Level extracts a discrete level from a day record, for mode rollups
	// and discrete chart series. ok=false when the record carries no level.
	Level func(day T) (level int, ok bool)

	// WeightedRollup selects how weighted records aggregate into
	// week/month buckets. Scores always roll up as sums.
	WeightedRollup RollupKind
}

// Engine is the per-activity score state machine. All operations are
// synchronous; a coarse mutex makes each full recompute atomic relative to
// readers. The scoring path never returns an error: missing data defaults to
// zero or routes into first-day logic.
type Engine[T any] struct {
	mu   sync.Mutex
	opts Options[T]
	st   State[T]
}

// NewEngine builds an engine with empty state.
func NewEngine[T any](opts Options[T]) *Engine[T] {
	return &Engine[T]{opts: opts, st: NewState[T]()}
}

// Name returns the activity name the engine was built for.
func (e *Engine[T]) Name() string { return e.opts.Name }

// Rules exposes the engine's rule set for display surfaces.
func (e *Engine[T]) Rules() Rules { return e.opts.Rules }

// RecordInput merges input into today's bucket and recomputes the full score
// history. Multiple same-day calls accumulate.
func (e *Engine[T]) RecordInput(input T, today datekey.Key) {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.st.Records[today]
	if e.opts.Merge != nil {
		e.st.Records[today] = e.opts.Merge(existing, ok, input)
	} else {
		e.st.Records[today] = input
	}
	e.recompute(today, true)
}

// Settle backfills absence penalties up to today without recording anything.
// Run by the daily scheduler so every calendar day has a score.
func (e *Engine[T]) Settle(today datekey.Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recompute(today, false)
}

// ClearAllHistory irreversibly empties every map.
func (e *Engine[T]) ClearAllHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st = NewState[T]()
}

// Snapshot returns a deep copy of the state for persistence and export.
// Records go through a JSON round trip so reference-typed payloads (the
// workout day map) cannot be mutated by a later same-day merge after the
// snapshot was handed out.
func (e *Engine[T]) Snapshot() State[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := NewState[T]()
	out.Records = cloneRecords(e.st.Records)
	for k, v := range e.st.WeightedRecords {
		out.WeightedRecords[k] = v
	}
	for k, v := range e.st.Scores {
		out.Scores[k] = v
	}
	for k, v := range e.st.Ratios {
		out.Ratios[k] = v
	}
	for k, v := range e.st.RatioIncrements {
		out.RatioIncrements[k] = v
	}
	return out
}

func cloneRecords[T any](src map[datekey.Key]T) map[datekey.Key]T {
	out := make(map[datekey.Key]T, len(src))
	raw, err := json.Marshal(src)
	if err == nil {
		err = json.Unmarshal(raw, &out)
	}
	if err != nil {
		// State holds plain serializable data, so this path should not be
		// reachable; a shallow copy is still better than losing the records.
		for k, v := range src {
			out[k] = v
		}
	}
	return out
}

// Restore replaces the engine state and recomputes the full history so
// derived maps are consistent with the records that were loaded.
func (e *Engine[T]) Restore(st State[T], today datekey.Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st.ensure()
	e.st = st
	if len(e.st.Records) > 0 {
		e.recompute(today, false)
	}
}

// recompute walks every calendar day from the earliest record through today,
// refreshing weighted records, gap-filling absence penalties and reapplying
// the ratio and score rules. Score history is a deterministic function of
// the full record set.
func (e *Engine[T]) recompute(today datekey.Key, isInput bool) {
	if e.opts.WeighAll != nil {
		e.st.WeightedRecords = e.opts.WeighAll(e.st.Records)
	} else if e.opts.Weigh != nil {
		for k, rec := range e.st.Records {
			e.st.WeightedRecords[k] = e.opts.Weigh(rec)
		}
	}

	keys := make([]datekey.Key, 0, len(e.st.Records))
	for k := range e.st.Records {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	start := keys[0]
	if start > today {
		return
	}

	rules := e.opts.Rules
	clamp := func(v float64) float64 {
		if v < rules.MinScore {
			return rules.MinScore
		}
		return v
	}

	// Synthetic baseline: the day before the first record scores zero.
	if _, ok := e.st.Scores[datekey.Prev(start)]; !ok {
		e.st.Scores[datekey.Prev(start)] = rules.MinScore
	}

	prevRatio := e.st.Ratios[today]

	seenRecorded := false
	for day := start; day <= today; day = datekey.Next(day) {
		prev := e.st.Scores[datekey.Prev(day)]

		rec, has := e.st.Records[day]
		if !has {
			e.st.Scores[day] = clamp(prev + rules.AbsencePenalty)
			continue
		}

		switch e.opts.Ratio {
		case RatioBypass:
			e.st.Scores[day] = clamp(prev + e.opts.Delta(rec))

		case RatioFixedTarget:
			ratio := 0.0
			if e.opts.Target > 0 {
				ratio = e.st.WeightedRecords[day] / e.opts.Target
			}
			if ratio > 1 {
				ratio = 1
			}
			e.st.Ratios[day] = ratio
			e.st.Scores[day] = clamp(prev + rules.ScoreChange(ratio))

		default: // RatioHistoricalMax
			maxPast := e.maxWeightedBefore(day)
			if !seenRecorded || maxPast == 0 {
				// First recorded day (or degenerate zero history):
				// fixed initial score, ratio pinned to zero.
				e.st.Scores[day] = rules.InitialScore
				e.st.Ratios[day] = 0
				break
			}
			ratio := e.st.WeightedRecords[day] / maxPast
			e.st.Ratios[day] = ratio
			e.st.Scores[day] = clamp(prev + rules.ScoreChange(ratio))
		}
		seenRecorded = true
	}

	// RatioIncrement captures how far this single input moved today's
	// ratio, for "progress made right now" display only.
	if isInput {
		e.st.RatioIncrements[today] = e.st.Ratios[today] - prevRatio
	}
}

// maxWeightedBefore returns the best weighted record strictly before day,
// considering recorded days only.
func (e *Engine[T]) maxWeightedBefore(day datekey.Key) float64 {
	max := 0.0
	for k := range e.st.Records {
		if k >= day {
			continue
		}
		if w := e.st.WeightedRecords[k]; w > max {
			max = w
		}
	}
	return max
}

// ==================== Read accessors ====================

// RawRecord returns the day's raw record. ok is false when nothing was
// recorded; callers must not coerce that to a zero value for display.
func (e *Engine[T]) RawRecord(day datekey.Key) (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.st.Records[day]
	return rec, ok
}

// HasRecords reports whether any day has been recorded.
func (e *Engine[T]) HasRecords() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.st.Records) > 0
}

// FirstRecordedDay returns the earliest recorded day.
func (e *Engine[T]) FirstRecordedDay() (datekey.Key, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	first := ""
	for k := range e.st.Records {
		if first == "" || k < first {
			first = k
		}
	}
	return first, first != ""
}

// ScoreByDate returns the day's score, zero when undefined.
func (e *Engine[T]) ScoreByDate(day datekey.Key) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Scores[day]
}

// WeightedByDate returns the day's weighted record, zero when undefined.
func (e *Engine[T]) WeightedByDate(day datekey.Key) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.WeightedRecords[day]
}

// Ratio returns the day's ratio against history or target.
func (e *Engine[T]) Ratio(day datekey.Key) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Ratios[day]
}

// RatioIncrement returns how much the last input moved the day's ratio.
func (e *Engine[T]) RatioIncrement(day datekey.Key) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.RatioIncrements[day]
}

// Level returns the day's discrete level when the activity defines one.
func (e *Engine[T]) Level(day datekey.Key) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.opts.Level == nil {
		return 0, false
	}
	rec, ok := e.st.Records[day]
	if !ok {
		return 0, false
	}
	return e.opts.Level(rec)
}

// ScoreByWeek sums daily scores over the week bucket.
func (e *Engine[T]) ScoreByWeek(week string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SumByBucket(e.st.Scores, datekey.WeekOfKey)[week]
}

// ScoreByMonth sums daily scores over the month bucket.
func (e *Engine[T]) ScoreByMonth(month string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SumByBucket(e.st.Scores, datekey.MonthOfKey)[month]
}

// WeightedByWeek rolls weighted records into the week bucket using the
// activity's rollup kind.
func (e *Engine[T]) WeightedByWeek(week string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weightedRollup(datekey.WeekOfKey)[week]
}

// WeightedByMonth rolls weighted records into the month bucket.
func (e *Engine[T]) WeightedByMonth(month string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weightedRollup(datekey.MonthOfKey)[month]
}

func (e *Engine[T]) weightedRollup(bucket func(datekey.Key) string) map[string]float64 {
	switch e.opts.WeightedRollup {
	case RollupAverage:
		return AverageByBucket(e.st.WeightedRecords, bucket)
	case RollupMode:
		levels := make(map[datekey.Key]int)
		if e.opts.Level != nil {
			for k, rec := range e.st.Records {
				if lvl, ok := e.opts.Level(rec); ok {
					levels[k] = lvl
				}
			}
		}
		modes := ModeByBucket(levels, bucket)
		out := make(map[string]float64, len(modes))
		for b, lvl := range modes {
			out[b] = float64(lvl)
		}
		return out
	default:
		return SumByBucket(e.st.WeightedRecords, bucket)
	}
}

// StreakDays counts consecutive strictly-increasing daily scores walking
// back from the most recent scored day.
func (e *Engine[T]) StreakDays() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ConsecutiveGrowth(e.st.Scores)
}

// StreakWeeks counts consecutive strictly-increasing weekly score sums.
func (e *Engine[T]) StreakWeeks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ConsecutiveGrowth(SumByBucket(e.st.Scores, datekey.WeekOfKey))
}

// StreakMonths counts consecutive strictly-increasing monthly score sums.
func (e *Engine[T]) StreakMonths() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ConsecutiveGrowth(SumByBucket(e.st.Scores, datekey.MonthOfKey))
}

// ScoreDiff returns score[to] - score[from]; ok is false when either day has
// no score yet.
func (e *Engine[T]) ScoreDiff(from, to datekey.Key) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, okA := e.st.Scores[from]
	b, okB := e.st.Scores[to]
	if !okA || !okB {
		return 0, false
	}
	return b - a, true
}
