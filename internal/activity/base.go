package activity

import (
	"encoding/json"

	"github.com/gmsas95/fitloop-cli/internal/datekey"
	apperrors "github.com/gmsas95/fitloop-cli/internal/errors"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Base implements Activity on top of a typed scoring engine. Concrete
// activities embed it and supply the payload type, input parser and
// descriptive metadata.
type Base[T any] struct {
	name        string
	title       string
	description string
	category    Category
	thresholds  []scoring.Threshold

	// Parse turns CLI string arguments into a day payload.
	Parse func(args map[string]string) (T, error)

	engine *scoring.Engine[T]
}

// NewBase wires a typed engine behind the type-erased Activity surface.
func NewBase[T any](name, title, description string, category Category, thresholds []scoring.Threshold, engine *scoring.Engine[T]) *Base[T] {
	return &Base[T]{
		name:        name,
		title:       title,
		description: description,
		category:    category,
		thresholds:  thresholds,
		engine:      engine,
	}
}

// Engine exposes the typed engine to the embedding activity.
func (b *Base[T]) Engine() *scoring.Engine[T] { return b.engine }

func (b *Base[T]) Name() string        { return b.name }
func (b *Base[T]) Title() string       { return b.title }
func (b *Base[T]) Description() string { return b.description }
func (b *Base[T]) Category() Category  { return b.category }

func (b *Base[T]) Record(args map[string]string, today datekey.Key) (Feedback, error) {
	if b.Parse == nil {
		return Feedback{}, apperrors.New(apperrors.ErrInternal.Code, "activity has no input parser")
	}
	input, err := b.Parse(args)
	if err != nil {
		return Feedback{}, err
	}
	b.engine.RecordInput(input, today)
	return b.feedback(today), nil
}

func (b *Base[T]) feedback(day datekey.Key) Feedback {
	fb := Feedback{
		Score:          b.engine.ScoreByDate(day),
		Ratio:          b.engine.Ratio(day),
		RatioIncrement: b.engine.RatioIncrement(day),
		Weighted:       b.engine.WeightedByDate(day),
	}
	if th, ok := scoring.PickThreshold(b.thresholds, fb.Ratio); ok {
		fb.Threshold = th
	}
	return fb
}

func (b *Base[T]) Settle(today datekey.Key) { b.engine.Settle(today) }
func (b *Base[T]) ClearAllHistory()         { b.engine.ClearAllHistory() }

func (b *Base[T]) ScoreByDate(day datekey.Key) float64    { return b.engine.ScoreByDate(day) }
func (b *Base[T]) ScoreByWeek(week string) float64        { return b.engine.ScoreByWeek(week) }
func (b *Base[T]) ScoreByMonth(month string) float64      { return b.engine.ScoreByMonth(month) }
func (b *Base[T]) WeightedByDate(day datekey.Key) float64 { return b.engine.WeightedByDate(day) }
func (b *Base[T]) WeightedByWeek(week string) float64     { return b.engine.WeightedByWeek(week) }
func (b *Base[T]) WeightedByMonth(month string) float64   { return b.engine.WeightedByMonth(month) }
func (b *Base[T]) Ratio(day datekey.Key) float64          { return b.engine.Ratio(day) }
func (b *Base[T]) RatioIncrement(day datekey.Key) float64 { return b.engine.RatioIncrement(day) }
func (b *Base[T]) Level(day datekey.Key) (int, bool)      { return b.engine.Level(day) }
func (b *Base[T]) FirstRecordedDay() (datekey.Key, bool)  { return b.engine.FirstRecordedDay() }

func (b *Base[T]) HasRecord(day datekey.Key) bool {
	_, ok := b.engine.RawRecord(day)
	return ok
}

func (b *Base[T]) StreakDays() int   { return b.engine.StreakDays() }
func (b *Base[T]) StreakWeeks() int  { return b.engine.StreakWeeks() }
func (b *Base[T]) StreakMonths() int { return b.engine.StreakMonths() }

func (b *Base[T]) Thresholds() []scoring.Threshold { return b.thresholds }
func (b *Base[T]) Rules() scoring.Rules            { return b.engine.Rules() }

func (b *Base[T]) Snapshot() (json.RawMessage, error) {
	raw, err := json.Marshal(b.engine.Snapshot())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, "marshal activity state")
	}
	return raw, nil
}

func (b *Base[T]) Restore(raw json.RawMessage, today datekey.Key) error {
	var st scoring.State[T]
	if err := json.Unmarshal(raw, &st); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStateCorrupted.Code, "unmarshal activity state")
	}
	b.engine.Restore(st, today)
	return nil
}
