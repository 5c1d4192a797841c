// Package activity defines the tracked-activity abstraction and its
// registry. Each activity wraps a scoring engine with a typed day payload
// and exposes a uniform, type-erased surface for the CLI, persistence and
// the composite aggregator.
package activity

import (
	"encoding/json"

	"github.com/gmsas95/fitloop-cli/internal/datekey"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Category groups activities for the composite fat-loss aggregation.
type Category string

const (
	CategoryDiet      Category = "diet"
	CategoryExercise  Category = "exercise"
	CategoryLifestyle Category = "lifestyle"

	// CategoryFocus sits outside the fat-loss composite.
	CategoryFocus Category = "focus"
)

// Feedback is what a record operation reports back for display.
type Feedback struct {
	Score          float64           `json:"score"`
	Ratio          float64           `json:"ratio"`
	RatioIncrement float64           `json:"ratioIncrement"`
	Weighted       float64           `json:"weighted"`
	Threshold      scoring.Threshold `json:"threshold"`
}

// Activity is a single tracked habit with its own scoring state.
type Activity interface {
	Name() string
	Title() string
	Description() string
	Category() Category

	// Record parses string arguments from the CLI, merges the input into
	// today's bucket and returns post-recompute feedback.
	Record(args map[string]string, today datekey.Key) (Feedback, error)

	// Settle backfills absence penalties through today.
	Settle(today datekey.Key)

	ClearAllHistory()

	ScoreByDate(day datekey.Key) float64
	ScoreByWeek(week string) float64
	ScoreByMonth(month string) float64
	WeightedByDate(day datekey.Key) float64
	WeightedByWeek(week string) float64
	WeightedByMonth(month string) float64
	Ratio(day datekey.Key) float64
	RatioIncrement(day datekey.Key) float64
	Level(day datekey.Key) (int, bool)
	HasRecord(day datekey.Key) bool
	FirstRecordedDay() (datekey.Key, bool)

	StreakDays() int
	StreakWeeks() int
	StreakMonths() int

	Thresholds() []scoring.Threshold
	Rules() scoring.Rules

	// Snapshot and Restore move the full engine state across the
	// persistence and export boundary as JSON.
	Snapshot() (json.RawMessage, error)
	Restore(raw json.RawMessage, today datekey.Key) error
}
