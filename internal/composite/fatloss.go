// Package composite combines the independent activity score streams into
// the daily fat-loss view: category sums, a total, how many activities saw
// action, and a short-window trend.
package composite

import (
	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

// Trend classifies the recent score direction.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// TrendWindow is the number of days per comparison window and
// TrendThreshold the average-score difference that counts as movement.
const (
	TrendWindow    = 3
	TrendThreshold = 10.0
)

// Metrics is the fat-loss snapshot for one day.
type Metrics struct {
	Day            datekey.Key `json:"day"`
	TotalScore     float64     `json:"totalScore"`
	DietScore      float64     `json:"dietScore"`
	ExerciseScore  float64     `json:"exerciseScore"`
	LifestyleScore float64     `json:"lifestyleScore"`
	RecordCount    int         `json:"recordCount"`
	Trend          Trend       `json:"trend"`
}

// FatLoss reads scores straight from the registry; it owns no state, so the
// metrics are always consistent with the activities' latest recompute.
type FatLoss struct {
	registry *activity.Registry
}

// NewFatLoss builds the aggregator over the given registry.
func NewFatLoss(registry *activity.Registry) *FatLoss {
	return &FatLoss{registry: registry}
}

func (f *FatLoss) tracked() []activity.Activity {
	var out []activity.Activity
	for _, cat := range []activity.Category{activity.CategoryDiet, activity.CategoryExercise, activity.CategoryLifestyle} {
		out = append(out, f.registry.ByCategory(cat)...)
	}
	return out
}

func (f *FatLoss) categorySum(cat activity.Category, day datekey.Key) float64 {
	sum := 0.0
	for _, a := range f.registry.ByCategory(cat) {
		sum += a.ScoreByDate(day)
	}
	return sum
}

// MetricsByDate computes the fat-loss snapshot for an arbitrary day.
func (f *FatLoss) MetricsByDate(day datekey.Key) Metrics {
	diet := f.categorySum(activity.CategoryDiet, day)
	exercise := f.categorySum(activity.CategoryExercise, day)
	lifestyle := f.categorySum(activity.CategoryLifestyle, day)

	count := 0
	for _, a := range f.tracked() {
		if a.ScoreByDate(day) != 0 {
			count++
		}
	}

	return Metrics{
		Day:            day,
		TotalScore:     diet + exercise + lifestyle,
		DietScore:      diet,
		ExerciseScore:  exercise,
		LifestyleScore: lifestyle,
		RecordCount:    count,
		Trend:          f.TrendAt(day),
	}
}

// TrendAt compares the TrendWindow days ending at day against the
// TrendWindow days before them.
func (f *FatLoss) TrendAt(day datekey.Key) Trend {
	total := func(d datekey.Key) float64 {
		sum := 0.0
		for _, a := range f.tracked() {
			sum += a.ScoreByDate(d)
		}
		return sum
	}

	recent, previous := 0.0, 0.0
	d := day
	for i := 0; i < TrendWindow; i++ {
		recent += total(d)
		d = datekey.Prev(d)
	}
	for i := 0; i < TrendWindow; i++ {
		previous += total(d)
		d = datekey.Prev(d)
	}

	diff := (recent - previous) / TrendWindow
	switch {
	case diff > TrendThreshold:
		return TrendImproving
	case diff < -TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
