// Package chart adapts activity state into data providers for the
// presentation surfaces: a left axis for scores, an optional right axis for
// the raw or weighted metric, and colored progress bars.
package chart

import (
	"fmt"
	"strconv"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
)

// Series is one chart axis over calendar buckets.
type Series struct {
	Label        string
	ValueByDate  func(day datekey.Key) float64
	ValueByWeek  func(week string) float64
	ValueByMonth func(month string) float64
	FormatValue  func(v float64) string

	// Discrete marks an ordinal series; Labels maps each level to its
	// display string.
	Discrete bool
	Labels   map[int]string
}

// Format renders a value using the series hook, with a plain fallback.
func (s Series) Format(v float64) string {
	if s.Discrete {
		if label, ok := s.Labels[int(v)]; ok {
			return label
		}
	}
	if s.FormatValue != nil {
		return s.FormatValue(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ScoreSeries is the left-axis score line for an activity.
func ScoreSeries(a activity.Activity) Series {
	return Series{
		Label:        a.Title() + " score",
		ValueByDate:  a.ScoreByDate,
		ValueByWeek:  a.ScoreByWeek,
		ValueByMonth: a.ScoreByMonth,
		FormatValue:  func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}
}

// WeightedSeries is the right-axis effort line for an activity.
func WeightedSeries(a activity.Activity, unit string) Series {
	return Series{
		Label:        a.Title() + " " + unit,
		ValueByDate:  a.WeightedByDate,
		ValueByWeek:  a.WeightedByWeek,
		ValueByMonth: a.WeightedByMonth,
		FormatValue:  func(v float64) string { return fmt.Sprintf("%.0f %s", v, unit) },
	}
}

// DiscreteSeries is a right-axis ordinal line using the activity's level.
func DiscreteSeries(a activity.Activity, labels map[int]string) Series {
	byDate := func(day datekey.Key) float64 {
		if lvl, ok := a.Level(day); ok {
			return float64(lvl)
		}
		return 0
	}
	return Series{
		Label:        a.Title() + " level",
		ValueByDate:  byDate,
		ValueByWeek:  a.WeightedByWeek,
		ValueByMonth: a.WeightedByMonth,
		Discrete:     true,
		Labels:       labels,
	}
}

// ProgressBar is the colored daily progress readout for one activity.
type ProgressBar struct {
	Ratio          float64             `json:"ratio"`
	RatioIncrement float64             `json:"ratioIncrement"`
	Thresholds     []scoring.Threshold `json:"thresholds"`
}

// Progress builds the progress-bar payload for a day.
func Progress(a activity.Activity, day datekey.Key) ProgressBar {
	return ProgressBar{
		Ratio:          a.Ratio(day),
		RatioIncrement: a.RatioIncrement(day),
		Thresholds:     a.Thresholds(),
	}
}

// Active returns the threshold the ratio currently sits in.
func (p ProgressBar) Active() (scoring.Threshold, bool) {
	return scoring.PickThreshold(p.Thresholds, p.Ratio)
}
