// Package report renders score tables for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/composite"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
	"github.com/gmsas95/fitloop-cli/internal/scoring"
	"github.com/gmsas95/fitloop-cli/internal/todo"
)

// DailyStatus prints one row per activity for the given day.
func DailyStatus(w io.Writer, registry *activity.Registry, day datekey.Key) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Activity", "Score", "Ratio", "Effort", "Streak", "Note"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, a := range registry.List() {
		note := ""
		if th, ok := scoring.PickThreshold(a.Thresholds(), a.Ratio(day)); ok && a.HasRecord(day) {
			note = th.Message
		}
		data = append(data, []string{
			a.Title(),
			fmt.Sprintf("%.0f", a.ScoreByDate(day)),
			fmt.Sprintf("%.2f", a.Ratio(day)),
			fmt.Sprintf("%.0f", a.WeightedByDate(day)),
			fmt.Sprintf("%d", a.StreakDays()),
			note,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Rollup prints week or month aggregates per activity.
func Rollup(w io.Writer, registry *activity.Registry, bucket string, label string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Activity", label + " score", label + " effort", "Streak"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, a := range registry.List() {
		var score, effort float64
		var streak int
		if label == "Week" {
			score, effort, streak = a.ScoreByWeek(bucket), a.WeightedByWeek(bucket), a.StreakWeeks()
		} else {
			score, effort, streak = a.ScoreByMonth(bucket), a.WeightedByMonth(bucket), a.StreakMonths()
		}
		data = append(data, []string{
			a.Title(),
			fmt.Sprintf("%.0f", score),
			fmt.Sprintf("%.0f", effort),
			fmt.Sprintf("%d", streak),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// FatLoss prints the composite daily snapshot.
func FatLoss(w io.Writer, m composite.Metrics) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Day", "Total", "Diet", "Exercise", "Lifestyle", "Active", "Trend"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	row := []string{
		m.Day,
		fmt.Sprintf("%.0f", m.TotalScore),
		fmt.Sprintf("%.0f", m.DietScore),
		fmt.Sprintf("%.0f", m.ExerciseScore),
		fmt.Sprintf("%.0f", m.LifestyleScore),
		fmt.Sprintf("%d", m.RecordCount),
		string(m.Trend),
	}
	if err := table.Bulk([][]string{row}); err != nil {
		return err
	}
	return table.Render()
}

// Todos prints the periodic todo list with streaks and time remaining.
func Todos(w io.Writer, todos []todo.Todo, now time.Time) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Title", "Period", "Streak", "Due in"})

	var data [][]string
	for i, t := range todos {
		due := "-"
		if t.Active && t.NextDue != nil {
			rem := t.Remaining(now)
			if rem <= 0 {
				due = "overdue"
			} else {
				due = fmt.Sprintf("%dh%02dm", int(rem.Hours()), int(rem.Minutes())%60)
			}
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			t.Title,
			string(t.Period),
			fmt.Sprintf("%d", t.Streak),
			due,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// History prints the last n days of one activity, newest last.
func History(w io.Writer, a activity.Activity, days []datekey.Key) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Day", "Score", "Ratio", "Effort"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range days {
		data = append(data, []string{
			d,
			fmt.Sprintf("%.0f", a.ScoreByDate(d)),
			fmt.Sprintf("%.2f", a.Ratio(d)),
			fmt.Sprintf("%.0f", a.WeightedByDate(d)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
