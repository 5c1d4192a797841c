package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/activity/swimming"
	"github.com/gmsas95/fitloop-cli/internal/composite"
	"github.com/gmsas95/fitloop-cli/internal/todo"
)

func TestDailyStatusRendersEveryActivity(t *testing.T) {
	r := activity.NewRegistry()
	swim := swimming.New()
	require.NoError(t, r.Register(swim))
	_, err := swim.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-01")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DailyStatus(&buf, r, "2025-03-01"))

	out := buf.String()
	assert.Contains(t, out, "Swimming")
	assert.Contains(t, out, "10")
}

func TestFatLossRendersTrend(t *testing.T) {
	r := activity.NewRegistry()
	require.NoError(t, r.Register(swimming.New()))
	m := composite.NewFatLoss(r).MetricsByDate("2025-03-01")

	var buf bytes.Buffer
	require.NoError(t, FatLoss(&buf, m))
	assert.Contains(t, buf.String(), "stable")
}

func TestTodosRendersDueAndOverdue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(3 * time.Hour)
	past := now.Add(-time.Hour)

	items := []todo.Todo{
		{Title: "stretch", Period: todo.PeriodDaily, Streak: 4, Active: true, NextDue: &soon},
		{Title: "review week", Period: todo.PeriodWeekly, Streak: 1, Active: true, NextDue: &past},
		{Title: "never done", Period: todo.PeriodMonthly},
	}

	var buf bytes.Buffer
	require.NoError(t, Todos(&buf, items, now))

	out := buf.String()
	assert.Contains(t, out, "stretch")
	assert.Contains(t, out, "3h00m")
	assert.Contains(t, out, "overdue")
	assert.Contains(t, out, "-")
}

func TestRollupWeekAndMonth(t *testing.T) {
	r := activity.NewRegistry()
	swim := swimming.New()
	require.NoError(t, r.Register(swim))
	_, err := swim.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-03")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Rollup(&buf, r, "2025-W10", "Week"))
	assert.Contains(t, buf.String(), "Swimming")

	buf.Reset()
	require.NoError(t, Rollup(&buf, r, "2025-03", "Month"))
	assert.Contains(t, buf.String(), "Swimming")
}
