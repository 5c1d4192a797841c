package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/activity/swimming"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

type memBooks struct {
	settled []string
}

func (m *memBooks) MarkSettled(day string) error { m.settled = append(m.settled, day); return nil }
func (m *memBooks) LastSettledDay() (string, error) {
	if len(m.settled) == 0 {
		return "", nil
	}
	return m.settled[len(m.settled)-1], nil
}

func TestSettleNowBackfillsAbsences(t *testing.T) {
	r := activity.NewRegistry()
	swim := swimming.New()
	require.NoError(t, r.Register(swim))

	threeDaysAgo := datekey.DaysAgo(3)
	_, err := swim.Record(map[string]string{"distance": "1000", "duration": "40"}, threeDaysAgo)
	require.NoError(t, err)

	books := &memBooks{}
	runner := NewRunner(r, books, zap.NewNop())
	runner.SettleNow()

	// 10 on the recorded day, then -5 per silent day, clamped at 0.
	assert.Equal(t, 5.0, swim.ScoreByDate(datekey.DaysAgo(2)))
	assert.Equal(t, 0.0, swim.ScoreByDate(datekey.Today()))
	assert.Equal(t, []string{datekey.Today()}, books.settled)
}

func TestSettleNowIsOncePerDay(t *testing.T) {
	r := activity.NewRegistry()
	require.NoError(t, r.Register(swimming.New()))

	books := &memBooks{}
	runner := NewRunner(r, books, zap.NewNop())
	runner.SettleNow()
	runner.SettleNow()

	assert.Len(t, books.settled, 1)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	runner := NewRunner(activity.NewRegistry(), &memBooks{}, zap.NewNop())
	assert.Error(t, runner.Start("not a schedule"))
}
