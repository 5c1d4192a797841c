package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/config"
	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	a, err := New(cfg, zap.NewNop(), "test")
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestRegisterActivitiesCoversAll(t *testing.T) {
	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	r := activity.NewRegistry()
	require.NoError(t, RegisterActivities(cfg, r))

	assert.Equal(t, []string{
		"workout", "swimming", "jumprope",
		"dietcontrol", "hunger", "hydration",
		"earlysleep", "meditation", "worklog",
		"singing",
	}, r.Names())
}

func TestRecordInputPersistsAcrossRestart(t *testing.T) {
	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	a, err := New(cfg, zap.NewNop(), "test")
	require.NoError(t, err)

	fb, err := a.RecordInput("swimming", map[string]string{"distance": "1000", "duration": "40"})
	require.NoError(t, err)
	assert.Equal(t, 10.0, fb.Score)

	a.Close()

	reopened, err := New(cfg, zap.NewNop(), "test")
	require.NoError(t, err)
	defer reopened.Close()

	swim, ok := reopened.Registry.Get("swimming")
	require.True(t, ok)
	assert.Equal(t, 10.0, swim.ScoreByDate(datekey.Today()))
}

func TestRecordInputUnknownActivity(t *testing.T) {
	a := newTestApp(t)
	_, err := a.RecordInput("juggling", map[string]string{"balls": "3"})
	assert.Error(t, err)
}

func TestRecordInputJournals(t *testing.T) {
	a := newTestApp(t)
	_, err := a.RecordInput("hydration", map[string]string{"amount": "500"})
	require.NoError(t, err)

	events, err := a.Store.InputsByDay("hydration", datekey.Today())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "hydration", events[0].Activity)
}

func TestClearHistoryWipesEverything(t *testing.T) {
	a := newTestApp(t)
	_, err := a.RecordInput("jumprope", map[string]string{"count": "500"})
	require.NoError(t, err)

	require.NoError(t, a.ClearHistory("jumprope"))

	jr, _ := a.Registry.Get("jumprope")
	assert.False(t, jr.HasRecord(datekey.Today()))

	events, err := a.Store.InputsByDay("jumprope", datekey.Today())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestExportImportThroughApp(t *testing.T) {
	a := newTestApp(t)
	_, err := a.RecordInput("meditation", map[string]string{"minutes": "20"})
	require.NoError(t, err)

	raw, err := a.ExportActivity("meditation")
	require.NoError(t, err)

	require.NoError(t, a.ClearHistory("meditation"))
	res := a.ImportActivity("meditation", raw)
	require.True(t, res.Success, res.Message)

	med, _ := a.Registry.Get("meditation")
	assert.Equal(t, 10.0, med.ScoreByDate(datekey.Today()))
}

func TestSettleAllPersists(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.SettleAll())

	day, err := a.Store.LastSettledDay()
	require.NoError(t, err)
	assert.Equal(t, datekey.Today(), day)
}
