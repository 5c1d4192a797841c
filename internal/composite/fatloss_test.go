package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsas95/fitloop-cli/internal/activity"
	"github.com/gmsas95/fitloop-cli/internal/activity/dietcontrol"
	"github.com/gmsas95/fitloop-cli/internal/activity/swimming"
	"github.com/gmsas95/fitloop-cli/internal/activity/worklog"
)

func newTestRegistry(t *testing.T) *activity.Registry {
	t.Helper()
	r := activity.NewRegistry()
	require.NoError(t, r.Register(dietcontrol.New()))
	require.NoError(t, r.Register(swimming.New()))
	require.NoError(t, r.Register(worklog.New()))
	return r
}

func TestMetricsSumsByCategory(t *testing.T) {
	r := newTestRegistry(t)
	diet, _ := r.Get("dietcontrol")
	swim, _ := r.Get("swimming")

	_, err := diet.Record(map[string]string{"level": "2"}, "2025-03-10")
	require.NoError(t, err)
	_, err = swim.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-10")
	require.NoError(t, err)

	m := NewFatLoss(r).MetricsByDate("2025-03-10")
	assert.Equal(t, 10.0, m.DietScore)
	assert.Equal(t, 10.0, m.ExerciseScore)
	assert.Equal(t, 0.0, m.LifestyleScore)
	assert.Equal(t, 20.0, m.TotalScore)
	assert.Equal(t, 2, m.RecordCount)
}

func TestFocusActivitiesStayOutOfComposite(t *testing.T) {
	r := newTestRegistry(t)
	work, _ := r.Get("worklog")
	_, err := work.Record(map[string]string{"units": "8"}, "2025-03-10")
	require.NoError(t, err)

	m := NewFatLoss(r).MetricsByDate("2025-03-10")
	assert.Equal(t, 0.0, m.TotalScore)
	assert.Equal(t, 0, m.RecordCount)
}

func TestTrendImproving(t *testing.T) {
	r := newTestRegistry(t)
	diet, _ := r.Get("dietcontrol")

	// Six quiet days then three strong ones pushes the recent window well
	// past the prior window.
	days := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
	for _, d := range days {
		_, err := diet.Record(map[string]string{"level": "2"}, d)
		require.NoError(t, err)
	}

	f := NewFatLoss(r)
	assert.Equal(t, TrendImproving, f.TrendAt("2025-03-10"))
}

func TestTrendStableWhenQuiet(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, TrendStable, NewFatLoss(r).TrendAt("2025-03-10"))
}
