package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsas95/fitloop-cli/internal/activity/dietcontrol"
	"github.com/gmsas95/fitloop-cli/internal/activity/swimming"
)

func TestScoreSeriesTracksEngine(t *testing.T) {
	swim := swimming.New()
	_, err := swim.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-01")
	require.NoError(t, err)

	s := ScoreSeries(swim)
	assert.Equal(t, 10.0, s.ValueByDate("2025-03-01"))
	assert.Equal(t, "10", s.Format(10))
}

func TestDiscreteSeriesUsesLabels(t *testing.T) {
	dc := dietcontrol.New()
	_, err := dc.Record(map[string]string{"level": "-2"}, "2025-03-01")
	require.NoError(t, err)

	s := DiscreteSeries(dc, map[int]string{-2: "blew it", 0: "even", 2: "perfect"})
	assert.True(t, s.Discrete)
	assert.Equal(t, -2.0, s.ValueByDate("2025-03-01"))
	assert.Equal(t, "blew it", s.Format(-2))
	assert.Equal(t, "1", s.Format(1)) // unlabeled level falls through
}

func TestProgressBarActiveThreshold(t *testing.T) {
	swim := swimming.New()
	_, err := swim.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-01")
	require.NoError(t, err)
	_, err = swim.Record(map[string]string{"distance": "900", "duration": "36"}, "2025-03-02")
	require.NoError(t, err)

	p := Progress(swim, "2025-03-02")
	assert.InDelta(t, 0.9, p.Ratio, 1e-9)

	th, ok := p.Active()
	require.True(t, ok)
	assert.Equal(t, "#22c55e", th.Color)
}
