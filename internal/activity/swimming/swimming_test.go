package swimming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedMultiplierBands(t *testing.T) {
	assert.Equal(t, 1.2, SpeedMultiplier(32))
	assert.Equal(t, 1.2, SpeedMultiplier(30))
	assert.Equal(t, 1.0, SpeedMultiplier(25))
	assert.Equal(t, 0.8, SpeedMultiplier(20))
	assert.Equal(t, 0.5, SpeedMultiplier(19.9))
}

func TestWeighNeutralPaceKeepsDistance(t *testing.T) {
	// 1000m in 40min is exactly 25 m/min: multiplier 1.
	assert.Equal(t, 1000.0, Weigh(Day{Meters: 1000, Minutes: 40}))
}

func TestWeighFastPaceBoostsDistance(t *testing.T) {
	assert.InDelta(t, 1200.0, Weigh(Day{Meters: 1000, Minutes: 30}), 1e-9)
}

func TestWeighZeroDuration(t *testing.T) {
	assert.Equal(t, 0.0, Weigh(Day{Meters: 1000}))
}

func TestBeatPersonalBestScoresTopBand(t *testing.T) {
	s := New()
	fb, err := s.Record(map[string]string{"distance": "1000", "duration": "40"}, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, 10.0, fb.Score)

	fb, err = s.Record(map[string]string{"distance": "1500", "duration": "60"}, "2025-03-02")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, fb.Ratio, 1e-9)
	assert.Equal(t, 20.0, fb.Score)
	assert.Equal(t, "#3b82f6", fb.Threshold.Color)
}

func TestRecordRejectsBadInput(t *testing.T) {
	s := New()
	_, err := s.Record(map[string]string{"distance": "-5", "duration": "40"}, "2025-03-01")
	assert.Error(t, err)

	_, err = s.Record(map[string]string{"distance": "1000"}, "2025-03-01")
	assert.Error(t, err)
}
