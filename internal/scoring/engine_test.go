package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

type distanceDay struct {
	Meters float64 `json:"meters"`
}

func newDistanceEngine() *Engine[distanceDay] {
	return NewEngine(Options[distanceDay]{
		Name:  "swimming",
		Rules: SwimmingRules,
		Merge: func(existing distanceDay, has bool, in distanceDay) distanceDay {
			if !has {
				return in
			}
			existing.Meters += in.Meters
			return existing
		},
		Weigh: func(d distanceDay) float64 { return d.Meters },
		Ratio: RatioHistoricalMax,
	})
}

func TestFirstRecordedDayGetsInitialScore(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 800}, "2025-03-01")

	assert.Equal(t, 10.0, e.ScoreByDate("2025-03-01"))
	assert.Equal(t, 0.0, e.Ratio("2025-03-01"))
}

func TestRatioAgainstHistoricalMax(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 1500}, "2025-03-02")

	// 1500 / 1000 beats the top band.
	assert.InDelta(t, 1.5, e.Ratio("2025-03-02"), 1e-9)
	assert.Equal(t, 20.0, e.ScoreByDate("2025-03-02"))
}

func TestSameDayInputsAccumulate(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 600}, "2025-03-02")
	e.RecordInput(distanceDay{Meters: 600}, "2025-03-02")

	assert.Equal(t, 1200.0, e.WeightedByDate("2025-03-02"))
	assert.InDelta(t, 1.2, e.Ratio("2025-03-02"), 1e-9)
}

func TestAbsenceGapFillChain(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	// Three silent days; chain is clamped at the floor, never negative.
	e.Settle("2025-03-04")

	assert.Equal(t, 10.0, e.ScoreByDate("2025-03-01"))
	assert.Equal(t, 5.0, e.ScoreByDate("2025-03-02"))
	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-03"))
	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-04"))
}

func TestScoreNeverBelowFloor(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 100}, "2025-03-02") // ratio 0.1, change -5
	e.RecordInput(distanceDay{Meters: 100}, "2025-03-03")
	e.RecordInput(distanceDay{Meters: 100}, "2025-03-04")

	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-03"))
	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-04"))
}

func TestRecomputeIsIdempotent(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 1500}, "2025-03-02")
	before := e.Snapshot()

	e.Settle("2025-03-02")
	after := e.Snapshot()

	assert.Equal(t, before.Scores, after.Scores)
	assert.Equal(t, before.Ratios, after.Ratios)
	assert.Equal(t, before.WeightedRecords, after.WeightedRecords)
}

func TestFixedTargetRatioCapped(t *testing.T) {
	e := NewEngine(Options[distanceDay]{
		Name:   "hydration",
		Rules:  HydrationRules,
		Weigh:  func(d distanceDay) float64 { return d.Meters },
		Ratio:  RatioFixedTarget,
		Target: 3000,
	})
	e.RecordInput(distanceDay{Meters: 4500}, "2025-03-01")

	assert.Equal(t, 1.0, e.Ratio("2025-03-01"))
	assert.Equal(t, 10.0, e.ScoreByDate("2025-03-01"))

	e.RecordInput(distanceDay{Meters: 1500}, "2025-03-02")
	assert.InDelta(t, 0.5, e.Ratio("2025-03-02"), 1e-9)
	assert.Equal(t, 12.0, e.ScoreByDate("2025-03-02"))
}

type levelDay struct {
	Level int `json:"level"`
}

func newLevelEngine() *Engine[levelDay] {
	return NewEngine(Options[levelDay]{
		Name:  "dietcontrol",
		Rules: DietControlRules,
		Ratio: RatioBypass,
		Delta: func(d levelDay) float64 { return float64(d.Level) * PointsPerLevel },
		Level: func(d levelDay) (int, bool) { return d.Level, true },
		Weigh: func(d levelDay) float64 { return float64(d.Level) },

		WeightedRollup: RollupMode,
	})
}

func TestBypassSkipsInitialScore(t *testing.T) {
	e := newLevelEngine()
	// Level +2 on day one: 0 + 2*5, no initial score involved.
	e.RecordInput(levelDay{Level: 2}, "2025-03-01")
	assert.Equal(t, 10.0, e.ScoreByDate("2025-03-01"))

	e.RecordInput(levelDay{Level: -2}, "2025-03-02")
	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-02"))
}

func TestBypassAbsencePenaltyStillApplies(t *testing.T) {
	e := newLevelEngine()
	e.RecordInput(levelDay{Level: 1}, "2025-03-01") // 5
	e.Settle("2025-03-02")                          // max(0, 5-5)

	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-02"))
}

func TestLevelAccessor(t *testing.T) {
	e := newLevelEngine()
	e.RecordInput(levelDay{Level: -1}, "2025-03-01")

	lvl, ok := e.Level("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, -1, lvl)

	_, ok = e.Level("2025-03-02")
	assert.False(t, ok)
}

func TestRatioIncrementTracksLastInput(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 500}, "2025-03-02")
	assert.InDelta(t, 0.5, e.RatioIncrement("2025-03-02"), 1e-9)

	e.RecordInput(distanceDay{Meters: 300}, "2025-03-02")
	assert.InDelta(t, 0.3, e.RatioIncrement("2025-03-02"), 1e-9)

	// Settle is not an input; the increment stays put.
	e.Settle("2025-03-02")
	assert.InDelta(t, 0.3, e.RatioIncrement("2025-03-02"), 1e-9)
}

func TestWeeklyScoreSumLaw(t *testing.T) {
	e := newDistanceEngine()
	days := []datekey.Key{"2025-03-03", "2025-03-04", "2025-03-05"}
	e.RecordInput(distanceDay{Meters: 1000}, days[0])
	e.RecordInput(distanceDay{Meters: 1100}, days[1])
	e.RecordInput(distanceDay{Meters: 1200}, days[2])

	week := datekey.WeekOfKey(days[0])
	sum := 0.0
	for _, d := range days {
		require.Equal(t, week, datekey.WeekOfKey(d))
		sum += e.ScoreByDate(d)
	}
	assert.Equal(t, sum, e.ScoreByWeek(week))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 1500}, "2025-03-02")
	snap := e.Snapshot()

	fresh := newDistanceEngine()
	fresh.Restore(snap, "2025-03-02")

	assert.Equal(t, e.ScoreByDate("2025-03-02"), fresh.ScoreByDate("2025-03-02"))
	assert.Equal(t, e.Ratio("2025-03-02"), fresh.Ratio("2025-03-02"))
}

func TestSnapshotIsolatedFromLaterSameDayMerge(t *testing.T) {
	// Map-typed payload, like workout's exercise day. The snapshot must not
	// share the inner map with the live state.
	e := NewEngine(Options[map[string]float64]{
		Name:  "workout",
		Rules: WorkoutRules,
		Merge: func(existing map[string]float64, has bool, in map[string]float64) map[string]float64 {
			if !has {
				return in
			}
			for k, v := range in {
				existing[k] += v
			}
			return existing
		},
		Weigh: func(d map[string]float64) float64 {
			total := 0.0
			for _, v := range d {
				total += v
			}
			return total
		},
		Ratio: RatioHistoricalMax,
	})
	e.RecordInput(map[string]float64{"squat": 1000}, "2025-03-01")
	snap := e.Snapshot()

	e.RecordInput(map[string]float64{"bench": 600}, "2025-03-01")

	assert.NotContains(t, snap.Records["2025-03-01"], "bench")
	assert.Equal(t, 1000.0, snap.Records["2025-03-01"]["squat"])
}

func TestRestoreRecomputesDerivedState(t *testing.T) {
	// A snapshot with records only; derived maps are rebuilt on restore.
	st := NewState[distanceDay]()
	st.Records["2025-03-01"] = distanceDay{Meters: 1000}
	st.Records["2025-03-02"] = distanceDay{Meters: 1500}

	e := newDistanceEngine()
	e.Restore(st, "2025-03-02")

	assert.Equal(t, 10.0, e.ScoreByDate("2025-03-01"))
	assert.Equal(t, 20.0, e.ScoreByDate("2025-03-02"))
}

func TestClearAllHistory(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.ClearAllHistory()

	assert.False(t, e.HasRecords())
	assert.Equal(t, 0.0, e.ScoreByDate("2025-03-01"))
}

func TestScoreDiff(t *testing.T) {
	e := newDistanceEngine()
	e.RecordInput(distanceDay{Meters: 1000}, "2025-03-01")
	e.RecordInput(distanceDay{Meters: 1500}, "2025-03-02")

	diff, ok := e.ScoreDiff("2025-03-01", "2025-03-02")
	require.True(t, ok)
	assert.Equal(t, 10.0, diff)

	_, ok = e.ScoreDiff("2025-03-02", "2025-03-09")
	assert.False(t, ok)
}
