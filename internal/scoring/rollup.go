package scoring

import (
	"math"
	"sort"

	"github.com/gmsas95/fitloop-cli/internal/datekey"
)

// RollupKind selects how per-day weighted records aggregate into week and
// month buckets.
type RollupKind int

const (
	// RollupSum adds the bucket's daily values. Volume-style activities.
	RollupSum RollupKind = iota
	// RollupAverage takes the bucket mean over days with a value, rounded
	// to the nearest integer. Time-of-day style activities.
	RollupAverage
	// RollupMode takes the most frequent discrete level in the bucket,
	// higher level winning ties.
	RollupMode
)

// SumByBucket sums daily values grouped by bucket key.
func SumByBucket(daily map[datekey.Key]float64, bucket func(datekey.Key) string) map[string]float64 {
	out := make(map[string]float64)
	for k, v := range daily {
		out[bucket(k)] += v
	}
	return out
}

// AverageByBucket averages daily values per bucket, rounding to the nearest
// integer. Days absent from the map do not dilute the mean.
func AverageByBucket(daily map[datekey.Key]float64, bucket func(datekey.Key) string) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for k, v := range daily {
		b := bucket(k)
		sums[b] += v
		counts[b]++
	}
	out := make(map[string]float64, len(sums))
	for b, sum := range sums {
		out[b] = math.Round(sum / float64(counts[b]))
	}
	return out
}

// ModeByBucket returns the most frequent level per bucket. Ties break toward
// the higher level.
func ModeByBucket(levels map[datekey.Key]int, bucket func(datekey.Key) string) map[string]int {
	freq := make(map[string]map[int]int)
	for k, lvl := range levels {
		b := bucket(k)
		if freq[b] == nil {
			freq[b] = make(map[int]int)
		}
		freq[b][lvl]++
	}
	out := make(map[string]int, len(freq))
	for b, counts := range freq {
		best, bestN := 0, 0
		for lvl, n := range counts {
			if n > bestN || (n == bestN && lvl > best) {
				best, bestN = lvl, n
			}
		}
		out[b] = best
	}
	return out
}

// ConsecutiveGrowth counts consecutive strictly-increasing values walking
// back from the most recent key. The earliest value in the run does not
// count; a single entry scores zero.
func ConsecutiveGrowth(series map[string]float64) int {
	if len(series) < 2 {
		return 0
	}
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	streak := 0
	for i := len(keys) - 1; i > 0; i-- {
		if series[keys[i]] > series[keys[i-1]] {
			streak++
		} else {
			break
		}
	}
	return streak
}
