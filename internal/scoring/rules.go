package scoring

// Band maps a ratio boundary to a score delta. Bands are evaluated from the
// highest boundary down; the first boundary the ratio meets or exceeds wins.
type Band struct {
	Min    float64
	Change float64
}

// Rules is the declarative scoring rule set for one activity.
type Rules struct {
	InitialScore   float64
	AbsencePenalty float64
	MinScore       float64
	// Bands must be ordered by Min descending. Fallback applies when the
	// ratio is below every band.
	Bands    []Band
	Fallback float64
}

// ScoreChange resolves the score delta for a ratio, first match descending.
func (r Rules) ScoreChange(ratio float64) float64 {
	for _, b := range r.Bands {
		if ratio >= b.Min {
			return b.Change
		}
	}
	return r.Fallback
}

// Threshold drives progress-bar rendering: boundary value, bar color and a
// short message. Evaluated highest-first like score bands.
type Threshold struct {
	Value   float64 `json:"value"`
	Color   string  `json:"color"`
	Message string  `json:"message"`
}

// PickThreshold returns the highest-boundary threshold the ratio meets or
// exceeds. When the ratio sits below every boundary the lowest threshold is
// returned; false only for an empty list.
func PickThreshold(thresholds []Threshold, ratio float64) (Threshold, bool) {
	if len(thresholds) == 0 {
		return Threshold{}, false
	}
	picked := thresholds[0]
	matched := false
	for _, t := range thresholds {
		if ratio >= t.Value {
			if !matched || t.Value > picked.Value {
				picked = t
				matched = true
			}
		} else if !matched && t.Value < picked.Value {
			picked = t
		}
	}
	return picked, true
}

const (
	// MinScoreFloor is the common score floor shared by every activity.
	MinScoreFloor = 0.0

	// DefaultAbsencePenalty applies to activities without their own rule.
	DefaultAbsencePenalty = -5.0

	// DefaultInitialScore is the first-day score for ratio-driven activities.
	DefaultInitialScore = 10.0

	// PointsPerLevel converts a discrete level (-2..+2) into a score delta
	// for the diet-control and hunger activities.
	PointsPerLevel = 5.0
)

// WorkoutRules also covers swimming and meditation: the three share the
// ratio-vs-history pipeline and the same bonus ladder.
var WorkoutRules = Rules{
	InitialScore:   DefaultInitialScore,
	AbsencePenalty: DefaultAbsencePenalty,
	MinScore:       MinScoreFloor,
	Bands: []Band{
		{Min: 1.0, Change: 10},
		{Min: 0.8, Change: 5},
		{Min: 0.6, Change: 2},
	},
	Fallback: -5,
}

var SwimmingRules = WorkoutRules

var MeditationRules = WorkoutRules

// JumpRopeRules uses a tighter ladder: jump counts plateau quickly, so the
// bonuses are smaller and the slack band wider.
var JumpRopeRules = Rules{
	InitialScore:   DefaultInitialScore,
	AbsencePenalty: DefaultAbsencePenalty,
	MinScore:       MinScoreFloor,
	Bands: []Band{
		{Min: 1.0, Change: 6},
		{Min: 0.9, Change: 4},
		{Min: 0.8, Change: 2},
	},
	Fallback: -3,
}

// HydrationRules scores against the fixed daily goal rather than history;
// the ratio is capped at 1.0 before these bands apply.
var HydrationRules = Rules{
	InitialScore:   DefaultInitialScore,
	AbsencePenalty: DefaultAbsencePenalty,
	MinScore:       MinScoreFloor,
	Bands: []Band{
		{Min: 1.0, Change: 10},
		{Min: 0.8, Change: 5},
		{Min: 0.5, Change: 2},
	},
	Fallback: -5,
}

// DietControlRules and HungerRules bypass the ratio pipeline entirely; the
// recorded level is multiplied by PointsPerLevel.
var DietControlRules = Rules{
	InitialScore:   DefaultInitialScore,
	AbsencePenalty: DefaultAbsencePenalty,
	MinScore:       MinScoreFloor,
}

var HungerRules = DietControlRules

// EarlySleepRules scores on bedtime clock thresholds, not ratios.
var EarlySleepRules = Rules{
	InitialScore:   DefaultInitialScore,
	AbsencePenalty: DefaultAbsencePenalty,
	MinScore:       MinScoreFloor,
}

const (
	// Bedtime boundaries in minutes since midnight.
	EarlySleepBestBefore = 21 * 60
	EarlySleepGoodBefore = 22 * 60

	EarlySleepBestBonus   = 10.0
	EarlySleepGoodBonus   = 5.0
	EarlySleepLatePenalty = -5.0
)

// EarlySleepScoreChange maps a bedtime to its score delta.
func EarlySleepScoreChange(bedtimeMinutes int) float64 {
	switch {
	case bedtimeMinutes < EarlySleepBestBefore:
		return EarlySleepBestBonus
	case bedtimeMinutes < EarlySleepGoodBefore:
		return EarlySleepGoodBonus
	default:
		return EarlySleepLatePenalty
	}
}

// SingingRules scores the day's practice outcome directly. No absence
// penalty: the score only moves on recorded days.
var SingingRules = Rules{
	InitialScore:   0,
	AbsencePenalty: 0,
	MinScore:       MinScoreFloor,
}

const (
	SingingSuccessBonus = 10.0
	SingingFailPenalty  = -5.0
)

// WorkLogRules scores daily focus units against two fixed targets.
var WorkLogRules = Rules{
	InitialScore:   0,
	AbsencePenalty: -1,
	MinScore:       MinScoreFloor,
}

const (
	WorkLogTarget          = 6.0
	WorkLogSecondaryTarget = 4.0

	WorkLogTargetBonus    = 2.0
	WorkLogSecondaryBonus = 1.0
	WorkLogMissPenalty    = -1.0
)

// WorkLogScoreChange maps a day's work units to its score delta.
func WorkLogScoreChange(units float64) float64 {
	switch {
	case units >= WorkLogTarget:
		return WorkLogTargetBonus
	case units >= WorkLogSecondaryTarget:
		return WorkLogSecondaryBonus
	default:
		return WorkLogMissPenalty
	}
}

// ProgressThresholds is the shared progress-bar palette for ratio-driven
// activities.
var ProgressThresholds = []Threshold{
	{Value: 0, Color: "#ef4444", Message: "keep going"},
	{Value: 0.6, Color: "#f59e0b", Message: "fair effort"},
	{Value: 0.8, Color: "#22c55e", Message: "good effort"},
	{Value: 1.0, Color: "#3b82f6", Message: "new best"},
}
