package incident

import "math"

// Factor weights for the priority score. These are fixed; the score is only
// comparable across runs because they never change.
const (
	SeverityWeight  = 0.5
	UrgencyWeight   = 0.3
	FrequencyWeight = 0.2
)

const (
	MinScore = 1.0
	MaxScore = 3.0
)

// levelValue maps a level to its numeric weight input. Values outside the
// enum map to 0, which ranks them below every valid incident instead of
// failing. The input boundary (ParseLevel) is expected to make this
// unreachable.
func levelValue(l Level) int {
	if !l.Valid() {
		return 0
	}
	return int(l)
}

// frequencyValue is levelValue for Frequency
func frequencyValue(f Frequency) int {
	if !f.Valid() {
		return 0
	}
	return int(f)
}

// Score computes the weighted priority score for one combination of factors,
// rounded to two decimal places (half away from zero).
func Score(severity Level, urgency Level, frequency Frequency) float64 {
	raw := float64(levelValue(severity))*SeverityWeight +
		float64(levelValue(urgency))*UrgencyWeight +
		float64(frequencyValue(frequency))*FrequencyWeight

	return round2(raw)
}

// ScoreOf is Score applied to an incident's current attributes.
func ScoreOf(i Incident) float64 {
	return Score(i.Severity, i.Urgency, i.Frequency)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
