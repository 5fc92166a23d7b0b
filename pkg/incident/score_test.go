package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		severity  Level
		urgency   Level
		frequency Frequency
		expected  float64
	}{
		{
			name:      "all lowest factors score the minimum",
			severity:  LevelLow,
			urgency:   LevelLow,
			frequency: FrequencyRare,
			expected:  1.0,
		},
		{
			name:      "all highest factors score the maximum",
			severity:  LevelHigh,
			urgency:   LevelHigh,
			frequency: FrequencyFrequent,
			expected:  3.0,
		},
		{
			name:      "all medium factors",
			severity:  LevelMedium,
			urgency:   LevelMedium,
			frequency: FrequencyOccasional,
			expected:  2.0,
		},
		{
			name:      "severity dominates urgency and frequency",
			severity:  LevelHigh,
			urgency:   LevelLow,
			frequency: FrequencyRare,
			expected:  2.0,
		},
		{
			name:      "mixed factors",
			severity:  LevelLow,
			urgency:   LevelMedium,
			frequency: FrequencyFrequent,
			expected:  1.7,
		},
		{
			name:      "mixed factors with high urgency",
			severity:  LevelMedium,
			urgency:   LevelHigh,
			frequency: FrequencyRare,
			expected:  2.1,
		},
		{
			name:      "unrecognized values fall back to zero",
			severity:  Level(0),
			urgency:   Level(7),
			frequency: Frequency(-1),
			expected:  0,
		},
		{
			name:      "one unrecognized value only drops its own term",
			severity:  LevelHigh,
			urgency:   LevelHigh,
			frequency: Frequency(0),
			expected:  2.4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Score(test.severity, test.urgency, test.frequency))
		})
	}
}

func TestScoreRange(t *testing.T) {
	for _, sev := range []Level{LevelLow, LevelMedium, LevelHigh} {
		for _, urg := range []Level{LevelLow, LevelMedium, LevelHigh} {
			for _, freq := range []Frequency{FrequencyRare, FrequencyOccasional, FrequencyFrequent} {
				s := Score(sev, urg, freq)
				assert.GreaterOrEqual(t, s, MinScore, "%v/%v/%v", sev, urg, freq)
				assert.LessOrEqual(t, s, MaxScore, "%v/%v/%v", sev, urg, freq)
			}
		}
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	levels := []Level{LevelLow, LevelMedium, LevelHigh}
	freqs := []Frequency{FrequencyRare, FrequencyOccasional, FrequencyFrequent}

	t.Run("in severity", func(t *testing.T) {
		for _, urg := range levels {
			for _, freq := range freqs {
				for n := 1; n < len(levels); n++ {
					assert.LessOrEqual(t, Score(levels[n-1], urg, freq), Score(levels[n], urg, freq))
				}
			}
		}
	})

	t.Run("in urgency", func(t *testing.T) {
		for _, sev := range levels {
			for _, freq := range freqs {
				for n := 1; n < len(levels); n++ {
					assert.LessOrEqual(t, Score(sev, levels[n-1], freq), Score(sev, levels[n], freq))
				}
			}
		}
	})

	t.Run("in frequency", func(t *testing.T) {
		for _, sev := range levels {
			for _, urg := range levels {
				for n := 1; n < len(freqs); n++ {
					assert.LessOrEqual(t, Score(sev, urg, freqs[n-1]), Score(sev, urg, freqs[n]))
				}
			}
		}
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{input: 1.7000000000000002, expected: 1.7},
		{input: 2.125, expected: 2.13},
		{input: 2.0, expected: 2.0},
		{input: 0, expected: 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, round2(test.input))
	}
}
