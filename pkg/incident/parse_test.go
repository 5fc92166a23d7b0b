package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  Level
		expectErr bool
	}{
		{input: "Low", expected: LevelLow},
		{input: "medium", expected: LevelMedium},
		{input: " HIGH ", expected: LevelHigh},
		{input: "critical", expectErr: true},
		{input: "", expectErr: true},
		{input: "Rare", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l, err := ParseLevel(test.input)
			if test.expectErr {
				assert.ErrorIs(t, err, ErrInvalidField)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, l)
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input     string
		expected  Frequency
		expectErr bool
	}{
		{input: "Rare", expected: FrequencyRare},
		{input: "occasional", expected: FrequencyOccasional},
		{input: "FREQUENT\n", expected: FrequencyFrequent},
		{input: "often", expectErr: true},
		{input: "High", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			f, err := ParseFrequency(test.input)
			if test.expectErr {
				assert.ErrorIs(t, err, ErrInvalidField)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, f)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		fields      [5]string
		expectErrs  int
		expectedInc Incident
	}{
		{
			name:   "valid incident",
			fields: [5]string{" INC001 ", "Checkout Service", "high", "Medium", "rare"},
			expectedInc: Incident{
				ID:        "INC001",
				System:    "Checkout Service",
				Severity:  LevelHigh,
				Urgency:   LevelMedium,
				Frequency: FrequencyRare,
				Status:    StatusOpen,
			},
		},
		{
			name:       "empty system",
			fields:     [5]string{"INC001", "   ", "high", "high", "rare"},
			expectErrs: 1,
		},
		{
			name:       "every field invalid",
			fields:     [5]string{"", "", "x", "y", "z"},
			expectErrs: 5,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			i, err := New(test.fields[0], test.fields[1], test.fields[2], test.fields[3], test.fields[4])
			if test.expectErrs == 0 {
				assert.NoError(t, err)
				assert.Equal(t, test.expectedInc, i)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidField)
			joined, ok := err.(interface{ Unwrap() []error })
			if assert.True(t, ok) {
				assert.Len(t, joined.Unwrap(), test.expectErrs)
			}
		})
	}
}
