package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestRoundBillable pins the shared billing rounding rule: half up to two
// decimal places, applied identically across repeated calls.
func TestRoundBillable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "HalfBoundaryRoundsUp",
			input:    "200.005",
			expected: "200.01",
		},
		{
			name:     "BelowHalfRoundsDown",
			input:    "200.004",
			expected: "200.00",
		},
		{
			name:     "AboveHalfRoundsUp",
			input:    "200.006",
			expected: "200.01",
		},
		{
			name:     "SubCentHalf",
			input:    "0.005",
			expected: "0.01",
		},
		{
			name:     "AlreadyTwoPlaces",
			input:    "10.27",
			expected: "10.27",
		},
		{
			name:     "Integer",
			input:    "10",
			expected: "10",
		},
		{
			name:     "Zero",
			input:    "0",
			expected: "0",
		},
		{
			name:     "LongTail",
			input:    "33.333333",
			expected: "33.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decimal.RequireFromString(tt.input)
			expected := decimal.RequireFromString(tt.expected)

			rounded := RoundBillable(input)
			assert.True(t, rounded.Equal(expected),
				"expected %s, got %s", expected.String(), rounded.String())

			// Stable across repeated calls.
			assert.True(t, RoundBillable(input).Equal(rounded))
			assert.True(t, RoundBillable(rounded).Equal(rounded))
		})
	}
}
