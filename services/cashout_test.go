package services

import (
	"testing"

	"pokernight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCashOutHardErrors(t *testing.T) {
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, nil),
		seat("p2", "Bob", []float64{100}, cashed(80)),
		seat("p3", "Charlie", nil, nil),
	}

	tests := []struct {
		name   string
		amount float64
		target models.Participant
	}{
		{
			name:   "negative amount",
			amount: -5,
			target: table[0],
		},
		{
			name:   "double cash-out",
			amount: 50,
			target: table[1],
		},
		{
			name:   "zero buy-in",
			amount: 50,
			target: table[2],
		},
		{
			name:   "amount exceeds total pot",
			amount: 500,
			target: table[0],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCashOut(tt.amount, tt.target, table)
			assert.False(t, got.Valid)
			assert.NotEmpty(t, got.Errors)
		})
	}
}

func TestValidateCashOutSecondAttemptAlwaysRejected(t *testing.T) {
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(100)),
		seat("p2", "Bob", []float64{100}, nil),
	}

	got := ValidateCashOut(100, table[0], table)
	require.False(t, got.Valid)
	assert.Contains(t, got.Errors[0], "already cashed out")
}

func TestValidateCashOutLastPlayer(t *testing.T) {
	// Alice and Bob are done; Charlie is the last seat, so the balancing
	// amount is fully determined: 300 buy-ins - 220 cashed out = 80.
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(150)),
		seat("p2", "Bob", []float64{100}, cashed(70)),
		seat("p3", "Charlie", []float64{100}, nil),
	}

	tests := []struct {
		name        string
		amount      float64
		wantWarning bool
	}{
		{name: "exact balancing amount", amount: 80, wantWarning: false},
		{name: "off by less than a cent", amount: 80.005, wantWarning: false},
		{name: "off by more than a cent", amount: 60, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCashOut(tt.amount, table[2], table)
			assert.True(t, got.Valid, "warnings must never block")
			require.NotNil(t, got.SuggestedAmount, "last-player branch always suggests")
			assert.InDelta(t, 80.0, *got.SuggestedAmount, 0.001)
			if tt.wantWarning {
				assert.NotEmpty(t, got.Warnings)
			} else {
				assert.Empty(t, got.Warnings)
			}
		})
	}
}

func TestValidateCashOutAdvisoryWarnings(t *testing.T) {
	table := []models.Participant{
		seat("p1", "Alice", []float64{50}, nil),
		seat("p2", "Bob", []float64{200}, nil),
		seat("p3", "Charlie", []float64{200}, nil),
	}

	t.Run("large win warns but passes", func(t *testing.T) {
		// 250 on a 50 buy-in is a 200 profit, over the 3x threshold.
		got := ValidateCashOut(250, table[0], table)
		assert.True(t, got.Valid)
		require.NotEmpty(t, got.Warnings)
		assert.Contains(t, got.Warnings[0], "unusually large win")
	})

	t.Run("bust warns but passes", func(t *testing.T) {
		got := ValidateCashOut(0, table[1], table)
		assert.True(t, got.Valid)
		require.NotEmpty(t, got.Warnings)
		assert.Contains(t, got.Warnings[0], "busted out")
	})

	t.Run("ordinary cash-out is clean", func(t *testing.T) {
		got := ValidateCashOut(180, table[1], table)
		assert.True(t, got.Valid)
		assert.Empty(t, got.Errors)
		assert.Empty(t, got.Warnings)
	})
}
