package services

import (
	"testing"

	"pokernight/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEntries(t *testing.T) {
	tests := []struct {
		name            string
		entries         []models.LedgerEntry
		wantInitial     float64
		wantRebuyCount  int
		wantRebuyTotal  float64
		wantTotal       float64
		wantHasBoughtIn bool
	}{
		{
			name:            "no entries is a valid zero state",
			entries:         nil,
			wantInitial:     0,
			wantRebuyCount:  0,
			wantRebuyTotal:  0,
			wantTotal:       0,
			wantHasBoughtIn: false,
		},
		{
			name:            "single buy-in",
			entries:         entries(100),
			wantInitial:     100,
			wantRebuyCount:  0,
			wantRebuyTotal:  0,
			wantTotal:       100,
			wantHasBoughtIn: true,
		},
		{
			name:            "buy-in with two rebuys",
			entries:         entries(100, 50, 25),
			wantInitial:     100,
			wantRebuyCount:  2,
			wantRebuyTotal:  75,
			wantTotal:       175,
			wantHasBoughtIn: true,
		},
		{
			name:            "sums round once at the end",
			entries:         entries(0.10, 0.10, 0.10),
			wantInitial:     0.10,
			wantRebuyCount:  2,
			wantRebuyTotal:  0.20,
			wantTotal:       0.30,
			wantHasBoughtIn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateEntries(tt.entries)
			assert.InDelta(t, tt.wantInitial, got.InitialBuyIn, 0.001)
			assert.Equal(t, tt.wantRebuyCount, got.RebuyCount)
			assert.InDelta(t, tt.wantRebuyTotal, got.RebuyTotal, 0.001)
			assert.InDelta(t, tt.wantTotal, got.TotalBuyIn, 0.001)
			assert.Equal(t, tt.wantHasBoughtIn, got.HasBoughtIn)
		})
	}
}

func TestAggregateEntriesIgnoresCallerRebuyFlags(t *testing.T) {
	// Host mislabels everything: the first entry claims to be a rebuy and
	// the later ones claim not to be. Order wins.
	mislabeled := []models.LedgerEntry{
		{Amount: 100, IsRebuy: true},
		{Amount: 50, IsRebuy: false},
		{Amount: 50, IsRebuy: false},
	}

	got := AggregateEntries(mislabeled)
	assert.InDelta(t, 100.0, got.InitialBuyIn, 0.001)
	assert.Equal(t, 2, got.RebuyCount)
	assert.InDelta(t, 100.0, got.RebuyTotal, 0.001)
}

func TestAggregateEntriesIsIdempotent(t *testing.T) {
	list := entries(100, 33.33, 66.67)

	first := AggregateEntries(list)
	second := AggregateEntries(list)

	assert.Equal(t, first, second)
	assert.InDelta(t, 100.0, list[0].Amount, 0.001, "input must not be mutated")
}
