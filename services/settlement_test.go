package services

import (
	"testing"

	"pokernight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSettlementEightPlayerNight(t *testing.T) {
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(400)),
		seat("p2", "Bob", []float64{150}, cashed(250)),
		seat("p3", "Charlie", []float64{200}, cashed(200)),
		seat("p4", "Diana", []float64{200}, cashed(200)),
		seat("p5", "Eve", []float64{150}, cashed(100)),
		seat("p6", "Frank", []float64{200}, cashed(120)),
		seat("p7", "Grace", []float64{250}, cashed(70)),
		seat("p8", "Henry", []float64{150}, cashed(60)),
	}

	got := ResolveSettlement(table)

	assert.InDelta(t, 1400.0, got.TotalPot, 0.001)
	assert.InDelta(t, 0.0, got.BalanceCheck, 0.001)

	// Largest winner pairs against largest loser first; Charlie and Diana
	// broke even and appear nowhere.
	want := []SettlementDebt{
		{FromUserCode: "p7", FromName: "Grace", ToUserCode: "p1", ToName: "Alice", Amount: 180},
		{FromUserCode: "p8", FromName: "Henry", ToUserCode: "p1", ToName: "Alice", Amount: 90},
		{FromUserCode: "p6", FromName: "Frank", ToUserCode: "p1", ToName: "Alice", Amount: 30},
		{FromUserCode: "p6", FromName: "Frank", ToUserCode: "p2", ToName: "Bob", Amount: 50},
		{FromUserCode: "p5", FromName: "Eve", ToUserCode: "p2", ToName: "Bob", Amount: 50},
	}
	assert.Equal(t, want, got.Debts)

	require.Len(t, got.Winners, 2)
	assert.Equal(t, "Alice", got.Winners[0].DisplayName)
	assert.InDelta(t, 300.0, got.Winners[0].Net, 0.001)
	assert.Equal(t, "Bob", got.Winners[1].DisplayName)

	require.Len(t, got.Losers, 4)
	assert.Equal(t, "Grace", got.Losers[0].DisplayName)
	assert.InDelta(t, -180.0, got.Losers[0].Net, 0.001)
	assert.Equal(t, "Henry", got.Losers[1].DisplayName)
}

func TestResolveSettlementTransactionBound(t *testing.T) {
	tests := []struct {
		name  string
		table []models.Participant
	}{
		{
			name: "two players",
			table: []models.Participant{
				seat("p1", "Alice", []float64{100}, cashed(150)),
				seat("p2", "Bob", []float64{100}, cashed(50)),
			},
		},
		{
			name: "everyone different",
			table: []models.Participant{
				seat("p1", "Alice", []float64{100}, cashed(10)),
				seat("p2", "Bob", []float64{100}, cashed(60)),
				seat("p3", "Charlie", []float64{100}, cashed(140)),
				seat("p4", "Diana", []float64{100}, cashed(190)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSettlement(tt.table)
			nonzero := len(got.Winners) + len(got.Losers)
			assert.LessOrEqual(t, len(got.Debts), nonzero-1)
			assert.InDelta(t, 0.0, got.BalanceCheck, 0.011)
		})
	}
}

func TestResolveSettlementSurfacesImbalance(t *testing.T) {
	// Books off by 50: the diagnostic is reported, never corrected, and the
	// preview still produces debts instead of failing.
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(200)),
		seat("p2", "Bob", []float64{100}, cashed(50)),
	}

	got := ResolveSettlement(table)
	assert.InDelta(t, 50.0, got.BalanceCheck, 0.001)
	require.Len(t, got.Debts, 1)
	assert.InDelta(t, 50.0, got.Debts[0].Amount, 0.001)
}

func TestResolveSettlementSkipsActiveAndBrokeEvenPlayers(t *testing.T) {
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(150)),
		seat("p2", "Bob", []float64{100}, cashed(50)),
		seat("p3", "Charlie", []float64{100}, cashed(100)), // broke even
		seat("p4", "Diana", []float64{100}, nil),           // still playing
		seat("p5", "Eve", nil, nil),                        // never bought in
	}

	got := ResolveSettlement(table)

	assert.InDelta(t, 300.0, got.TotalPot, 0.001, "only cashed-out buy-ins count")
	require.Len(t, got.Winners, 1)
	require.Len(t, got.Losers, 1)
	require.Len(t, got.Debts, 1)
	assert.Equal(t, "Bob", got.Debts[0].FromName)
	assert.Equal(t, "Alice", got.Debts[0].ToName)
}

func TestResolveSettlementDropsSubCentResidue(t *testing.T) {
	// Alice is owed 100.004; the transferable 100 is paid and the residual
	// fraction of a cent is dropped, not carried into another debt.
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(200.004)),
		seat("p2", "Bob", []float64{150}, cashed(50)),
	}

	got := ResolveSettlement(table)

	require.Len(t, got.Debts, 1)
	assert.InDelta(t, 100.0, got.Debts[0].Amount, 0.001)
	assert.InDelta(t, 0.0, got.BalanceCheck, 0.011)
}

func TestResolveSettlementTieBreakKeepsInputOrder(t *testing.T) {
	// Bob and Charlie lost the same amount; Bob joined first, so Bob pays
	// first.
	table := []models.Participant{
		seat("p1", "Alice", []float64{100}, cashed(200)),
		seat("p2", "Bob", []float64{100}, cashed(50)),
		seat("p3", "Charlie", []float64{100}, cashed(50)),
	}

	got := ResolveSettlement(table)

	require.Len(t, got.Debts, 2)
	assert.Equal(t, "Bob", got.Debts[0].FromName)
	assert.Equal(t, "Charlie", got.Debts[1].FromName)
}
