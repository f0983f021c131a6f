package services

import (
	"pokernight/helpers"
	"pokernight/models"
)

// LedgerTotals is the derived financial view of one participant's ledger.
type LedgerTotals struct {
	InitialBuyIn float64 `json:"initial_buy_in"`
	RebuyCount   int     `json:"rebuy_count"`
	RebuyTotal   float64 `json:"rebuy_total"`
	TotalBuyIn   float64 `json:"total_buy_in"`
	HasBoughtIn  bool    `json:"has_bought_in"`
}

// AggregateEntries derives buy-in totals from a participant's entries in
// creation order. The first entry is the initial buy-in and every entry
// after it is a rebuy, no matter how the host labeled it. Sums are rounded
// once at the end so per-entry rounding cannot compound.
//
// Zero entries is a valid state (checked in, not yet bought in) and yields
// all-zero totals.
func AggregateEntries(entries []models.LedgerEntry) LedgerTotals {
	var totals LedgerTotals
	if len(entries) == 0 {
		return totals
	}

	totals.HasBoughtIn = true
	totals.InitialBuyIn = helpers.Round2(entries[0].Amount)

	var rebuys float64
	for _, e := range entries[1:] {
		rebuys += e.Amount
		totals.RebuyCount++
	}

	totals.RebuyTotal = helpers.Round2(rebuys)
	totals.TotalBuyIn = helpers.Round2(entries[0].Amount + rebuys)
	return totals
}
