package services

import (
	"math"
	"sort"

	"pokernight/helpers"
	"pokernight/models"
)

// PlayerResult is one player's signed outcome, for display.
type PlayerResult struct {
	UserCode    string  `json:"user_code"`
	DisplayName string  `json:"display_name"`
	Net         float64 `json:"net"`
}

// SettlementDebt is one payment: FromUserCode pays ToUserCode Amount.
type SettlementDebt struct {
	FromUserCode string  `json:"from_user_code"`
	FromName     string  `json:"from_name"`
	ToUserCode   string  `json:"to_user_code"`
	ToName       string  `json:"to_name"`
	Amount       float64 `json:"amount"`
}

// SettlementResult is the full settlement output. BalanceCheck is the sum
// of all net balances; anything outside a cent of zero means the books are
// corrupted upstream and the caller must refuse to finalize.
type SettlementResult struct {
	Debts        []SettlementDebt `json:"debts"`
	TotalPot     float64          `json:"total_pot"`
	Winners      []PlayerResult   `json:"winners"`
	Losers       []PlayerResult   `json:"losers"`
	BalanceCheck float64          `json:"balance_check"`
}

// ResolveSettlement nets out all cashed-out participants into a minimal set
// of pairwise debts. Participants still playing are skipped; the caller is
// expected to have checked CanSettle first.
//
// Pairing the largest remaining winner against the largest remaining loser
// keeps the transaction count at most winners+losers-1 (the classic minimum
// cash flow shape). Ties keep input order. Sub-cent residues are dropped,
// not carried forward.
func ResolveSettlement(participants []models.Participant) SettlementResult {
	res := SettlementResult{
		Debts:   []SettlementDebt{},
		Winners: []PlayerResult{},
		Losers:  []PlayerResult{},
	}

	type stake struct {
		userCode  string
		name      string
		remaining float64
	}

	var winners, losers []stake
	var pot, balance float64

	for _, p := range participants {
		if !p.HasCashedOut() {
			continue
		}
		totals := AggregateEntries(p.Entries)
		net := *p.CashOut - totals.TotalBuyIn
		pot += totals.TotalBuyIn
		balance += net

		switch {
		case net > helpers.CentTolerance:
			winners = append(winners, stake{p.UserCode, p.DisplayName, net})
			res.Winners = append(res.Winners, PlayerResult{p.UserCode, p.DisplayName, helpers.Round2(net)})
		case net < -helpers.CentTolerance:
			losers = append(losers, stake{p.UserCode, p.DisplayName, -net})
			res.Losers = append(res.Losers, PlayerResult{p.UserCode, p.DisplayName, helpers.Round2(net)})
		}
	}

	res.TotalPot = helpers.Round2(pot)
	res.BalanceCheck = helpers.Round2(balance)

	// Largest magnitude first; stable so ties keep input order.
	sort.SliceStable(winners, func(i, j int) bool { return winners[i].remaining > winners[j].remaining })
	sort.SliceStable(losers, func(i, j int) bool { return losers[i].remaining > losers[j].remaining })
	sort.SliceStable(res.Winners, func(i, j int) bool { return res.Winners[i].Net > res.Winners[j].Net })
	sort.SliceStable(res.Losers, func(i, j int) bool { return res.Losers[i].Net < res.Losers[j].Net })

	wi, li := 0, 0
	for wi < len(winners) && li < len(losers) {
		amount := math.Min(winners[wi].remaining, losers[li].remaining)
		if amount > helpers.CentTolerance {
			res.Debts = append(res.Debts, SettlementDebt{
				FromUserCode: losers[li].userCode,
				FromName:     losers[li].name,
				ToUserCode:   winners[wi].userCode,
				ToName:       winners[wi].name,
				Amount:       helpers.Round2(amount),
			})
		}
		winners[wi].remaining -= amount
		losers[li].remaining -= amount
		if winners[wi].remaining < helpers.CentTolerance {
			wi++
		}
		if losers[li].remaining < helpers.CentTolerance {
			li++
		}
	}

	return res
}
