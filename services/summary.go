package services

import (
	"pokernight/helpers"
	"pokernight/models"
)

// EventSummary is the event-wide financial view, recomputed on demand.
type EventSummary struct {
	TotalBuyIns       float64 `json:"total_buy_ins"`
	TotalCashOuts     float64 `json:"total_cash_outs"`
	MoneyInPlay       float64 `json:"money_in_play"`
	BalanceCheck      float64 `json:"balance_check"`
	PlayerCount       int     `json:"player_count"`
	CashedOutCount    int     `json:"cashed_out_count"`
	StillPlayingCount int     `json:"still_playing_count"`
	CanSettle         bool    `json:"can_settle"`
}

// ComputeEventSummary folds all participants into one event summary.
//
// BalanceCheck (buy-ins minus cash-outs) is the money-conservation check,
// but it only means anything once nobody is still playing; until then the
// gap is expected to be closed by future cash-outs, so it is reported as 0.
//
// CanSettle deliberately does not require the books to balance: "not
// everyone is done" and "everyone is done but the books are off" are
// different problems, and settlement re-checks conservation itself.
func ComputeEventSummary(participants []models.Participant) EventSummary {
	var s EventSummary
	var buyIns, cashOuts float64

	for _, p := range participants {
		s.PlayerCount++
		buyIns += AggregateEntries(p.Entries).TotalBuyIn
		if p.HasCashedOut() {
			cashOuts += *p.CashOut
			s.CashedOutCount++
		} else {
			s.StillPlayingCount++
		}
	}

	s.TotalBuyIns = helpers.Round2(buyIns)
	s.TotalCashOuts = helpers.Round2(cashOuts)
	s.MoneyInPlay = helpers.Round2(buyIns - cashOuts)
	if s.StillPlayingCount == 0 {
		s.BalanceCheck = helpers.Round2(buyIns - cashOuts)
	}
	s.CanSettle = s.StillPlayingCount == 0 && s.PlayerCount > 0
	return s
}
