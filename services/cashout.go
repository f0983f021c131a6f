package services

import (
	"fmt"

	"pokernight/helpers"
	"pokernight/models"
)

// CashOutCheck is the validator verdict. Errors block the cash-out and are
// shown to the host verbatim; warnings never block and are dismissible.
type CashOutCheck struct {
	Valid           bool     `json:"valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	SuggestedAmount *float64 `json:"suggested_amount,omitempty"`
}

// ValidateCashOut gates a proposed cash-out for target against the whole
// participant snapshot. The snapshot has to be the full set: the last-player
// check needs to see every other seat's state.
func ValidateCashOut(amount float64, target models.Participant, participants []models.Participant) CashOutCheck {
	check := CashOutCheck{
		Errors:   []string{},
		Warnings: []string{},
	}

	totals := AggregateEntries(target.Entries)
	summary := ComputeEventSummary(participants)

	if amount < 0 {
		check.Errors = append(check.Errors, "cash-out amount cannot be negative")
	}
	if target.HasCashedOut() {
		check.Errors = append(check.Errors, fmt.Sprintf("%s has already cashed out", target.DisplayName))
	}
	if totals.TotalBuyIn < helpers.CentTolerance {
		check.Errors = append(check.Errors, fmt.Sprintf("%s has no buy-ins to cash out against", target.DisplayName))
	}
	if amount > summary.TotalBuyIns+helpers.CentTolerance {
		check.Errors = append(check.Errors, fmt.Sprintf("cash-out of %.2f exceeds the total pot of %.2f", amount, summary.TotalBuyIns))
	}

	// Last player standing: everyone else is done, so the exact balancing
	// amount is known. A different amount is only a warning, the host may
	// be recording an unusual split on purpose.
	otherCount := 0
	othersDone := true
	var othersCashedOut float64
	for _, p := range participants {
		if p.UserCode == target.UserCode {
			continue
		}
		otherCount++
		if p.HasCashedOut() {
			othersCashedOut += *p.CashOut
		} else {
			othersDone = false
		}
	}
	if otherCount > 0 && othersDone {
		suggested := helpers.Round2(summary.TotalBuyIns - othersCashedOut)
		check.SuggestedAmount = &suggested
		if !helpers.SameAmount(amount, suggested) {
			check.Warnings = append(check.Warnings, fmt.Sprintf("expected %.2f to balance the books, got %.2f", suggested, amount))
		}
	}

	if totals.HasBoughtIn {
		profit := amount - totals.TotalBuyIn
		if profit > 3*totals.TotalBuyIn+helpers.CentTolerance {
			check.Warnings = append(check.Warnings, fmt.Sprintf("%s is cashing out an unusually large win (%.2f profit on a %.2f buy-in)", target.DisplayName, profit, totals.TotalBuyIn))
		}
		if amount >= 0 && helpers.SameAmount(amount, 0) {
			check.Warnings = append(check.Warnings, fmt.Sprintf("%s busted out with nothing", target.DisplayName))
		}
	}

	check.Valid = len(check.Errors) == 0
	return check
}
