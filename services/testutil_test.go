package services

import (
	"pokernight/models"
)

func entries(amounts ...float64) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(amounts))
	for i, a := range amounts {
		out[i] = models.LedgerEntry{Amount: a, IsRebuy: i > 0}
	}
	return out
}

func seat(code, name string, buyIns []float64, cashOut *float64) models.Participant {
	return models.Participant{
		UserCode:    code,
		DisplayName: name,
		Status:      models.ParticipantStatusApproved,
		CashOut:     cashOut,
		Entries:     entries(buyIns...),
	}
}

func cashed(v float64) *float64 {
	return &v
}
