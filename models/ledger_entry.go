package models

import (
	"gorm.io/gorm"
)

// LedgerEntry is an append-only record of money entering play. IsRebuy is
// what the host labeled the entry at creation; sequencing logic never trusts
// it and re-derives rebuy status from entry order instead.
type LedgerEntry struct {
	gorm.Model

	ParticipantID uint    `gorm:"index" json:"participant_id"`
	EventID       uint    `gorm:"index" json:"event_id"`
	Amount        float64 `json:"amount"`
	IsRebuy       bool    `json:"is_rebuy"`
	Note          string  `gorm:"size:255" json:"note"`
	RefID         string  `gorm:"size:64" json:"ref_id"`
}
