package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ParticipantStatusPending  = "pending"
	ParticipantStatusApproved = "approved"
)

// Participant is one user's seat at one event. The buy-in total is never
// stored; it is always derived from the ledger entries. CashOut transitions
// from nil to a value exactly once.
type Participant struct {
	gorm.Model

	EventID     uint   `gorm:"index:idx_event_user,unique" json:"event_id"`
	UserID      uint   `gorm:"index:idx_event_user,unique" json:"user_id"`
	UserCode    string `gorm:"size:32;index" json:"user_code"`
	DisplayName string `gorm:"size:64" json:"display_name"`
	Status      string `gorm:"size:16;default:pending;index" json:"status"`

	CashOut   *float64   `json:"cash_out"`
	CashOutAt *time.Time `json:"cash_out_at"`

	Entries []LedgerEntry `gorm:"foreignKey:ParticipantID" json:"entries,omitempty"`
}

// HasCashedOut reports whether the player has left the game.
func (p *Participant) HasCashedOut() bool {
	return p.CashOut != nil
}
