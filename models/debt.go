package models

import (
	"gorm.io/gorm"
)

// Debt is one directional payment obligation produced by settlement.
// Debts are persisted once when the event is finalized and are the
// permanent record of who pays whom.
type Debt struct {
	gorm.Model

	EventID      uint    `gorm:"index" json:"event_id"`
	FromUserCode string  `gorm:"size:32" json:"from_user_code"`
	FromName     string  `gorm:"size:64" json:"from_name"`
	ToUserCode   string  `gorm:"size:32" json:"to_user_code"`
	ToName       string  `gorm:"size:64" json:"to_name"`
	Amount       float64 `json:"amount"`
}
