package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EventStatusOpen      = "open"
	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
)

type Event struct {
	gorm.Model

	EventCode string `gorm:"uniqueIndex;size:16" json:"event_code"`
	Name      string `gorm:"size:128" json:"name"`
	HostID    uint   `gorm:"index" json:"host_id"`
	Host      User   `json:"-"`
	Status    string `gorm:"size:16;default:open;index" json:"status"`

	// Settlement snapshot written once when the host finalizes the game.
	Settlement datatypes.JSON `gorm:"type:jsonb" json:"settlement,omitempty"`
	SettledAt  *time.Time     `json:"settled_at,omitempty"`

	Participants []Participant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
	Debts        []Debt        `gorm:"foreignKey:EventID" json:"debts,omitempty"`
}
