package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	UserCode    string `gorm:"uniqueIndex;size:32" json:"user_code"`
	DisplayName string `gorm:"size:64" json:"display_name"`
	SecretKey   string `gorm:"size:128" json:"-"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Events       []Event       `gorm:"foreignKey:HostID"`
	Participants []Participant `gorm:"foreignKey:UserID"`
}
