package event

import (
	"pokernight/database"
	"pokernight/models"

	"gorm.io/gorm"
)

func findEventByCode(code string) (models.Event, error) {
	var ev models.Event
	err := database.DB.Where("event_code = ?", code).First(&ev).Error
	return ev, err
}

// approvedParticipants loads the financial snapshot the engine works on:
// approved seats in join order, each with its entries in creation order.
func approvedParticipants(db *gorm.DB, eventID uint) ([]models.Participant, error) {
	var participants []models.Participant
	err := db.
		Preload("Entries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("ledger_entries.created_at ASC, ledger_entries.id ASC")
		}).
		Where("event_id = ? AND status = ?", eventID, models.ParticipantStatusApproved).
		Order("created_at ASC, id ASC").
		Find(&participants).Error
	return participants, err
}
