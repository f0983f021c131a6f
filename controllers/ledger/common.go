package ledger

import (
	"pokernight/models"

	"gorm.io/gorm"
)

// snapshot loads the approved seats with their entries in creation order,
// inside the caller's transaction so the engine sees a consistent view.
func snapshot(tx *gorm.DB, eventID uint) ([]models.Participant, error) {
	var participants []models.Participant
	err := tx.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("ledger_entries.created_at ASC, ledger_entries.id ASC")
		}).
		Where("event_id = ? AND status = ?", eventID, models.ParticipantStatusApproved).
		Order("created_at ASC, id ASC").
		Find(&participants).Error
	return participants, err
}
