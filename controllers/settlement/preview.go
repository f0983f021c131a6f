package settlement

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func loadSnapshot(db *gorm.DB, eventID uint) ([]models.Participant, error) {
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

// Preview computes the settlement without persisting anything. It never
// refuses: a conservation violation or players still at the table are
// reported in the payload so the host can see exactly what is wrong.
func Preview(c *fiber.Ctx) error {
	var ev models.Event
	if err := database.DB.Where("event_code = ?", c.Params("code")).First(&ev).Error; err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	participants, err := loadSnapshot(database.DB, ev.ID)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_PARTICIPANTS")
	}

	summary := services.ComputeEventSummary(participants)
	result := services.ResolveSettlement(participants)

	return helpers.JSONSuccess(c, "Settlement preview computed", fiber.Map{
		"event_code": ev.EventCode,
		"can_settle": summary.CanSettle,
		"balanced":   helpers.SameAmount(result.BalanceCheck, 0),
		"summary":    summary,
		"settlement": result,
	})
}
