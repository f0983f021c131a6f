package settlement

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

// ListDebts returns the persisted settlement record. Debts exist only once
// the host has finalized; before that the preview endpoint is the source.
func ListDebts(c *fiber.Ctx) error {
	var ev models.Event
	if err := database.DB.Where("event_code = ?", c.Params("code")).First(&ev).Error; err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	if ev.Status != models.EventStatusCompleted {
		return helpers.JSONError(c, "EVENT_NOT_SETTLED_YET")
	}

	var debts []models.Debt
	if err := database.DB.
		Where("event_id = ?", ev.ID).
		Order("amount DESC, id ASC").
		Find(&debts).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_DEBTS")
	}

	return helpers.JSONSuccess(c, "Debts retrieved successfully", fiber.Map{
		"event_code": ev.EventCode,
		"settled_at": ev.SettledAt,
		"debts":      debts,
	})
}
