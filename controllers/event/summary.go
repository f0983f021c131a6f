package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
)

func FinancialSummary(c *fiber.Ctx) error {
	ev, err := findEventByCode(c.Params("code"))
	if err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	participants, err := approvedParticipants(database.DB, ev.ID)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_PARTICIPANTS")
	}

	summary := services.ComputeEventSummary(participants)

	return helpers.JSONSuccess(c, "Summary computed successfully", fiber.Map{
		"event_code": ev.EventCode,
		"status":     ev.Status,
		"summary":    summary,
	})
}
