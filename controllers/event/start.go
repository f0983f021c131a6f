package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

func StartEvent(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	ev, err := findEventByCode(c.Params("code"))
	if err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	if ev.HostID != user.ID {
		return helpers.JSONError(c, "ONLY_HOST_CAN_START")
	}

	if ev.Status != models.EventStatusOpen {
		return helpers.JSONError(c, "EVENT_NOT_OPEN")
	}

	ev.Status = models.EventStatusActive
	if err := database.DB.Save(&ev).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_START_EVENT")
	}

	return helpers.JSONSuccess(c, "Event started, buy-ins are now accepted", fiber.Map{
		"event_code": ev.EventCode,
		"status":     ev.Status,
	})
}
