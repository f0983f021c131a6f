package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

type JoinEventRequest struct {
	EventCode string `json:"event_code"`
}

func JoinEvent(c *fiber.Ctx) error {
	var req JoinEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.EventCode == "" {
		return helpers.JSONError(c, "EVENT_CODE_REQUIRED")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	ev, err := findEventByCode(req.EventCode)
	if err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	if ev.Status == models.EventStatusCompleted {
		return helpers.JSONError(c, "EVENT_ALREADY_COMPLETED")
	}

	var existing models.Participant
	if err := database.DB.
		Where("event_id = ? AND user_id = ?", ev.ID, user.ID).
		First(&existing).Error; err == nil {
		return helpers.JSONError(c, "ALREADY_JOINED")
	}

	participant := models.Participant{
		EventID:     ev.ID,
		UserID:      user.ID,
		UserCode:    user.UserCode,
		DisplayName: user.DisplayName,
		Status:      models.ParticipantStatusPending,
	}

	if err := database.DB.Create(&participant).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_JOIN_EVENT")
	}

	return helpers.JSONSuccess(c, "Join request sent, waiting for host approval", fiber.Map{
		"event_code": ev.EventCode,
		"status":     participant.Status,
	})
}
