package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

type ApproveRequest struct {
	UserCode string `json:"user_code"`
}

func ApproveParticipant(c *fiber.Ctx) error {
	var req ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	ev, err := findEventByCode(c.Params("code"))
	if err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	if ev.HostID != user.ID {
		return helpers.JSONError(c, "ONLY_HOST_CAN_APPROVE")
	}

	if ev.Status == models.EventStatusCompleted {
		return helpers.JSONError(c, "EVENT_ALREADY_COMPLETED")
	}

	var participant models.Participant
	if err := database.DB.
		Where("event_id = ? AND user_code = ?", ev.ID, req.UserCode).
		First(&participant).Error; err != nil {
		return helpers.JSONError(c, "PARTICIPANT_NOT_FOUND")
	}

	if participant.Status == models.ParticipantStatusApproved {
		return helpers.JSONError(c, "PARTICIPANT_ALREADY_APPROVED")
	}

	participant.Status = models.ParticipantStatusApproved
	if err := database.DB.Save(&participant).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_APPROVE_PARTICIPANT")
	}

	return helpers.JSONSuccess(c, "Participant approved", fiber.Map{
		"event_code":   ev.EventCode,
		"user_code":    participant.UserCode,
		"display_name": participant.DisplayName,
		"status":       participant.Status,
	})
}
