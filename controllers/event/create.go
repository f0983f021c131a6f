package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

type CreateEventRequest struct {
	Name string `json:"name"`
}

func CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" {
		return helpers.JSONError(c, "EVENT_NAME_REQUIRED")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	eventCode := helpers.GenerateEventCode()

	var existing models.Event
	if err := database.DB.Where("event_code = ?", eventCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "EVENT_CODE_ALREADY_EXISTS")
	}

	ev := models.Event{
		EventCode: eventCode,
		Name:      req.Name,
		HostID:    user.ID,
		Status:    models.EventStatusOpen,
	}

	if err := database.DB.Create(&ev).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_EVENT")
	}

	// The host plays too, and never needs approval.
	host := models.Participant{
		EventID:     ev.ID,
		UserID:      user.ID,
		UserCode:    user.UserCode,
		DisplayName: user.DisplayName,
		Status:      models.ParticipantStatusApproved,
	}
	if err := database.DB.Create(&host).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_SEAT_HOST")
	}

	return helpers.JSONSuccess(c, "Event created successfully", fiber.Map{
		"event_code": ev.EventCode,
		"name":       ev.Name,
		"status":     ev.Status,
	})
}
