package middlewares

import (
	"time"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

func SessionAuth(c *fiber.Ctx) error {
	sid := c.Get("X-Session-ID")
	if sid == "" {
		return helpers.JSONError(c, "SESSION_ID_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("User").
		Where("sid = ? AND expires_at > ?", sid, time.Now()).
		First(&session).Error; err != nil {
		return helpers.JSONError(c, "INVALID_OR_EXPIRED_SESSION")
	}

	if !session.User.IsActive {
		return helpers.JSONError(c, "USER_INACTIVE")
	}

	c.Locals("user", session.User)
	return c.Next()
}
