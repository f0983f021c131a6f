package auth

import (
	"os"
	"strconv"
	"time"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	UserCode  string `json:"user_code"`
	SecretKey string `json:"secret_key"`
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserCode == "" || req.SecretKey == "" {
		return helpers.JSONError(c, "USER_CODE_AND_SECRET_REQUIRED")
	}

	var user models.User
	if err := database.DB.
		Where("user_code = ? AND secret_key = ? AND is_active = true", req.UserCode, req.SecretKey).
		First(&user).Error; err != nil {
		return helpers.JSONError(c, "INVALID_CREDENTIALS")
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL()),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Logged in successfully", fiber.Map{
		"session_id":   session.SID,
		"user_code":    user.UserCode,
		"display_name": user.DisplayName,
		"expires_at":   session.ExpiresAt,
	})
}
