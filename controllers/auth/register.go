package auth

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	DisplayName string `json:"display_name"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.DisplayName == "" {
		return helpers.JSONError(c, "DISPLAY_NAME_REQUIRED")
	}

	userCode := helpers.GenerateUserCode()
	secretKey := uuid.New().String()

	var existing models.User
	if err := database.DB.Where("user_code = ?", userCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_CODE_ALREADY_EXISTS")
	}

	user := models.User{
		UserCode:    userCode,
		DisplayName: req.DisplayName,
		SecretKey:   secretKey,
		IsActive:    true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_code":    user.UserCode,
		"display_name": user.DisplayName,
		"secret_key":   user.SecretKey,
	})
}
