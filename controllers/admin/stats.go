package admin

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
)

func Stats(c *fiber.Ctx) error {
	var users, events, completed, debts int64

	if err := database.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_USERS")
	}
	if err := database.DB.Model(&models.Event{}).Count(&events).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_EVENTS")
	}
	if err := database.DB.Model(&models.Event{}).
		Where("status = ?", models.EventStatusCompleted).
		Count(&completed).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_EVENTS")
	}
	if err := database.DB.Model(&models.Debt{}).Count(&debts).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_DEBTS")
	}

	return helpers.JSONSuccess(c, "Stats retrieved successfully", fiber.Map{
		"users":            users,
		"events":           events,
		"events_completed": completed,
		"debts":            debts,
	})
}
