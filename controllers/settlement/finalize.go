package settlement

import (
	"encoding/json"
	"time"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// Finalize converts the final balances into the permanent debt record and
// closes the event. Refuses while players are still at the table, and
// refuses on a conservation violation instead of papering over it.
func Finalize(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var ev models.Event
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_code = ?", c.Params("code")).First(&ev).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	if ev.HostID != user.ID {
		tx.Rollback()
		return helpers.JSONError(c, "ONLY_HOST_CAN_SETTLE")
	}
	if ev.Status == models.EventStatusCompleted {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_ALREADY_SETTLED")
	}
	if ev.Status != models.EventStatusActive {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_NOT_ACTIVE")
	}

	participants, err := loadSnapshot(tx, ev.ID)
	if err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_LOAD_PARTICIPANTS")
	}

	summary := services.ComputeEventSummary(participants)
	if !summary.CanSettle {
		tx.Rollback()
		return helpers.JSONErrorData(c, "PLAYERS_STILL_AT_THE_TABLE", fiber.Map{
			"still_playing_count": summary.StillPlayingCount,
		})
	}

	result := services.ResolveSettlement(participants)
	if !helpers.SameAmount(result.BalanceCheck, 0) {
		tx.Rollback()
		return helpers.JSONErrorData(c, "BOOKS_DO_NOT_BALANCE", fiber.Map{
			"balance_check": result.BalanceCheck,
		})
	}

	for _, d := range result.Debts {
		debt := models.Debt{
			EventID:      ev.ID,
			FromUserCode: d.FromUserCode,
			FromName:     d.FromName,
			ToUserCode:   d.ToUserCode,
			ToName:       d.ToName,
			Amount:       d.Amount,
		}
		if err := tx.Create(&debt).Error; err != nil {
			tx.Rollback()
			return helpers.JSONError(c, "FAILED_TO_PERSIST_DEBTS")
		}
	}

	snapshotJSON, err := json.Marshal(result)
	if err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_ENCODE_SETTLEMENT")
	}

	now := time.Now()
	ev.Status = models.EventStatusCompleted
	ev.Settlement = snapshotJSON
	ev.SettledAt = &now
	if err := tx.Save(&ev).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_COMPLETE_EVENT")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONError(c, "COMMIT_FAILED")
	}

	return helpers.JSONSuccess(c, "Event settled successfully", fiber.Map{
		"event_code": ev.EventCode,
		"settled_at": ev.SettledAt,
		"settlement": result,
	})
}
