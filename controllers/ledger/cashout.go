package ledger

import (
	"time"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

type CashOutRequest struct {
	UserCode string  `json:"user_code"`
	Amount   float64 `json:"amount"`
}

// RecordCashOut validates and records a player's final amount. Validation
// errors block; warnings are returned alongside the result for the host to
// dismiss or act on.
func RecordCashOut(c *fiber.Ctx) error {
	var req CashOutRequest
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
		return helpers.JSONError(c, "ONLY_HOST_CAN_RECORD_CASHOUTS")
	}
	if ev.Status != models.EventStatusActive {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_NOT_ACTIVE")
	}

	participants, err := snapshot(tx, ev.ID)
	if err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_LOAD_PARTICIPANTS")
	}

	var target *models.Participant
	for i := range participants {
		if participants[i].UserCode == req.UserCode {
			target = &participants[i]
			break
		}
	}
	if target == nil {
		tx.Rollback()
		return helpers.JSONError(c, "PARTICIPANT_NOT_FOUND_OR_NOT_APPROVED")
	}

	amount := helpers.Round2(req.Amount)
	check := services.ValidateCashOut(amount, *target, participants)
	if !check.Valid {
		tx.Rollback()
		return helpers.JSONErrorData(c, "CASH_OUT_REJECTED", check)
	}

	now := time.Now()
	target.CashOut = &amount
	target.CashOutAt = &now
	if err := tx.Save(target).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_RECORD_CASHOUT")
	}

	summary := services.ComputeEventSummary(participants)

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONError(c, "COMMIT_FAILED")
	}

	totals := services.AggregateEntries(target.Entries)
	return helpers.JSONSuccess(c, "Cash-out recorded successfully", fiber.Map{
		"user_code":  target.UserCode,
		"cash_out":   amount,
		"net":        helpers.Round2(amount - totals.TotalBuyIn),
		"validation": check,
		"summary":    summary,
	})
}
