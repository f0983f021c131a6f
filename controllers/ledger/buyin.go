package ledger

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type BuyInRequest struct {
	UserCode string  `json:"user_code"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

// RecordBuyIn appends one ledger entry for a player. Concurrent writes for
// the same event are serialized by the row lock on the event; the engine
// itself guarantees no atomicity.
func RecordBuyIn(c *fiber.Ctx) error {
	var req BuyInRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}
	if req.Amount <= 0 {
		return helpers.JSONError(c, "AMOUNT_MUST_BE_POSITIVE")
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
		return helpers.JSONError(c, "ONLY_HOST_CAN_RECORD_BUYINS")
	}
	if ev.Status != models.EventStatusActive {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_NOT_ACTIVE")
	}

	var participant models.Participant
	if err := tx.
		Where("event_id = ? AND user_code = ? AND status = ?", ev.ID, req.UserCode, models.ParticipantStatusApproved).
		First(&participant).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "PARTICIPANT_NOT_FOUND_OR_NOT_APPROVED")
	}

	if participant.HasCashedOut() {
		tx.Rollback()
		return helpers.JSONError(c, "PLAYER_ALREADY_CASHED_OUT")
	}

	// Rebuy status comes from entry order, not from the caller.
	var existing int64
	if err := tx.Model(&models.LedgerEntry{}).
		Where("participant_id = ?", participant.ID).
		Count(&existing).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_COUNT_ENTRIES")
	}

	entry := models.LedgerEntry{
		ParticipantID: participant.ID,
		EventID:       ev.ID,
		Amount:        helpers.Round2(req.Amount),
		IsRebuy:       existing > 0,
		Note:          req.Note,
		RefID:         uuid.New().String(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_RECORD_BUYIN")
	}

	var entries []models.LedgerEntry
	if err := tx.
		Where("participant_id = ?", participant.ID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_LOAD_ENTRIES")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONError(c, "COMMIT_FAILED")
	}

	return helpers.JSONSuccess(c, "Buy-in recorded successfully", fiber.Map{
		"user_code": participant.UserCode,
		"is_rebuy":  entry.IsRebuy,
		"ref_id":    entry.RefID,
		"totals":    services.AggregateEntries(entries),
	})
}
