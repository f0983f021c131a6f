package ledger

import (
	"strconv"

	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// DeleteEntry is the host-override escape hatch for a mistyped buy-in.
// Totals are derived, so nothing needs recalculating here; the next read
// simply no longer sees the entry.
func DeleteEntry(c *fiber.Ctx) error {
	entryID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "INVALID_ENTRY_ID")
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
		return helpers.JSONError(c, "ONLY_HOST_CAN_DELETE_ENTRIES")
	}
	if ev.Status != models.EventStatusActive {
		tx.Rollback()
		return helpers.JSONError(c, "EVENT_NOT_ACTIVE")
	}

	var entry models.LedgerEntry
	if err := tx.
		Where("id = ? AND event_id = ?", entryID, ev.ID).
		First(&entry).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "ENTRY_NOT_FOUND")
	}

	var participant models.Participant
	if err := tx.First(&participant, entry.ParticipantID).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "PARTICIPANT_NOT_FOUND")
	}

	// Once a player has cashed out their books are closed.
	if participant.HasCashedOut() {
		tx.Rollback()
		return helpers.JSONError(c, "PLAYER_ALREADY_CASHED_OUT")
	}

	if err := tx.Delete(&entry).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_DELETE_ENTRY")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONError(c, "COMMIT_FAILED")
	}

	return helpers.JSONSuccess(c, "Ledger entry deleted", fiber.Map{
		"entry_id":  entry.ID,
		"user_code": participant.UserCode,
		"amount":    entry.Amount,
	})
}
