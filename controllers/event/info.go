package event

import (
	"pokernight/database"
	"pokernight/helpers"
	"pokernight/models"
	"pokernight/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventInfo(c *fiber.Ctx) error {
	ev, err := findEventByCode(c.Params("code"))
	if err != nil {
		return helpers.JSONError(c, "EVENT_NOT_FOUND")
	}

	var participants []models.Participant
	if err := database.DB.
		Preload("Entries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("ledger_entries.created_at ASC, ledger_entries.id ASC")
		}).
		Where("event_id = ?", ev.ID).
		Order("created_at ASC, id ASC").
		Find(&participants).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_PARTICIPANTS")
	}

	seats := make([]fiber.Map, 0, len(participants))
	for _, p := range participants {
		totals := services.AggregateEntries(p.Entries)
		seat := fiber.Map{
			"user_code":    p.UserCode,
			"display_name": p.DisplayName,
			"status":       p.Status,
			"totals":       totals,
			"cash_out":     p.CashOut,
			"cash_out_at":  p.CashOutAt,
		}
		if p.HasCashedOut() {
			seat["net"] = helpers.Round2(*p.CashOut - totals.TotalBuyIn)
		}
		seats = append(seats, seat)
	}

	return helpers.JSONSuccess(c, "Event retrieved successfully", fiber.Map{
		"event_code":   ev.EventCode,
		"name":         ev.Name,
		"status":       ev.Status,
		"settled_at":   ev.SettledAt,
		"participants": seats,
	})
}
