package routes

import (
	"pokernight/controllers/admin"
	"pokernight/controllers/auth"
	"pokernight/controllers/event"
	"pokernight/controllers/ledger"
	"pokernight/controllers/settlement"
	"pokernight/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	events := app.Group("/events", middlewares.SessionAuth)
	events.Post("/", event.CreateEvent)
	events.Post("/join", event.JoinEvent)
	events.Get("/:code", event.EventInfo)
	events.Get("/:code/summary", event.FinancialSummary)

	// host actions
	events.Post("/:code/approve", event.ApproveParticipant)
	events.Post("/:code/start", event.StartEvent)
	events.Post("/:code/buyin", ledger.RecordBuyIn)
	events.Post("/:code/cashout", ledger.RecordCashOut)
	events.Delete("/:code/entries/:id", ledger.DeleteEntry)

	// settlement
	events.Get("/:code/settlement", settlement.Preview)
	events.Post("/:code/settle", settlement.Finalize)
	events.Get("/:code/debts", settlement.ListDebts)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Post("/stats", admin.Stats)
}
