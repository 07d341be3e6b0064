package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)

	api.Get("/predictions/ovulation", handler.AuthRequired, handler.GetOvulationPrediction)

	health := api.Group("/health", handler.AuthRequired)
	health.Get("/sperm/score", handler.GetSpermScore)
	health.Get("/sperm/trends", handler.GetSpermTrends)
	health.Post("/sperm", handler.LogSpermPanel)
	health.Get("/temperature/trends", handler.GetTemperatureTrends)

	api.Post("/temperatures", handler.AuthRequired, handler.OwnerOnly, handler.LogTemperature)
	api.Post("/cervical-mucus", handler.AuthRequired, handler.OwnerOnly, handler.LogCervicalMucus)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.OwnerOnly, handler.CreateCycle)
	cycles.Patch("/:id", handler.OwnerOnly, handler.UpdateCycle)

	content := api.Group("/content", handler.AuthRequired)
	content.Get("/recommended", handler.GetRecommendedContent)
	content.Post("/:id/interactions", handler.RecordContentInteraction)

	api.Get("/calendar/upcoming", handler.AuthRequired, handler.GetUpcomingEvents)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.ListAppointments)
	appointments.Post("", handler.CreateAppointment)

	partner := api.Group("/partner", handler.AuthRequired)
	partner.Post("/invite", handler.OwnerOnly, handler.InvitePartner)
	partner.Post("/accept", handler.AcceptPartnerInvite)

	admin := api.Group("/admin", handler.AuthRequired, handler.OwnerOnly)
	admin.Get("/usage", handler.GetUsage)
	admin.Delete("/usage", handler.ResetUsage)

	app.Use(handler.NotFound)
}
