package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	events := api.Group("/events", handler.AuthRequired)
	events.Get("", handler.ListEvents)
	events.Post("", handler.CreateEvent)
	events.Post("/quick", handler.QuickLog)
	events.Patch("/:id", handler.UpdateEvent)
	events.Delete("/:id", handler.DeleteEvent)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("/today", handler.TodaysMeals)
	meals.Post("", handler.CreateMeal)
	meals.Patch("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	water := api.Group("/water", handler.AuthRequired)
	water.Post("", handler.AddWater)
	water.Get("/today", handler.TodayWater)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("", handler.GetStats)
	stats.Get("/score", handler.GetGutHealthScore)
	stats.Get("/history", handler.GetHistory)

	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	debloat := api.Group("/debloat", handler.AuthRequired)
	debloat.Post("/classify", handler.ClassifyBloating)
	debloat.Post("/suggestion", handler.GetDebloatSuggestion)

	api.Get("/safety/flags", handler.AuthRequired, handler.CheckMedicalFlags)
	api.Post("/onboarding/score", handler.AuthRequired, handler.CompleteOnboardingScore)
	api.Get("/insights/triggers", handler.AuthRequired, handler.GetTriggers)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Patch("", handler.UpdateProfile)
}
