package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxTriggerInsights = 5

func (handler *Handler) GetTriggers(c *fiber.Ctx) error {
	insights := services.DetectTriggers(
		handler.journal.EventsSnapshot(),
		handler.journal.MealsSnapshot(),
		maxTriggerInsights,
	)
	return c.JSON(insights)
}
