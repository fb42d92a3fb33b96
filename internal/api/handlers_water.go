package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddWater(c *fiber.Ctx) error {
	entry, err := handler.journal.AddWater(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist water log")
	}
	return c.JSON(entry)
}

func (handler *Handler) TodayWater(c *fiber.Ctx) error {
	now := handler.now()
	return c.JSON(fiber.Map{
		"date":    services.DayKey(now, handler.location),
		"glasses": handler.journal.TodayWater(now),
	})
}
