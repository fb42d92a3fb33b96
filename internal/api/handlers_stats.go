package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	stats := services.ComputeStats(handler.journal.EventsSnapshot(), handler.now(), handler.location)
	return c.JSON(stats)
}

func (handler *Handler) GetGutHealthScore(c *fiber.Ctx) error {
	score := services.ComputeGutHealthScore(handler.journal.EventsSnapshot(), handler.now())
	return c.JSON(score)
}

func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	history := services.PoopHistory(handler.journal.EventsSnapshot(), handler.now(), handler.location)
	return c.JSON(history)
}
