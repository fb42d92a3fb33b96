package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ClassifyBloating(c *fiber.Ctx) error {
	var symptoms services.SymptomFlags
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&symptoms); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	classification := services.IdentifyBloating(handler.journal.EventsSnapshot(), symptoms, handler.now(), handler.location)
	return c.JSON(classification)
}

func (handler *Handler) GetDebloatSuggestion(c *fiber.Ctx) error {
	var symptoms services.SymptomFlags
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&symptoms); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	suggestion := services.BuildDebloatSuggestion(handler.journal.EventsSnapshot(), symptoms, handler.now(), handler.location)
	return c.JSON(suggestion)
}

func (handler *Handler) CheckMedicalFlags(c *fiber.Ctx) error {
	result := services.CheckMedicalFlags(handler.journal.EventsSnapshot(), handler.now(), handler.location)
	return c.JSON(result)
}
