package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(handler.journal.Profile())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.journal.UpdateProfile(services.ProfilePatch{
		Name: input.Name,
		Mood: input.Mood,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist profile")
	}
	return c.JSON(profile)
}
