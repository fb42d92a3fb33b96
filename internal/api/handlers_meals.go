package api

import (
	"strings"

	"github.com/Ashwinn11/gutbuddy/internal/models"
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) TodaysMeals(c *fiber.Ctx) error {
	return c.JSON(handler.journal.TodaysMeals(handler.now()))
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	meal := models.MealEntry{
		Timestamp: handler.now(),
		MealType:  models.MealSnack,
		Name:      "Meal",
	}
	if input.Timestamp != nil && !input.Timestamp.IsZero() {
		meal.Timestamp = input.Timestamp.In(handler.location)
	}
	if input.MealType != nil {
		meal.MealType = sanitizeMealType(*input.MealType)
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		meal.Name = strings.TrimSpace(*input.Name)
	}
	if input.Foods != nil {
		meal.Foods = *input.Foods
	}
	if input.PhotoRef != nil {
		meal.PhotoRef = *input.PhotoRef
	}

	created, err := handler.journal.AddMeal(meal)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist meal")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.MealPatch{
		Name:     input.Name,
		Foods:    input.Foods,
		PhotoRef: input.PhotoRef,
	}
	if input.MealType != nil {
		mealType := sanitizeMealType(*input.MealType)
		patch.MealType = &mealType
	}

	updated, found, err := handler.journal.UpdateMeal(c.Params("id"), patch)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist meal")
	}
	if !found {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	if err := handler.journal.RemoveMeal(c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist removal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
