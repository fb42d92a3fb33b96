package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CompleteOnboardingScore computes the one-time gut score from the quiz
// answers and seeds the profile baseline with it. Out-of-range bucket
// indexes fall back to documented defaults inside the calculator.
func (handler *Handler) CompleteOnboardingScore(c *fiber.Ctx) error {
	var answers services.OnboardingAnswers
	if err := c.BodyParser(&answers); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	score := services.ComputeOnboardingScore(answers)
	if _, err := handler.journal.UpdateProfile(services.ProfilePatch{BaselineScore: &score.Total}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist baseline score")
	}
	return c.JSON(score)
}
