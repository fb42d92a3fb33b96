package api

import (
	"strings"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

// Invalid numeric or enum fields recover to documented defaults instead of
// rejecting the request; only an unreadable body is a client error.

type eventInput struct {
	Timestamp *time.Time         `json:"timestamp"`
	Bristol   *int               `json:"bristol"`
	Symptoms  *models.SymptomSet `json:"symptoms"`
	Notes     *string            `json:"notes"`
	PhotoRef  *string            `json:"photoRef"`
}

type quickLogInput struct {
	Bristol int `json:"bristol"`
}

type mealInput struct {
	Timestamp *time.Time `json:"timestamp"`
	MealType  *string    `json:"mealType"`
	Name      *string    `json:"name"`
	Foods     *[]string  `json:"foods"`
	PhotoRef  *string    `json:"photoRef"`
}

type profileInput struct {
	Name *string `json:"name"`
	Mood *string `json:"mood"`
}

func sanitizeBristol(value int) int {
	if value < models.BristolMin || value > models.BristolMax {
		return models.BristolUnset
	}
	return value
}

func sanitizeMealType(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if !models.IsValidMealType(value) {
		return models.MealSnack
	}
	return value
}

func sanitizeSymptoms(set models.SymptomSet) models.SymptomSet {
	tags := make([]string, 0, len(set.Tags))
	for _, tag := range set.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}
	set.Tags = tags
	return set
}
