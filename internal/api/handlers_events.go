package api

import (
	"github.com/Ashwinn11/gutbuddy/internal/models"
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

const defaultRecentEventLimit = 20

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecentEventLimit)
	return c.JSON(handler.journal.RecentEvents(limit))
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	var input eventInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event := models.Event{Timestamp: handler.now()}
	if input.Timestamp != nil && !input.Timestamp.IsZero() {
		event.Timestamp = input.Timestamp.In(handler.location)
	}
	if input.Bristol != nil {
		event.Bristol = sanitizeBristol(*input.Bristol)
	}
	if input.Symptoms != nil {
		event.Symptoms = sanitizeSymptoms(*input.Symptoms)
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}
	if input.PhotoRef != nil {
		event.PhotoRef = *input.PhotoRef
	}

	created, err := handler.journal.AppendEvent(event)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist event")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateEvent merges the provided fields; the timestamp stays immutable.
// An unknown id is a deterministic no-op.
func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	var input eventInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.EventPatch{
		Notes:    input.Notes,
		PhotoRef: input.PhotoRef,
	}
	if input.Bristol != nil {
		bristol := sanitizeBristol(*input.Bristol)
		patch.Bristol = &bristol
	}
	if input.Symptoms != nil {
		symptoms := sanitizeSymptoms(*input.Symptoms)
		patch.Symptoms = &symptoms
	}

	updated, found, err := handler.journal.UpdateEvent(c.Params("id"), patch)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist event")
	}
	if !found {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	if err := handler.journal.RemoveEvent(c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist removal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) QuickLog(c *fiber.Ctx) error {
	var input quickLogInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	created, err := handler.journal.QuickLogPoop(input.Bristol, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist event")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
