package api

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

type exportReport struct {
	GeneratedAt time.Time                 `json:"generatedAt"`
	Profile     models.Profile            `json:"profile"`
	Events      []models.Event            `json:"events"`
	Meals       []models.MealEntry        `json:"meals"`
	WaterLogs   []models.WaterLog         `json:"waterLogs"`
	Triggers    []services.TriggerInsight `json:"triggers"`
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	events := handler.journal.EventsSnapshot()
	meals := handler.journal.MealsSnapshot()
	report := exportReport{
		GeneratedAt: handler.now(),
		Profile:     handler.journal.Profile(),
		Events:      events,
		Meals:       meals,
		WaterLogs:   handler.journal.WaterSnapshot(),
		Triggers:    services.DetectTriggers(events, meals, 5),
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="gutbuddy-export.json"`)
	return c.JSON(report)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)

	header := []string{"id", "timestamp", "bristol", "bloating", "gas", "cramping", "nausea", "tags", "notes"}
	if err := writer.Write(header); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, event := range handler.journal.EventsSnapshot() {
		record := []string{
			event.ID,
			event.Timestamp.Format(time.RFC3339),
			strconv.Itoa(event.Bristol),
			strconv.FormatBool(event.Symptoms.Bloating),
			strconv.FormatBool(event.Symptoms.Gas),
			strconv.FormatBool(event.Symptoms.Cramping),
			strconv.FormatBool(event.Symptoms.Nausea),
			strings.Join(event.Symptoms.Tags, "|"),
			event.Notes,
		}
		if err := writer.Write(record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="gutbuddy-events.csv"`)
	return c.Send(output.Bytes())
}
