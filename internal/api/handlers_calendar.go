package api

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetCalendar builds the month grid. Out-of-range month or year inputs fall
// back to the current month rather than failing.
func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	now := handler.now()

	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	year := c.QueryInt("year", now.Year())
	if year < 1970 || year > 2200 {
		year = now.Year()
	}

	days := services.BuildCalendarDays(
		time.Month(month),
		year,
		handler.journal.EventsSnapshot(),
		handler.journal.MealsSnapshot(),
		now,
		handler.location,
	)
	return c.JSON(days)
}
