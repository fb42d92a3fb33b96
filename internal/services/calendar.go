package services

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

type DayIndicator string

const (
	// IndicatorEmpty marks leading blank cells and days without logs that
	// are not yet in the past.
	IndicatorEmpty DayIndicator = "empty"
	// IndicatorPast marks days before today with no logs at all.
	IndicatorPast DayIndicator = "past"
	// IndicatorOK marks days with events and no flag trigger.
	IndicatorOK DayIndicator = "ok"
	// IndicatorCaution marks days with meals but no events.
	IndicatorCaution DayIndicator = "caution"
	// IndicatorFlag marks days where an event carried a symptom or an
	// abnormal Bristol code.
	IndicatorFlag DayIndicator = "flag"
)

type CalendarDay struct {
	Date      int          `json:"date"`
	Indicator DayIndicator `json:"indicator"`
	HasLogs   bool         `json:"hasLogs"`
}

// BuildCalendarDays produces one cell per calendar position for the given
// month: zero-date blanks for the weekday offset before day 1, then one
// cell per real day. Pure over its inputs, so the same month renders the
// same grid every time.
func BuildCalendarDays(month time.Month, year int, events []models.Event, meals []models.MealEntry, now time.Time, location *time.Location) []CalendarDay {
	if location == nil {
		location = time.UTC
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	today := DateAtLocation(now, location)

	eventsByDay := make(map[string][]models.Event)
	for _, event := range events {
		key := DayKey(event.Timestamp, location)
		eventsByDay[key] = append(eventsByDay[key], event)
	}
	mealCountByDay := make(map[string]int)
	for _, meal := range meals {
		mealCountByDay[DayKey(meal.Timestamp, location)]++
	}

	days := make([]CalendarDay, 0, int(monthStart.Weekday())+daysInMonth)
	for blank := 0; blank < int(monthStart.Weekday()); blank++ {
		days = append(days, CalendarDay{Date: 0, Indicator: IndicatorEmpty})
	}

	for date := 1; date <= daysInMonth; date++ {
		day := time.Date(year, month, date, 0, 0, 0, 0, location)
		key := day.Format("2006-01-02")
		dayEvents := eventsByDay[key]
		mealCount := mealCountByDay[key]
		hasLogs := len(dayEvents) > 0 || mealCount > 0

		indicator := IndicatorEmpty
		switch {
		case hasFlaggedEvent(dayEvents):
			indicator = IndicatorFlag
		case mealCount > 0 && len(dayEvents) == 0:
			indicator = IndicatorCaution
		case len(dayEvents) > 0:
			indicator = IndicatorOK
		case day.Before(today):
			indicator = IndicatorPast
		}

		days = append(days, CalendarDay{Date: date, Indicator: indicator, HasLogs: hasLogs})
	}

	return days
}

func hasFlaggedEvent(events []models.Event) bool {
	for _, event := range events {
		if event.Symptoms.Any() || event.HasAbnormalBristol() {
			return true
		}
	}
	return false
}
