package services

import (
	"testing"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

func calendarEvent(id string, day int, bristol int, symptoms models.SymptomSet) models.Event {
	return models.Event{
		ID:        id,
		Timestamp: time.Date(2025, time.January, day, 10, 0, 0, 0, time.UTC),
		Bristol:   bristol,
		Symptoms:  symptoms,
	}
}

func TestBuildCalendarDaysLeadingBlanks(t *testing.T) {
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	days := BuildCalendarDays(time.January, 2025, nil, nil, now, time.UTC)

	// January 1st 2025 fell on a Wednesday.
	if len(days) != 3+31 {
		t.Fatalf("expected 34 cells, got %d", len(days))
	}
	for index := 0; index < 3; index++ {
		if days[index].Date != 0 || days[index].Indicator != IndicatorEmpty {
			t.Fatalf("expected blank cell at %d, got %#v", index, days[index])
		}
	}
	if days[3].Date != 1 {
		t.Fatalf("expected day 1 after the blanks, got %#v", days[3])
	}
}

func TestBuildCalendarDaysIndicators(t *testing.T) {
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		calendarEvent("normal", 10, 4, models.SymptomSet{}),
		calendarEvent("hard", 8, 2, models.SymptomSet{}),
		calendarEvent("tagged", 6, 4, models.SymptomSet{Tags: []string{models.TagBlood}}),
	}
	meals := []models.MealEntry{
		{ID: "meal-only", Timestamp: time.Date(2025, time.January, 12, 13, 0, 0, 0, time.UTC)},
		{ID: "meal-with-flag", Timestamp: time.Date(2025, time.January, 8, 13, 0, 0, 0, time.UTC)},
	}

	days := BuildCalendarDays(time.January, 2025, events, meals, now, time.UTC)
	byDate := make(map[int]CalendarDay, len(days))
	for _, day := range days {
		if day.Date > 0 {
			byDate[day.Date] = day
		}
	}

	tests := []struct {
		name string
		date int
		want DayIndicator
	}{
		{name: "event day is ok", date: 10, want: IndicatorOK},
		{name: "abnormal bristol flags", date: 8, want: IndicatorFlag},
		{name: "tag-only symptoms flag", date: 6, want: IndicatorFlag},
		{name: "meal without events is caution", date: 12, want: IndicatorCaution},
		{name: "past day without logs", date: 5, want: IndicatorPast},
		{name: "today without logs stays empty", date: 15, want: IndicatorEmpty},
		{name: "future day stays empty", date: 20, want: IndicatorEmpty},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			day := byDate[testCase.date]
			if day.Indicator != testCase.want {
				t.Fatalf("expected %s on day %d, got %s", testCase.want, testCase.date, day.Indicator)
			}
		})
	}

	if !byDate[12].HasLogs {
		t.Fatalf("a meal-only day still counts as logged")
	}
	if byDate[5].HasLogs {
		t.Fatalf("a bare past day must not count as logged")
	}
}
