package services

import (
	"testing"
	"time"
)

func TestDateAtLocationTruncatesToLocalMidnight(t *testing.T) {
	location := time.FixedZone("UTC+5", 5*3600)
	instant := time.Date(2025, time.June, 9, 22, 30, 0, 0, time.UTC)

	truncated := DateAtLocation(instant, location)
	want := time.Date(2025, time.June, 10, 0, 0, 0, 0, location)
	if !truncated.Equal(want) {
		t.Fatalf("expected local midnight %v, got %v", want, truncated)
	}
}

func TestDayKeyFollowsTheLocation(t *testing.T) {
	location := time.FixedZone("UTC-8", -8*3600)
	instant := time.Date(2025, time.June, 10, 2, 0, 0, 0, time.UTC)

	if got := DayKey(instant, location); got != "2025-06-09" {
		t.Fatalf("expected 2025-06-09 west of UTC, got %s", got)
	}
	if got := DayKey(instant, time.UTC); got != "2025-06-10" {
		t.Fatalf("expected 2025-06-10 in UTC, got %s", got)
	}
}

func TestSameLocalDay(t *testing.T) {
	morning := time.Date(2025, time.June, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC)

	if !SameLocalDay(morning, evening, time.UTC) {
		t.Fatalf("expected the same UTC day")
	}
	if SameLocalDay(morning, evening.AddDate(0, 0, 1), time.UTC) {
		t.Fatalf("expected different days")
	}
}
