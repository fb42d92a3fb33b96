package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

func safetyClock() time.Time {
	return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
}

func TestCheckMedicalFlagsCleanLog(t *testing.T) {
	now := safetyClock()
	events := []models.Event{{ID: "ok", Timestamp: now.Add(-6 * time.Hour), Bristol: 4}}

	result := CheckMedicalFlags(events, now, time.UTC)
	if result.NeedsAttention || len(result.Reasons) != 0 {
		t.Fatalf("expected a clean bill, got %#v", result)
	}
}

func TestCheckMedicalFlagsSilence(t *testing.T) {
	result := CheckMedicalFlags(nil, safetyClock(), time.UTC)
	want := []string{"No bowel movements in 3+ days"}
	if !result.NeedsAttention || !reflect.DeepEqual(result.Reasons, want) {
		t.Fatalf("expected only the silence reason, got %#v", result)
	}
}

func TestCheckMedicalFlagsMucus(t *testing.T) {
	now := safetyClock()
	events := []models.Event{{
		ID:        "mucus",
		Timestamp: now.Add(-12 * time.Hour),
		Symptoms:  models.SymptomSet{Tags: []string{models.TagMucus}},
	}}

	result := CheckMedicalFlags(events, now, time.UTC)
	want := []string{"Mucus in stool detected"}
	if !reflect.DeepEqual(result.Reasons, want) {
		t.Fatalf("expected only the mucus reason, got %#v", result)
	}
}

func TestCheckMedicalFlagsReasonsAccumulate(t *testing.T) {
	now := safetyClock()
	events := make([]models.Event, 0, 10)
	for offset := 1; offset <= 10; offset++ {
		events = append(events, models.Event{
			ID:        "sym",
			Timestamp: now.AddDate(0, 0, -offset).Add(2 * time.Hour),
			Symptoms:  models.SymptomSet{Bloating: true},
		})
	}
	events[0].Symptoms.Tags = []string{models.TagBlood}

	result := CheckMedicalFlags(events, now, time.UTC)
	want := []string{
		"Blood in stool detected",
		"Persistent symptoms for over 2 weeks",
	}
	if !result.NeedsAttention || !reflect.DeepEqual(result.Reasons, want) {
		t.Fatalf("expected blood and persistence to co-occur, got %#v", result)
	}
}

func TestCheckMedicalFlagsPersistenceCountsDistinctDays(t *testing.T) {
	now := safetyClock()
	events := make([]models.Event, 0, 12)
	for repeat := 0; repeat < 12; repeat++ {
		events = append(events, models.Event{
			ID:        "same-day",
			Timestamp: now.Add(-time.Duration(repeat) * time.Hour),
			Symptoms:  models.SymptomSet{Cramping: true},
		})
	}

	result := CheckMedicalFlags(events, now, time.UTC)
	for _, reason := range result.Reasons {
		if reason == "Persistent symptoms for over 2 weeks" {
			t.Fatalf("twelve entries on one day must not read as persistent: %#v", result)
		}
	}
}

func TestCheckMedicalFlagsTagOnlySymptomsDoNotCountAsPersistent(t *testing.T) {
	now := safetyClock()
	events := make([]models.Event, 0, 10)
	for offset := 1; offset <= 10; offset++ {
		events = append(events, models.Event{
			ID:        "strain",
			Timestamp: now.AddDate(0, 0, -offset).Add(2 * time.Hour),
			Symptoms:  models.SymptomSet{Tags: []string{models.TagStrain}},
		})
	}

	result := CheckMedicalFlags(events, now, time.UTC)
	for _, reason := range result.Reasons {
		if reason == "Persistent symptoms for over 2 weeks" {
			t.Fatalf("tag-only days must not count toward persistence: %#v", result)
		}
	}
}
