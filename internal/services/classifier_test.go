package services

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

func classifierClock(hour int) time.Time {
	return time.Date(2025, time.June, 10, hour, 30, 0, 0, time.UTC)
}

func TestIdentifyBloatingDefaultsToConstipationOnSilence(t *testing.T) {
	now := classifierClock(10)
	result := IdentifyBloating(nil, SymptomFlags{}, now, time.UTC)

	if result.Category != BloatingConstipation {
		t.Fatalf("expected constipation, got %s", result.Category)
	}
	if math.Abs(result.Confidence-0.4) > 1e-9 {
		t.Fatalf("expected confidence 0.4, got %v", result.Confidence)
	}
	want := []string{"No bowel movements in 24 hours"}
	if !reflect.DeepEqual(result.Signals, want) {
		t.Fatalf("expected signals %v, got %v", want, result.Signals)
	}
}

func TestIdentifyBloatingEveningBloatingWithGas(t *testing.T) {
	now := classifierClock(20)
	symptoms := SymptomFlags{Bloating: true, Gas: true}
	result := IdentifyBloating(nil, symptoms, now, time.UTC)

	if result.Category != BloatingGas {
		t.Fatalf("expected gas, got %s", result.Category)
	}
	if math.Abs(result.Confidence-0.6) > 1e-9 {
		t.Fatalf("expected confidence 0.6, got %v", result.Confidence)
	}
	want := []string{
		"Bloating reported",
		"Gas present",
		"No bowel movements in 24 hours",
		"Evening bloating",
	}
	if !reflect.DeepEqual(result.Signals, want) {
		t.Fatalf("expected signals %v, got %v", want, result.Signals)
	}
}

func TestIdentifyBloatingStoolRules(t *testing.T) {
	now := classifierClock(10)

	t.Run("hard stools point to constipation", func(t *testing.T) {
		events := []models.Event{{
			ID:        "hard",
			Timestamp: now.Add(-2 * time.Hour),
			Bristol:   2,
			Symptoms:  models.SymptomSet{Cramping: true},
		}}
		result := IdentifyBloating(events, SymptomFlags{}, now, time.UTC)
		if result.Category != BloatingConstipation {
			t.Fatalf("expected constipation, got %s", result.Category)
		}
		if math.Abs(result.Confidence-0.6) > 1e-9 {
			t.Fatalf("expected confidence 0.6, got %v", result.Confidence)
		}
	})

	t.Run("loose stools point to gas", func(t *testing.T) {
		events := []models.Event{{
			ID:        "loose",
			Timestamp: now.Add(-2 * time.Hour),
			Bristol:   6,
			Symptoms:  models.SymptomSet{Bloating: true},
		}}
		result := IdentifyBloating(events, SymptomFlags{}, now, time.UTC)
		if result.Category != BloatingGas {
			t.Fatalf("expected gas, got %s", result.Category)
		}
	})

	t.Run("clean recent entry reads as relief", func(t *testing.T) {
		events := []models.Event{{
			ID:        "clean",
			Timestamp: now.Add(-1 * time.Hour),
			Bristol:   4,
		}}
		result := IdentifyBloating(events, SymptomFlags{}, now, time.UTC)
		found := false
		for _, signal := range result.Signals {
			if signal == "Relief after bowel movement" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected relief signal, got %v", result.Signals)
		}
	})

	t.Run("events older than a day are ignored", func(t *testing.T) {
		events := []models.Event{{
			ID:        "stale",
			Timestamp: now.Add(-30 * time.Hour),
			Bristol:   2,
		}}
		result := IdentifyBloating(events, SymptomFlags{}, now, time.UTC)
		for _, signal := range result.Signals {
			if signal == "Hard stools (Bristol 1-2)" {
				t.Fatalf("stale event should not fire the hard stool rule: %v", result.Signals)
			}
		}
	})
}

func TestIdentifyBloatingTieResolvesToGas(t *testing.T) {
	now := classifierClock(10)
	events := []models.Event{{
		ID:        "recent",
		Timestamp: now.Add(-1 * time.Hour),
		Bristol:   4,
		Symptoms:  models.SymptomSet{Bloating: true},
	}}

	// Cramping alone adds 10 to both gas and constipation.
	result := IdentifyBloating(events, SymptomFlags{Cramping: true}, now, time.UTC)
	if result.Category != BloatingGas {
		t.Fatalf("expected tie to resolve to gas, got %s", result.Category)
	}
	if math.Abs(result.Confidence-0.2) > 1e-9 {
		t.Fatalf("expected confidence 0.2, got %v", result.Confidence)
	}
}

func TestIdentifyBloatingConfidenceCapsAtOne(t *testing.T) {
	now := classifierClock(10)
	events := []models.Event{{
		ID:        "loose",
		Timestamp: now.Add(-1 * time.Hour),
		Bristol:   7,
		Symptoms:  models.SymptomSet{Gas: true},
	}}
	symptoms := SymptomFlags{Gas: true, Cramping: true, Nausea: true}

	result := IdentifyBloating(events, symptoms, now, time.UTC)
	if result.Category != BloatingGas {
		t.Fatalf("expected gas, got %s", result.Category)
	}
	if result.Confidence != 1 {
		t.Fatalf("expected confidence capped at 1, got %v", result.Confidence)
	}
}

func TestIdentifyBloatingEveningBoundary(t *testing.T) {
	symptoms := SymptomFlags{Bloating: true}

	early := IdentifyBloating(nil, symptoms, classifierClock(17), time.UTC)
	for _, signal := range early.Signals {
		if signal == "Evening bloating" {
			t.Fatalf("evening rule must not fire before 18:00: %v", early.Signals)
		}
	}

	late := IdentifyBloating(nil, symptoms, classifierClock(18), time.UTC)
	found := false
	for _, signal := range late.Signals {
		if signal == "Evening bloating" {
			found = true
		}
	}
	if !found {
		t.Fatalf("evening rule should fire at 18:00: %v", late.Signals)
	}
}

func TestIdentifyBloatingIsDeterministic(t *testing.T) {
	now := classifierClock(20)
	events := []models.Event{{
		ID:        "recent",
		Timestamp: now.Add(-3 * time.Hour),
		Bristol:   6,
		Symptoms:  models.SymptomSet{Gas: true},
	}}
	symptoms := SymptomFlags{Bloating: true, Nausea: true}

	first := IdentifyBloating(events, symptoms, now, time.UTC)
	second := IdentifyBloating(events, symptoms, now, time.UTC)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical classifications, got %#v vs %#v", first, second)
	}
}
