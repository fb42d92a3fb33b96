package services

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

type MedicalFlagResult struct {
	NeedsAttention bool     `json:"needsAttention"`
	Reasons        []string `json:"reasons"`
}

// CheckMedicalFlags scans the full event log for red-flag patterns,
// independent of the bloating classifier. Reasons accumulate independently
// and may co-occur.
func CheckMedicalFlags(events []models.Event, now time.Time, location *time.Location) MedicalFlagResult {
	reasons := make([]string, 0, 4)

	hasBlood := false
	hasMucus := false
	for _, event := range events {
		if event.Symptoms.HasTag(models.TagBlood) {
			hasBlood = true
		}
		if event.Symptoms.HasTag(models.TagMucus) {
			hasMucus = true
		}
	}
	if hasBlood {
		reasons = append(reasons, "Blood in stool detected")
	}
	if hasMucus {
		reasons = append(reasons, "Mucus in stool detected")
	}

	symptomaticDays := make(map[string]bool)
	for _, event := range trailingWindow(events, now, 14*24*time.Hour) {
		if event.Symptoms.AnyFlag() {
			symptomaticDays[DayKey(event.Timestamp, location)] = true
		}
	}
	if len(symptomaticDays) >= 10 {
		reasons = append(reasons, "Persistent symptoms for over 2 weeks")
	}

	if len(trailingWindow(events, now, 3*24*time.Hour)) == 0 {
		reasons = append(reasons, "No bowel movements in 3+ days")
	}

	return MedicalFlagResult{
		NeedsAttention: len(reasons) > 0,
		Reasons:        reasons,
	}
}
