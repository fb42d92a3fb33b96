package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

type TriggerInsight struct {
	Food     string   `json:"food"`
	Count    int      `json:"count"`
	Symptoms []string `json:"symptoms"`
}

// DetectTriggers associates foods from meals eaten in the 24 hours before a
// symptomatic event with that event's symptoms, and ranks foods by how
// often the association recurs.
func DetectTriggers(events []models.Event, meals []models.MealEntry, limit int) []TriggerInsight {
	type association struct {
		count    int
		symptoms map[string]bool
	}
	byFood := make(map[string]*association)

	for _, event := range events {
		if !event.Symptoms.AnyFlag() {
			continue
		}
		active := activeSymptomNames(event.Symptoms)
		windowStart := event.Timestamp.Add(-24 * time.Hour)

		for _, meal := range meals {
			if meal.Timestamp.Before(windowStart) || !meal.Timestamp.Before(event.Timestamp) {
				continue
			}
			for _, food := range meal.Foods {
				normalized := strings.ToLower(strings.TrimSpace(food))
				if normalized == "" {
					continue
				}
				entry, exists := byFood[normalized]
				if !exists {
					entry = &association{symptoms: make(map[string]bool)}
					byFood[normalized] = entry
				}
				entry.count++
				for _, symptom := range active {
					entry.symptoms[symptom] = true
				}
			}
		}
	}

	insights := make([]TriggerInsight, 0, len(byFood))
	for food, entry := range byFood {
		symptoms := make([]string, 0, len(entry.symptoms))
		for symptom := range entry.symptoms {
			symptoms = append(symptoms, symptom)
		}
		sort.Strings(symptoms)
		insights = append(insights, TriggerInsight{
			Food:     capitalizeFirst(food),
			Count:    entry.count,
			Symptoms: symptoms,
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Count == insights[j].Count {
			return insights[i].Food < insights[j].Food
		}
		return insights[i].Count > insights[j].Count
	})

	if limit > 0 && len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}

func activeSymptomNames(set models.SymptomSet) []string {
	names := make([]string, 0, 4)
	if set.Bloating {
		names = append(names, "bloating")
	}
	if set.Gas {
		names = append(names, "gas")
	}
	if set.Cramping {
		names = append(names, "cramping")
	}
	if set.Nausea {
		names = append(names, "nausea")
	}
	return names
}

func capitalizeFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
