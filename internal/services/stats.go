package services

import (
	"math"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

// streakScanLimit caps the backward day-by-day streak scan.
const streakScanLimit = 365

type Stats struct {
	AvgFrequency  float64    `json:"avgFrequency"`
	LongestStreak int        `json:"longestStreak"`
	LastEventTime *time.Time `json:"lastEventTime"`
	TotalCount    int        `json:"totalCount"`
}

// ComputeStats derives the frequency and streak figures from the event
// collection. The streak scan tolerates an empty today so a user who has
// not logged yet does not lose the run, but breaks on any earlier gap.
func ComputeStats(events []models.Event, now time.Time, location *time.Location) Stats {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	weekCount := 0
	for _, event := range events {
		if !event.Timestamp.Before(weekAgo) {
			weekCount++
		}
	}

	loggedDays := make(map[string]bool, len(events))
	var lastEventTime *time.Time
	for index := range events {
		event := events[index]
		loggedDays[DayKey(event.Timestamp, location)] = true
		if lastEventTime == nil || event.Timestamp.After(*lastEventTime) {
			timestamp := event.Timestamp
			lastEventTime = &timestamp
		}
	}

	streak := 0
	today := DateAtLocation(now, location)
	for offset := 0; offset < streakScanLimit; offset++ {
		day := today.AddDate(0, 0, -offset)
		if loggedDays[day.Format("2006-01-02")] {
			streak++
		} else if offset > 0 {
			break
		}
	}

	return Stats{
		AvgFrequency:  roundToOneDecimal(float64(weekCount) / 7),
		LongestStreak: streak,
		LastEventTime: lastEventTime,
		TotalCount:    len(events),
	}
}

type GutScoreBreakdown struct {
	Bristol    int `json:"bristol"`
	Symptoms   int `json:"symptoms"`
	Regularity int `json:"regularity"`
	Medical    int `json:"medical"`
}

type GutHealthScore struct {
	Score     int                `json:"score"`
	Grade     string             `json:"grade"`
	Breakdown *GutScoreBreakdown `json:"breakdown,omitempty"`
}

// ComputeGutHealthScore rates the trailing week of events on four medical
// indicators: stool consistency (40), symptom load (30), regularity (20)
// and red-flag tags (10).
func ComputeGutHealthScore(events []models.Event, now time.Time) GutHealthScore {
	if len(events) == 0 {
		return GutHealthScore{Score: 50, Grade: "No Data"}
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	recent := make([]models.Event, 0, len(events))
	for _, event := range events {
		if !event.Timestamp.Before(weekAgo) {
			recent = append(recent, event)
		}
	}
	if len(recent) == 0 {
		return GutHealthScore{Score: 50, Grade: "No Recent Data"}
	}

	bristolTotal := 0
	bristolSamples := 0
	for _, event := range recent {
		if event.Bristol == models.BristolUnset {
			continue
		}
		bristolSamples++
		switch event.Bristol {
		case 3, 4:
			bristolTotal += 40
		case 2, 5:
			bristolTotal += 30
		default:
			bristolTotal += 10
		}
	}
	bristolScore := 20.0
	if bristolSamples > 0 {
		bristolScore = float64(bristolTotal) / float64(bristolSamples)
	}

	symptomaticCount := 0
	for _, event := range recent {
		if event.Symptoms.AnyFlag() {
			symptomaticCount++
		}
	}
	symptomScore := 0
	switch {
	case symptomaticCount == 0:
		symptomScore = 30
	case symptomaticCount <= 2:
		symptomScore = 20
	case symptomaticCount <= 4:
		symptomScore = 10
	}

	perDay := float64(len(recent)) / 7
	regularityScore := 5
	switch {
	case perDay >= 1 && perDay <= 3:
		regularityScore = 20
	case perDay >= 0.5:
		regularityScore = 15
	}

	medicalScore := 10
	for _, event := range recent {
		if event.Symptoms.HasTag(models.TagBlood) || event.Symptoms.HasTag(models.TagMucus) {
			medicalScore = 0
			break
		}
	}

	total := bristolScore + float64(symptomScore) + float64(regularityScore) + float64(medicalScore)
	score := int(math.Round(total))

	grade := "Poor"
	switch {
	case score >= 90:
		grade = "Excellent"
	case score >= 70:
		grade = "Good"
	case score >= 50:
		grade = "Fair"
	}

	return GutHealthScore{
		Score: score,
		Grade: grade,
		Breakdown: &GutScoreBreakdown{
			Bristol:    int(math.Round(bristolScore)),
			Symptoms:   symptomScore,
			Regularity: regularityScore,
			Medical:    medicalScore,
		},
	}
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PoopHistory returns per-day event counts for the trailing seven calendar
// days, oldest first.
func PoopHistory(events []models.Event, now time.Time, location *time.Location) []DayCount {
	today := DateAtLocation(now, location)
	counts := make(map[string]int, 7)
	order := make([]string, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		key := today.AddDate(0, 0, -offset).Format("2006-01-02")
		counts[key] = 0
		order = append(order, key)
	}

	for _, event := range events {
		key := DayKey(event.Timestamp, location)
		if _, tracked := counts[key]; tracked {
			counts[key]++
		}
	}

	history := make([]DayCount, 0, len(order))
	for _, key := range order {
		history = append(history, DayCount{Date: key, Count: counts[key]})
	}
	return history
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
