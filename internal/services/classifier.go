package services

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

type BloatingCategory string

const (
	BloatingGas            BloatingCategory = "gas"
	BloatingWaterRetention BloatingCategory = "water-retention"
	BloatingConstipation   BloatingCategory = "constipation"
)

// SymptomFlags is the immediate symptom snapshot the user reports when
// asking for a classification.
type SymptomFlags struct {
	Bloating bool `json:"bloating"`
	Gas      bool `json:"gas"`
	Cramping bool `json:"cramping"`
	Nausea   bool `json:"nausea"`
}

type BloatingClassification struct {
	Category   BloatingCategory `json:"category"`
	Confidence float64          `json:"confidence"`
	Signals    []string         `json:"signals"`
}

const classifierConfidenceDivisor = 50.0

// IdentifyBloating scores the three competing etiologies from the reported
// symptoms plus the trailing 24 hours of events. The rules are fixed-point
// additions applied in a fixed order; every fired rule appends its signal
// string, so the output doubles as an explanation.
func IdentifyBloating(events []models.Event, symptoms SymptomFlags, now time.Time, location *time.Location) BloatingClassification {
	signals := make([]string, 0, 8)
	gasScore := 0
	waterRetentionScore := 0
	constipationScore := 0

	if symptoms.Bloating {
		signals = append(signals, "Bloating reported")
	}
	if symptoms.Gas {
		gasScore += 30
		signals = append(signals, "Gas present")
	}
	if symptoms.Cramping {
		gasScore += 10
		constipationScore += 10
		signals = append(signals, "Cramping present")
	}
	if symptoms.Nausea {
		gasScore += 5
		signals = append(signals, "Nausea present")
	}

	window := trailingWindow(events, now, 24*time.Hour)
	if len(window) == 0 {
		constipationScore += 20
		signals = append(signals, "No bowel movements in 24 hours")
	}

	if anyBristolIn(window, 1, 2) {
		constipationScore += 30
		signals = append(signals, "Hard stools (Bristol 1-2)")
	}
	if anyBristolIn(window, 6, 7) {
		gasScore += 15
		signals = append(signals, "Loose stools (Bristol 6-7)")
	}

	if hasCleanEntry(window) {
		gasScore += 10
		signals = append(signals, "Relief after bowel movement")
	}

	if location == nil {
		location = time.UTC
	}
	if now.In(location).Hour() >= 18 && symptoms.Bloating {
		waterRetentionScore += 15
		signals = append(signals, "Evening bloating")
	}

	// Winner is the strictly highest score; ties resolve to the first
	// category in declared order.
	winner := BloatingGas
	winningScore := gasScore
	if waterRetentionScore > winningScore {
		winner = BloatingWaterRetention
		winningScore = waterRetentionScore
	}
	if constipationScore > winningScore {
		winner = BloatingConstipation
		winningScore = constipationScore
	}

	confidence := float64(winningScore) / classifierConfidenceDivisor
	if confidence > 1 {
		confidence = 1
	}

	return BloatingClassification{
		Category:   winner,
		Confidence: confidence,
		Signals:    signals,
	}
}

func trailingWindow(events []models.Event, now time.Time, span time.Duration) []models.Event {
	window := make([]models.Event, 0, len(events))
	for _, event := range events {
		if now.Sub(event.Timestamp) <= span {
			window = append(window, event)
		}
	}
	return window
}

func anyBristolIn(events []models.Event, codes ...int) bool {
	for _, event := range events {
		for _, code := range codes {
			if event.Bristol == code {
				return true
			}
		}
	}
	return false
}

// hasCleanEntry reports whether any windowed event carries no symptom flags
// at all, which reads as relief after a bowel movement.
func hasCleanEntry(events []models.Event) bool {
	for _, event := range events {
		if !event.Symptoms.AnyFlag() {
			return true
		}
	}
	return false
}
