package services

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
)

const (
	ActionImmediate  = "immediate"
	ActionBehavioral = "behavioral"
	ActionDietary    = "dietary"
)

type DebloatAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Timeframe   string `json:"timeframe"`
	Icon        string `json:"icon"`
}

type DebloatSuggestion struct {
	Classification   BloatingClassification `json:"classification"`
	ImmediateActions []DebloatAction        `json:"immediateActions"`
	PreventionTips   []string               `json:"preventionTips"`
	Explanation      string                 `json:"explanation"`
	Confidence       float64                `json:"confidence"`
}

// BuildDebloatSuggestion classifies the bloating and attaches the fixed
// per-category action plan.
func BuildDebloatSuggestion(events []models.Event, symptoms SymptomFlags, now time.Time, location *time.Location) DebloatSuggestion {
	classification := IdentifyBloating(events, symptoms, now, location)
	return DebloatSuggestion{
		Classification:   classification,
		ImmediateActions: ImmediateActionsFor(classification.Category),
		PreventionTips:   PreventionTipsFor(classification.Category),
		Explanation:      ExplanationFor(classification.Category),
		Confidence:       classification.Confidence,
	}
}

// ImmediateActionsFor is a pure lookup; every category maps to a non-empty
// ordered plan, with the gas plan as the fallback for unknown values.
func ImmediateActionsFor(category BloatingCategory) []DebloatAction {
	switch category {
	case BloatingWaterRetention:
		return []DebloatAction{
			{
				ID:          "hydrate",
				Title:       "Drink More Water",
				Description: "Paradoxically, drinking water helps reduce water retention",
				Category:    ActionImmediate,
				Timeframe:   "Throughout day",
				Icon:        "water",
			},
			{
				ID:          "reduce-salt",
				Title:       "Avoid Salty Foods",
				Description: "Skip high-sodium foods for the rest of the day",
				Category:    ActionDietary,
				Timeframe:   "Next 24 hours",
				Icon:        "close-circle",
			},
			{
				ID:          "elevate",
				Title:       "Elevate Your Legs",
				Description: "Lie down with legs elevated for 15 minutes",
				Category:    ActionImmediate,
				Timeframe:   "15 minutes",
				Icon:        "bed",
			},
			{
				ID:          "potassium",
				Title:       "Eat Potassium-Rich Foods",
				Description: "Banana, spinach, or sweet potato can help balance fluids",
				Category:    ActionDietary,
				Timeframe:   "Next meal",
				Icon:        "nutrition",
			},
		}
	case BloatingConstipation:
		return []DebloatAction{
			{
				ID:          "warm-liquid",
				Title:       "Warm Lemon Water",
				Description: "Drink a glass of warm water with lemon to stimulate digestion",
				Category:    ActionImmediate,
				Timeframe:   "5 minutes",
				Icon:        "water",
			},
			{
				ID:          "movement",
				Title:       "Gentle Exercise",
				Description: "Light walking or yoga to encourage bowel movement",
				Category:    ActionImmediate,
				Timeframe:   "10-15 minutes",
				Icon:        "fitness",
			},
			{
				ID:          "fiber",
				Title:       "Add Soluble Fiber",
				Description: "Eat oats, chia seeds, or psyllium with plenty of water",
				Category:    ActionDietary,
				Timeframe:   "Next meal",
				Icon:        "leaf",
			},
			{
				ID:          "squat-position",
				Title:       "Proper Toilet Posture",
				Description: "Use a footstool to elevate feet while on toilet",
				Category:    ActionBehavioral,
				Timeframe:   "When needed",
				Icon:        "fitness",
			},
		}
	default:
		return []DebloatAction{
			{
				ID:          "walk",
				Title:       "Take a Gentle Walk",
				Description: "Walk for 5-10 minutes to help move gas through your system",
				Category:    ActionImmediate,
				Timeframe:   "5-10 minutes",
				Icon:        "walk",
			},
			{
				ID:          "breathing",
				Title:       "Diaphragmatic Breathing",
				Description: "Inhale for 4 seconds, exhale for 6-8 seconds. Repeat 5 times.",
				Category:    ActionImmediate,
				Timeframe:   "2-3 minutes",
				Icon:        "fitness",
			},
			{
				ID:          "position",
				Title:       "Knees-to-Chest Position",
				Description: "Lie on your left side and bring knees to chest for 5 minutes",
				Category:    ActionImmediate,
				Timeframe:   "5 minutes",
				Icon:        "bed",
			},
			{
				ID:          "warm-drink",
				Title:       "Sip Warm Water",
				Description: "Drink warm (not hot) water slowly to aid digestion",
				Category:    ActionImmediate,
				Timeframe:   "10 minutes",
				Icon:        "water",
			},
		}
	}
}

func PreventionTipsFor(category BloatingCategory) []string {
	switch category {
	case BloatingWaterRetention:
		return []string{
			"Maintain consistent water intake throughout the day",
			"Reduce sodium intake, especially processed foods",
			"Increase potassium-rich foods (bananas, spinach)",
			"Avoid sitting or standing for long periods",
			"Track if bloating correlates with menstrual cycle",
		}
	case BloatingConstipation:
		return []string{
			"Increase soluble fiber gradually (oats, chia seeds)",
			"Drink water consistently, especially with fiber",
			"Establish a regular bathroom routine (same time daily)",
			"Exercise regularly to promote gut motility",
			"Don't ignore the urge to have a bowel movement",
		}
	default:
		return []string{
			"Eat smaller, more frequent meals instead of large portions",
			"Chew food thoroughly and eat slowly",
			"Avoid carbonated drinks and drinking through straws",
			"Limit high-FODMAP food combinations in one meal",
			"Stay upright for 30 minutes after eating",
		}
	}
}

func ExplanationFor(category BloatingCategory) string {
	switch category {
	case BloatingWaterRetention:
		return "Your bloating appears to be related to water retention. This can be influenced by salt intake, hydration levels, or hormonal changes. Focus on fluid balance."
	case BloatingConstipation:
		return "Your symptoms indicate constipation-related bloating. This happens when stool builds up in your colon. Gentle movement and hydration can help restore regularity."
	default:
		return "Your symptoms suggest gas-related bloating. This is often caused by fermentation of certain foods in your gut. The good news: it usually resolves within a few hours with the right actions."
	}
}
