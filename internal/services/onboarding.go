package services

// Sub-score lookup tables for the one-shot onboarding quiz. Bucket indexes
// outside a table fall back to the middle-of-the-road defaults below rather
// than failing.
var (
	stoolHealthScores   = []int{15, 30, 40, 25, 10}
	symptomReliefScores = []int{30, 20, 10}
	regularityScores    = []int{20, 10, 0}
)

const (
	defaultStoolBucket      = 2
	defaultFrequencyBucket  = 1
	defaultRegularityBucket = 1
	clinicalSafetyScore     = 10
)

type OnboardingAnswers struct {
	StoolConsistency int  `json:"stoolConsistency"`
	SymptomFrequency int  `json:"symptomFrequency"`
	BowelRegularity  int  `json:"bowelRegularity"`
	MedicalFlags     bool `json:"medicalFlags"`
}

type OnboardingScore struct {
	Total          int `json:"total"`
	StoolHealth    int `json:"stoolHealth"`
	SymptomRelief  int `json:"symptomRelief"`
	Regularity     int `json:"regularity"`
	ClinicalSafety int `json:"clinicalSafety"`
}

// ComputeOnboardingScore maps the quiz answers through the fixed lookup
// tables into a 0-100 composite. Run once at quiz completion; the result
// seeds the profile's baseline score.
func ComputeOnboardingScore(answers OnboardingAnswers) OnboardingScore {
	score := OnboardingScore{
		StoolHealth:   bucketScore(stoolHealthScores, answers.StoolConsistency, defaultStoolBucket),
		SymptomRelief: bucketScore(symptomReliefScores, answers.SymptomFrequency, defaultFrequencyBucket),
		Regularity:    bucketScore(regularityScores, answers.BowelRegularity, defaultRegularityBucket),
	}
	if !answers.MedicalFlags {
		score.ClinicalSafety = clinicalSafetyScore
	}
	score.Total = score.StoolHealth + score.SymptomRelief + score.Regularity + score.ClinicalSafety
	return score
}

func bucketScore(table []int, bucket int, fallback int) int {
	if bucket < 0 || bucket >= len(table) {
		bucket = fallback
	}
	return table[bucket]
}
