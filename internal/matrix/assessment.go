package matrix

import "fraudmatrix/internal/models"

// Assessment badge classes
const (
	AssessmentGood    = "good"
	AssessmentFair    = "fair"
	AssessmentPoor    = "poor"
	AssessmentNeutral = "neutral"
)

// Assessment kinds. For cost-like kinds a low level is good; for
// benefit-like kinds a high level is good.
const (
	KindEffort        = "effort"
	KindComplexity    = "complexity"
	KindFeasibility   = "feasibility"
	KindBusinessValue = "business_value"
)

// AssessmentClass maps a level to the badge class for the given kind.
func AssessmentClass(kind, level string) string {
	var lowIsGood bool
	switch kind {
	case KindEffort, KindComplexity:
		lowIsGood = true
	case KindFeasibility, KindBusinessValue:
	default:
		return AssessmentNeutral
	}

	switch level {
	case models.LevelMedium:
		return AssessmentFair
	case models.LevelLow:
		if lowIsGood {
			return AssessmentGood
		}
		return AssessmentPoor
	case models.LevelHigh:
		if lowIsGood {
			return AssessmentPoor
		}
		return AssessmentGood
	}
	return AssessmentNeutral
}
