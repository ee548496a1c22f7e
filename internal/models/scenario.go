package models

import "strings"

// Level constants for the Business Value and Feasibility axes.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// Levels lists the recognised axis levels in display order.
var Levels = []string{LevelHigh, LevelMedium, LevelLow}

// Column names in the fraud framework CSV.
const (
	ColScenario            = "Scenario"
	ColCategory            = "Category"
	ColObjective           = "Objective"
	ColMechanic            = "Mechanic"
	ColLoopholes           = "Important aspects/ loopholes"
	ColDetectionRule       = "Detection Rule & Signal"
	ColMustHaveData        = "Must Have Data"
	ColDataFields          = "Data Fields"
	ColEffort              = "Effort"
	ColEffortReason        = "Effort Reason"
	ColComplexity          = "Complexity"
	ColComplexityReason    = "Complexity Reason"
	ColBusinessValue       = "Business Value"
	ColBusinessValueReason = "Business Value Reason"
	ColFeasibility         = "Feasibility"
	ColFeasibilityReason   = "Feasibility Reason"
	ColBenefit             = "Benefit to Costco (severity, frequency & Value)"
	ColBusinessInput       = "Input on praticality from Business"
)

// NotSpecified is shown for optional columns that are missing or blank.
const NotSpecified = "Not specified"

// Scenario is one row of the fraud framework table. Only the two axis
// values are interpreted; everything else is carried through for display.
type Scenario struct {
	BusinessValue string            `json:"business_value"`
	Feasibility   string            `json:"feasibility"`
	Fields        map[string]string `json:"fields"`
}

// NewScenario builds a Scenario from a header-keyed field bag.
func NewScenario(fields map[string]string) Scenario {
	return Scenario{
		BusinessValue: fields[ColBusinessValue],
		Feasibility:   fields[ColFeasibility],
		Fields:        fields,
	}
}

// Field returns the raw value of a column, or "" if the column is absent.
func (s Scenario) Field(name string) string {
	return s.Fields[name]
}

// FieldOr returns the column value, or fallback when it is absent or blank.
func (s Scenario) FieldOr(name, fallback string) string {
	if v, ok := s.Fields[name]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// Name returns the scenario title.
func (s Scenario) Name() string {
	return s.Field(ColScenario)
}

// Category returns the scenario category.
func (s Scenario) Category() string {
	return s.Field(ColCategory)
}

// Benefit returns the optional benefit column.
func (s Scenario) Benefit() string {
	return s.FieldOr(ColBenefit, NotSpecified)
}

// BusinessInput returns the optional business practicality column.
func (s Scenario) BusinessInput() string {
	return s.FieldOr(ColBusinessInput, NotSpecified)
}
