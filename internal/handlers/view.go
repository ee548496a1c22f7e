package handlers

import (
	"fraudmatrix/internal/matrix"
	"fraudmatrix/internal/models"
)

// DetailField is one labelled descriptive field on a scenario card.
type DetailField struct {
	Label string
	Value string
}

// Assessment is one coloured assessment badge on a scenario card.
type Assessment struct {
	Label  string
	Level  string
	Reason string
	Class  string
}

// ScenarioCard is the render model of one scenario.
type ScenarioCard struct {
	Number      int
	Name        string
	Category    string
	Details     []DetailField
	Assessments []Assessment
}

// QuadrantView is the render model of a selected quadrant.
type QuadrantView struct {
	Key        matrix.Key
	Descriptor matrix.Descriptor
	Glyph      string
	Count      int
	Scenarios  []ScenarioCard
	Guidance   []string
}

var fieldLabels = map[string]string{
	models.ColObjective:     "🎯 Objective",
	models.ColMechanic:      "⚙️ Mechanic",
	models.ColLoopholes:     "🔍 Important Aspects/Loopholes",
	models.ColDetectionRule: "🚨 Detection Rule & Signal",
	models.ColMustHaveData:  "📊 Must Have Data",
	models.ColDataFields:    "🗃️ Data Fields",
}

func fieldLabel(col string) string {
	if label, ok := fieldLabels[col]; ok {
		return label
	}
	return col
}

// newScenarioCard builds the card for s, listing detailFields in order.
func newScenarioCard(number int, s models.Scenario, detailFields []string) ScenarioCard {
	card := ScenarioCard{
		Number:   number,
		Name:     s.Name(),
		Category: s.Category(),
	}

	for _, col := range detailFields {
		card.Details = append(card.Details, DetailField{Label: fieldLabel(col), Value: s.Field(col)})
	}
	card.Details = append(card.Details,
		DetailField{Label: "💰 Benefit to Costco", Value: s.Benefit()},
		DetailField{Label: "💼 Business Input on Practicality", Value: s.BusinessInput()},
	)

	card.Assessments = []Assessment{
		newAssessment("💪 Effort Assessment", matrix.KindEffort, s.Field(models.ColEffort), s.Field(models.ColEffortReason)),
		newAssessment("🧩 Complexity Assessment", matrix.KindComplexity, s.Field(models.ColComplexity), s.Field(models.ColComplexityReason)),
		newAssessment("✅ Feasibility Assessment", matrix.KindFeasibility, s.Feasibility, s.Field(models.ColFeasibilityReason)),
		newAssessment("💎 Business Value Assessment", matrix.KindBusinessValue, s.BusinessValue, s.Field(models.ColBusinessValueReason)),
	}

	return card
}

func newAssessment(label, kind, level, reason string) Assessment {
	return Assessment{
		Label:  label,
		Level:  level,
		Reason: reason,
		Class:  matrix.AssessmentClass(kind, level),
	}
}

// newQuadrantView builds the detail view for key from the classified buckets.
// Keys with no bucket render with their guidance text instead of cards.
func newQuadrantView(key matrix.Key, buckets matrix.Buckets, detailFields []string) *QuadrantView {
	d := matrix.Describe(key)
	rows := buckets.Get(key)

	view := &QuadrantView{
		Key:        key,
		Descriptor: d,
		Glyph:      matrix.Glyph(d.Icon),
		Count:      len(rows),
	}

	for i, s := range rows {
		view.Scenarios = append(view.Scenarios, newScenarioCard(i+1, s, detailFields))
	}
	if len(rows) == 0 {
		view.Guidance = matrix.Guidance(key)
	}

	return view
}
