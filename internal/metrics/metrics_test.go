package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"fraudmatrix/internal/matrix"
	"fraudmatrix/internal/models"
	"fraudmatrix/internal/scenarios"
)

type staticSource struct {
	table *scenarios.Table
	err   error
}

func (s staticSource) Table() (*scenarios.Table, error) {
	return s.table, s.err
}

func row(bv, feas string) models.Scenario {
	return models.NewScenario(map[string]string{
		models.ColBusinessValue: bv,
		models.ColFeasibility:   feas,
	})
}

func TestQuadrantCollector_Collect(t *testing.T) {
	table := scenarios.NewTable(
		[]string{models.ColBusinessValue, models.ColFeasibility},
		[]models.Scenario{
			row("High", "High"),
			row("High", "High"),
			row("Medium", "Low"),
			row("Low", "Low"),
		},
	)
	c := NewQuadrantCollector(staticSource{table: table}, matrix.DefaultBusinessValues, matrix.DefaultFeasibilities)

	// One dataset_rows gauge plus two populated quadrants.
	if got := testutil.CollectAndCount(c); got != 3 {
		t.Errorf("CollectAndCount() = %d, want 3", got)
	}

	expected := `
# HELP fraudmatrix_quadrant_scenarios Number of scenarios classified into each matrix quadrant
# TYPE fraudmatrix_quadrant_scenarios gauge
fraudmatrix_quadrant_scenarios{quadrant="High-High",title="Quick Wins"} 2
fraudmatrix_quadrant_scenarios{quadrant="Medium-Low",title="Questionable"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected), "fraudmatrix_quadrant_scenarios"); err != nil {
		t.Errorf("unexpected collection result:\n%v", err)
	}
}

func TestQuadrantCollector_SourceError(t *testing.T) {
	c := NewQuadrantCollector(staticSource{err: errors.New("boom")}, matrix.DefaultBusinessValues, matrix.DefaultFeasibilities)

	if got := testutil.CollectAndCount(c); got != 0 {
		t.Errorf("CollectAndCount() = %d, want 0 on source error", got)
	}
}

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues(models.AuthMethodPassword, OutcomeFailure))
	RecordLogin(models.AuthMethodPassword, OutcomeFailure)
	after := testutil.ToFloat64(LoginAttempts.WithLabelValues(models.AuthMethodPassword, OutcomeFailure))

	if after-before != 1 {
		t.Errorf("counter increased by %v, want 1", after-before)
	}
}
