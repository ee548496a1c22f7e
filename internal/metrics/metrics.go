package metrics

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"fraudmatrix/internal/matrix"
	"fraudmatrix/internal/scenarios"
)

var (
	quadrantScenariosDesc = prometheus.NewDesc(
		"fraudmatrix_quadrant_scenarios",
		"Number of scenarios classified into each matrix quadrant",
		[]string{"quadrant", "title"},
		nil,
	)
	datasetRowsDesc = prometheus.NewDesc(
		"fraudmatrix_dataset_rows",
		"Number of rows in the loaded scenario dataset",
		nil,
		nil,
	)
)

// TableSource provides the memoized scenario table.
type TableSource interface {
	Table() (*scenarios.Table, error)
}

// QuadrantCollector is a custom Prometheus collector that classifies the
// dataset on each scrape and reports per-quadrant counts.
type QuadrantCollector struct {
	source         TableSource
	businessValues []string
	feasibilities  []string
}

// NewQuadrantCollector creates a collector over the given axis domains.
func NewQuadrantCollector(source TableSource, businessValues, feasibilities []string) *QuadrantCollector {
	return &QuadrantCollector{
		source:         source,
		businessValues: businessValues,
		feasibilities:  feasibilities,
	}
}

// Describe sends the metric descriptors to the channel.
func (c *QuadrantCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- quadrantScenariosDesc
	ch <- datasetRowsDesc
}

// Collect classifies the table and emits one gauge per populated quadrant.
func (c *QuadrantCollector) Collect(ch chan<- prometheus.Metric) {
	table, err := c.source.Table()
	if err != nil {
		slog.Error("failed to collect quadrant metrics", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(datasetRowsDesc, prometheus.GaugeValue, float64(table.Len()))

	buckets := matrix.Classify(table.Rows(), c.businessValues, c.feasibilities)
	for _, key := range buckets.Keys() {
		ch <- prometheus.MustNewConstMetric(
			quadrantScenariosDesc,
			prometheus.GaugeValue,
			float64(buckets.Count(key)),
			key.String(),
			matrix.Describe(key).Title,
		)
	}
}

// Login outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected" // malformed input, never compared
)

// LoginAttempts counts login attempts by method and outcome.
var LoginAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fraudmatrix_login_attempts_total",
		Help: "Total dashboard login attempts by method and outcome",
	},
	[]string{"method", "outcome"},
)

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(source TableSource, businessValues, feasibilities []string) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewQuadrantCollector(source, businessValues, feasibilities))
		prometheus.MustRegister(LoginAttempts)
	})
}

// RecordLogin increments the login counter.
func RecordLogin(method, outcome string) {
	LoginAttempts.WithLabelValues(method, outcome).Inc()
}
