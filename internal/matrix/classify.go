package matrix

import "fraudmatrix/internal/models"

// Default axis domains. Low business value is not iterated by default, so
// Low-* cells are never populated by ClassifyDefault.
var (
	DefaultBusinessValues = []string{models.LevelHigh, models.LevelMedium}
	DefaultFeasibilities  = []string{models.LevelHigh, models.LevelMedium, models.LevelLow}
)

// Buckets maps populated keys to their scenarios. Keys are kept in the
// order they were produced.
type Buckets struct {
	keys []Key
	rows map[Key][]models.Scenario
}

// Get returns the scenarios for key, or nil if the bucket is empty.
func (b Buckets) Get(key Key) []models.Scenario {
	return b.rows[key]
}

// Count returns the number of scenarios under key.
func (b Buckets) Count(key Key) int {
	return len(b.rows[key])
}

// Has reports whether key has at least one scenario.
func (b Buckets) Has(key Key) bool {
	_, ok := b.rows[key]
	return ok
}

// Keys returns the populated keys in classification order.
func (b Buckets) Keys() []Key {
	return b.keys
}

// Len returns the number of populated buckets.
func (b Buckets) Len() int {
	return len(b.keys)
}

// Total returns the number of classified scenarios across all buckets.
func (b Buckets) Total() int {
	total := 0
	for _, rows := range b.rows {
		total += len(rows)
	}
	return total
}

// Classify partitions rows by (Business Value, Feasibility) over the
// Cartesian product of the supplied domains, in the supplied order. Rows
// whose values fall outside either domain are left out. Empty combinations
// produce no bucket.
func Classify(rows []models.Scenario, businessValues, feasibilities []string) Buckets {
	b := Buckets{rows: make(map[Key][]models.Scenario)}

	for _, bv := range businessValues {
		for _, feas := range feasibilities {
			key := NewKey(bv, feas)
			if b.Has(key) {
				continue
			}

			var matched []models.Scenario
			for _, row := range rows {
				if row.BusinessValue == bv && row.Feasibility == feas {
					matched = append(matched, row)
				}
			}

			if len(matched) > 0 {
				b.keys = append(b.keys, key)
				b.rows[key] = matched
			}
		}
	}

	return b
}

// ClassifyDefault classifies with DefaultBusinessValues and
// DefaultFeasibilities.
func ClassifyDefault(rows []models.Scenario) Buckets {
	return Classify(rows, DefaultBusinessValues, DefaultFeasibilities)
}
