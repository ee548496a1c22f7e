package matrix

import (
	"testing"

	"fraudmatrix/internal/models"
)

func scenario(bv, feas, name string) models.Scenario {
	return models.NewScenario(map[string]string{
		models.ColBusinessValue: bv,
		models.ColFeasibility:   feas,
		models.ColScenario:      name,
	})
}

func names(rows []models.Scenario) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClassifyDefault_DropsLowBusinessValue(t *testing.T) {
	rows := []models.Scenario{
		scenario("High", "High", "A"),
		scenario("High", "Low", "B"),
		scenario("Low", "High", "C"),
	}

	buckets := ClassifyDefault(rows)

	if buckets.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", buckets.Len())
	}
	if got := names(buckets.Get(NewKey("High", "High"))); !equalStrings(got, []string{"A"}) {
		t.Errorf("High-High = %v, want [A]", got)
	}
	if got := names(buckets.Get(NewKey("High", "Low"))); !equalStrings(got, []string{"B"}) {
		t.Errorf("High-Low = %v, want [B]", got)
	}
	if buckets.Has(NewKey("Low", "High")) {
		t.Error("Low-High must not be produced by the default domains")
	}
}

func TestClassify_KeyOrderFollowsDomains(t *testing.T) {
	rows := []models.Scenario{
		scenario("Medium", "Low", "1"),
		scenario("High", "Medium", "2"),
		scenario("Medium", "High", "3"),
		scenario("High", "High", "4"),
	}

	buckets := ClassifyDefault(rows)

	want := []string{"High-High", "High-Medium", "Medium-High", "Medium-Low"}
	var got []string
	for _, k := range buckets.Keys() {
		got = append(got, k.String())
	}
	if !equalStrings(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestClassify_PreservesRowOrder(t *testing.T) {
	rows := []models.Scenario{
		scenario("High", "High", "first"),
		scenario("Medium", "Medium", "x"),
		scenario("High", "High", "second"),
		scenario("High", "High", "third"),
	}

	got := names(ClassifyDefault(rows).Get(QuickWinsKey))
	want := []string{"first", "second", "third"}
	if !equalStrings(got, want) {
		t.Errorf("High-High = %v, want %v", got, want)
	}
}

func TestClassify_Membership(t *testing.T) {
	rows := []models.Scenario{
		scenario("High", "High", "in"),
		scenario("Medium", "Low", "in"),
		scenario("Low", "Low", "out-of-domain"),
		scenario("high", "High", "case-mismatch"),
		scenario(" High", "High", "whitespace"),
		scenario("", "High", "blank"),
		scenario("High", "Unknown", "bad-feasibility"),
	}

	buckets := ClassifyDefault(rows)

	for _, row := range rows {
		key := NewKey(row.BusinessValue, row.Feasibility)
		inDomain := contains(DefaultBusinessValues, row.BusinessValue) && contains(DefaultFeasibilities, row.Feasibility)

		found := 0
		for _, k := range buckets.Keys() {
			for _, r := range buckets.Get(k) {
				if r.Name() == row.Name() && r.BusinessValue == row.BusinessValue && r.Feasibility == row.Feasibility {
					found++
					if k != key {
						t.Errorf("row %q found under %s, want %s", row.Name(), k, key)
					}
				}
			}
		}

		if inDomain && found != 1 {
			t.Errorf("row %q (%s) found %d times, want 1", row.Name(), key, found)
		}
		if !inDomain && found != 0 {
			t.Errorf("row %q (%s) found %d times, want 0", row.Name(), key, found)
		}
	}
}

func TestClassify_TotalBound(t *testing.T) {
	tests := []struct {
		name      string
		rows      []models.Scenario
		wantEqual bool
	}{
		{
			name: "all rows in domain",
			rows: []models.Scenario{
				scenario("High", "High", "a"),
				scenario("Medium", "Low", "b"),
			},
			wantEqual: true,
		},
		{
			name: "some rows out of domain",
			rows: []models.Scenario{
				scenario("High", "High", "a"),
				scenario("Low", "Low", "b"),
			},
			wantEqual: false,
		},
		{
			name:      "empty table",
			rows:      nil,
			wantEqual: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := ClassifyDefault(tt.rows).Total()
			if total > len(tt.rows) {
				t.Fatalf("Total() = %d exceeds table size %d", total, len(tt.rows))
			}
			if (total == len(tt.rows)) != tt.wantEqual {
				t.Errorf("Total() = %d, len = %d, wantEqual %v", total, len(tt.rows), tt.wantEqual)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	rows := []models.Scenario{
		scenario("High", "High", "a"),
		scenario("Medium", "High", "b"),
		scenario("High", "High", "c"),
		scenario("Medium", "Medium", "d"),
	}

	first := ClassifyDefault(rows)
	second := ClassifyDefault(rows)

	if first.Len() != second.Len() {
		t.Fatalf("Len() differs: %d vs %d", first.Len(), second.Len())
	}
	for i, k := range first.Keys() {
		if second.Keys()[i] != k {
			t.Errorf("Keys()[%d] = %s, want %s", i, second.Keys()[i], k)
		}
		if !equalStrings(names(first.Get(k)), names(second.Get(k))) {
			t.Errorf("bucket %s differs: %v vs %v", k, names(first.Get(k)), names(second.Get(k)))
		}
	}
}

func TestClassify_CustomDomains(t *testing.T) {
	rows := []models.Scenario{
		scenario("Low", "High", "c"),
		scenario("High", "High", "a"),
	}

	buckets := Classify(rows, models.Levels, models.Levels)

	if got := buckets.Count(NewKey("Low", "High")); got != 1 {
		t.Errorf("Count(Low-High) = %d, want 1", got)
	}
	if buckets.Total() != 2 {
		t.Errorf("Total() = %d, want 2", buckets.Total())
	}
}

func TestClassify_DuplicateDomainValues(t *testing.T) {
	rows := []models.Scenario{scenario("High", "High", "a")}

	buckets := Classify(rows, []string{"High", "High"}, []string{"High"})

	if buckets.Len() != 1 {
		t.Errorf("Len() = %d, want 1", buckets.Len())
	}
	if buckets.Count(QuickWinsKey) != 1 {
		t.Errorf("Count(High-High) = %d, want 1", buckets.Count(QuickWinsKey))
	}
}

func TestBuckets_EmptyLookups(t *testing.T) {
	buckets := ClassifyDefault(nil)

	if buckets.Get(QuickWinsKey) != nil {
		t.Error("Get() on empty buckets should return nil")
	}
	if buckets.Count(QuickWinsKey) != 0 {
		t.Error("Count() on empty buckets should return 0")
	}
	if buckets.Has(QuickWinsKey) {
		t.Error("Has() on empty buckets should return false")
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
