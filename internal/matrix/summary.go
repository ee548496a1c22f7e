package matrix

import "fraudmatrix/internal/models"

// QuickWinsKey is the High-High cell.
var QuickWinsKey = NewKey(models.LevelHigh, models.LevelHigh)

// Summary holds the headline statistics shown under the matrix.
type Summary struct {
	Total             int
	HighBusinessValue int
	HighFeasibility   int
	QuickWins         int
}

// Summarize counts over the whole table, independent of which rows were
// classified, except QuickWins which is read from buckets.
func Summarize(rows []models.Scenario, buckets Buckets) Summary {
	s := Summary{
		Total:     len(rows),
		QuickWins: buckets.Count(QuickWinsKey),
	}
	for _, row := range rows {
		if row.BusinessValue == models.LevelHigh {
			s.HighBusinessValue++
		}
		if row.Feasibility == models.LevelHigh {
			s.HighFeasibility++
		}
	}
	return s
}
