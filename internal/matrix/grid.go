package matrix

import "fraudmatrix/internal/models"

// Cell is one rendered matrix cell.
type Cell struct {
	Key        Key
	Descriptor Descriptor
	Glyph      string
	Count      int
}

// Row is one Business Value row of the grid.
type Row struct {
	Level string
	Cells []Cell
}

// Grid is the render model of the priority matrix.
type Grid struct {
	Columns []string
	Rows    []Row
}

// BuildGrid lays out every (row, column) pair with its descriptor and the
// count taken from buckets. Pairs with no bucket have a zero count.
func BuildGrid(buckets Buckets, rowLevels, colLevels []string) Grid {
	grid := Grid{Columns: colLevels}
	for _, bv := range rowLevels {
		row := Row{Level: bv}
		for _, feas := range colLevels {
			key := NewKey(bv, feas)
			d := Describe(key)
			row.Cells = append(row.Cells, Cell{
				Key:        key,
				Descriptor: d,
				Glyph:      Glyph(d.Icon),
				Count:      buckets.Count(key),
			})
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// BuildFullGrid lays out all three levels on both axes.
func BuildFullGrid(buckets Buckets) Grid {
	return BuildGrid(buckets, models.Levels, models.Levels)
}
