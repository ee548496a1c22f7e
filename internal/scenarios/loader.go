// Package scenarios loads the fraud framework scenario table from CSV.
package scenarios

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"fraudmatrix/internal/models"
)

// Table is the parsed scenario dataset. It is read-only once loaded.
type Table struct {
	columns []string
	rows    []models.Scenario
}

// NewTable builds a table from already-parsed rows.
func NewTable(columns []string, rows []models.Scenario) *Table {
	return &Table{columns: columns, rows: rows}
}

// Columns returns the trimmed header names in file order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the scenarios in file order.
func (t *Table) Rows() []models.Scenario {
	return t.rows
}

// Len returns the number of scenarios.
func (t *Table) Len() int {
	return len(t.rows)
}

// Load reads the CSV at path. A missing file yields ErrDatasetNotFound.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a CSV stream. Header names are trimmed and short rows are
// padded with empty values. A row with more cells than the header is an
// error.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyDataset
		}
		return nil, err
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		columns[i] = strings.TrimSpace(h)
	}

	var rows []models.Scenario
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d",
				ErrTooManyFields, line, len(record), len(columns))
		}

		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				fields[col] = record[i]
			} else {
				fields[col] = ""
			}
		}
		rows = append(rows, models.NewScenario(fields))
	}

	return &Table{columns: columns, rows: rows}, nil
}
