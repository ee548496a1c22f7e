package scenarios

import (
	"log/slog"
	"sync"
)

// Store memoizes the dataset for the lifetime of the process so that
// repeated renders do not re-read the file.
type Store struct {
	path string

	once  sync.Once
	table *Table
	err   error
}

// NewStore creates a store for the CSV at path. Nothing is read until the
// first call to Table.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset location.
func (s *Store) Path() string {
	return s.path
}

// Table returns the loaded dataset, reading it on first use. A failed load
// is memoized as well.
func (s *Store) Table() (*Table, error) {
	s.once.Do(func() {
		s.table, s.err = Load(s.path)
		if s.err != nil {
			slog.Error("failed to load scenario dataset", "path", s.path, "error", s.err)
			return
		}
		slog.Info("scenario dataset loaded", "path", s.path, "rows", s.table.Len(), "columns", len(s.table.Columns()))
	})
	return s.table, s.err
}
