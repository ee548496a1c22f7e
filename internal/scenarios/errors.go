package scenarios

import "errors"

// ErrDatasetNotFound is returned when the scenario CSV does not exist.
var ErrDatasetNotFound = errors.New("scenario dataset not found")

// ErrEmptyDataset is returned when the CSV has no header row.
var ErrEmptyDataset = errors.New("scenario dataset has no header row")

// ErrTooManyFields is returned when a row has more cells than the header.
var ErrTooManyFields = errors.New("row has more fields than the header")
