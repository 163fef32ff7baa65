package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDataNotFound    = errors.New("data file not found")
	ErrDataLoad        = errors.New("failed to load data")
	ErrUnknownChart    = errors.New("unknown chart")
	ErrInvalidFormat   = errors.New("invalid image format")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyDataset    = errors.New("dataset has no rows")
	ErrMissingColumn   = errors.New("missing column")
	ErrInvalidRowValue = errors.New("invalid row value")
)

// DataLoadError is returned when a data file exists but cannot be parsed into
// its table shape.
type DataLoadError struct {
	Dataset string
	Path    string
	Cause   error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("error loading %s data from %s: %v", e.Dataset, e.Path, e.Cause)
}

func (e *DataLoadError) Unwrap() []error {
	return []error{ErrDataLoad, e.Cause}
}

// DataNotFoundError is returned when a required data file is missing. Both
// configured paths are kept so the user can be told what to provide.
type DataNotFoundError struct {
	HourlyPath string
	DailyPath  string
	Missing    []string
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDataNotFound.Error(), strings.Join(e.Missing, ", "))
}

func (e *DataNotFoundError) Unwrap() error {
	return ErrDataNotFound
}
