package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a selection is attempted on a table with no rows
	ErrEmptyTable = errors.New("vocabulary table is empty")

	// ErrMissingColumn is returned when a source lacks one of the required language columns
	ErrMissingColumn = errors.New("required column is missing")
)

// DataSourceError reports a vocabulary source that is missing, unreadable or malformed
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("failed to load vocabulary from %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
