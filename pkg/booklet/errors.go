package booklet

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates a required sheet column is absent.
var ErrMissingColumn = errors.New("missing required column")

// StageError represents an error in one pipeline stage.
type StageError struct {
	Stage string // "load", "decode", "merge"
	Table string // "rooms", "exhibits"; empty when not table-specific
	Err   error
}

func (e *StageError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Table, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, table string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Table: table,
		Err:   err,
	}
}

func missingColumn(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
