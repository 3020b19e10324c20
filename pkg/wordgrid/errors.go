package wordgrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidConfig indicates search options that cannot apply to the grid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrInvalidGrid indicates a grid that is empty or not rectangular.
var ErrInvalidGrid = errors.New("invalid grid")

// LengthError reports a minimum word length the grid cannot hold.
type LengthError struct {
	MinLength int
	Rows      int
	Cols      int
}

func (e *LengthError) Error() string {
	if e.MinLength < 1 {
		return fmt.Sprintf("minimum word length must be positive, got %d", e.MinLength)
	}
	return fmt.Sprintf("minimum word length specified (%d) exceeds both row (%d) and column (%d) size",
		e.MinLength, e.Rows, e.Cols)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidConfig
}

// GridError reports a grid that cannot be searched.
type GridError struct {
	// Row is the first offending row, or -1 for an empty grid.
	Row  int
	Want int
	Got  int
}

func (e *GridError) Error() string {
	if e.Row < 0 {
		return "grid is empty"
	}
	return fmt.Sprintf("grid is not rectangular: row %d has %d columns, expected %d", e.Row, e.Got, e.Want)
}

func (e *GridError) Unwrap() error {
	return ErrInvalidGrid
}

// LoadError represents an error while loading an input.
type LoadError struct {
	Path      string
	Component string // "grid", "dictionary", "puzzle"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s %q: %v", e.Component, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
