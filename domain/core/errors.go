package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Malformed-input errors: computation aborts, no partial result.
	ErrMalformedMatrix  = errors.New("malformed transition matrix")
	ErrMalformedCounts  = errors.New("malformed base counts")
	ErrInvalidDistance  = errors.New("invalid maximum edit distance")
	ErrInvalidModel     = errors.New("invalid singleton model")
	ErrInsufficientData = errors.New("insufficient data for profile")
)

// NewMatrixShapeError reports a transition matrix that is not 4x4.
func NewMatrixShapeError(rows, cols int) error {
	return fmt.Errorf("%w: got %dx%d, want 4x4", ErrMalformedMatrix, rows, cols)
}

// NewMatrixEntryError reports a transition probability outside [0,1].
func NewMatrixEntryError(row, col int, value float64) error {
	return fmt.Errorf("%w: entry (%d,%d) = %g outside [0,1]", ErrMalformedMatrix, row, col, value)
}

// NewModelLengthError reports mismatched lambda/cdf lengths.
func NewModelLengthError(nlams, ncdf int) error {
	return fmt.Errorf("%w: %d lambdas vs %d cdf values", ErrInvalidModel, nlams, ncdf)
}

// Error checking helpers
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedMatrix) ||
		errors.Is(err, ErrMalformedCounts) ||
		errors.Is(err, ErrInvalidDistance)
}

func IsInvalidModel(err error) bool {
	return errors.Is(err, ErrInvalidModel)
}
