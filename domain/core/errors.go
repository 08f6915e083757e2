package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput is the root of the input-validation taxonomy. Every
	// malformed-input failure wraps it so callers can check with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	ErrLengthMismatch    = fmt.Errorf("%w: sequence lengths differ", ErrInvalidInput)
	ErrSampleTooSmall    = fmt.Errorf("%w: sample too small", ErrInvalidInput)
	ErrZeroVariance      = fmt.Errorf("%w: zero sample variance", ErrInvalidInput)
	ErrNonPositiveScale  = fmt.Errorf("%w: scale parameter must be positive", ErrInvalidInput)
	ErrNonPositiveCount  = fmt.Errorf("%w: expected count must be positive", ErrInvalidInput)
	ErrDegreesOfFreedom  = fmt.Errorf("%w: degrees of freedom must be positive", ErrInvalidInput)
	ErrDegenerateTable   = fmt.Errorf("%w: degenerate contingency table", ErrInvalidInput)
	ErrNegativeCellCount = fmt.Errorf("%w: negative cell count", ErrInvalidInput)
)

// Error constructors with context
func NewLengthMismatchError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, want %d", ErrLengthMismatch, what, got, want)
}

func NewSampleTooSmallError(what string, n, min int) error {
	return fmt.Errorf("%w: %s has n=%d, need at least %d", ErrSampleTooSmall, what, n, min)
}

func NewDegreesOfFreedomError(dof float64) error {
	return fmt.Errorf("%w: got %g", ErrDegreesOfFreedom, dof)
}

// Error checking helpers
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
