package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: run", ErrNotFound)

	// Input errors
	ErrLengthMismatch   = errors.New("paired vectors have different lengths")
	ErrOutOfRange       = errors.New("pseudo-observation outside [0,1]")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Model errors
	ErrUnknownFamily       = errors.New("unknown copula family code")
	ErrFamilyNotRegistered = errors.New("no model registered for family")

	// Numerical errors
	ErrDegenerateVariance = errors.New("zero variance in log-likelihood differences")
)

// NewNotFoundError builds a not-found error with resource context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// IsNotFoundError reports whether err wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
