package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)
	ErrUnionNotFound    = fmt.Errorf("%w: union", ErrNotFound)

	// Validation errors
	ErrNilArgument       = errors.New("required argument is nil")
	ErrInvalidValue      = errors.New("invalid value")
	ErrAttributeMismatch = errors.New("attribute mismatch")
	ErrInsufficientData  = errors.New("insufficient data for analysis")

	// Computation errors
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrComplementMissing    = errors.New("complementary union not registered")
	ErrEmptyUpperApprox     = errors.New("upper approximation is empty")
)

// Error constructors with context
func NewNilArgumentError(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

func NewInvalidValueError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidValue, field, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewUnsupportedOperationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidValueError(err error) bool {
	return errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrAttributeMismatch) ||
		errors.Is(err, ErrNilArgument)
}

func IsComputationError(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation) ||
		errors.Is(err, ErrComplementMissing) ||
		errors.Is(err, ErrEmptyUpperApprox)
}
