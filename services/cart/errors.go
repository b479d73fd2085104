package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccommodation = errors.New("invalid accommodation")
	ErrInvalidExperience    = errors.New("invalid experience")
	ErrInvalidSuggestion    = errors.New("invalid nearby suggestion")

	// ErrUnsupportedVersion is returned by DecodeSnapshot for envelopes written by another format version.
	ErrUnsupportedVersion = errors.New("unsupported cart snapshot version")
)

// ValidationError reports a record rejected by an add or update. The cart is left unchanged.
type ValidationError struct {
	Kind   error
	ID     string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.ID, e.Reason)
}

// Unwrap lets errors.Is match both the kind sentinel and the underlying reason.
func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, e.Reason}
}

func newValidationError(kind error, id string, reason error) *ValidationError {
	return &ValidationError{Kind: kind, ID: id, Reason: reason}
}
