package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("contact: invalid value")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("contact: not found")
)

// ValidationError reports a value rejected by one of the constructors.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// NotFoundError reports a reference to a phone or contact that does not exist.
type NotFoundError struct {
	Kind string // "Phone" or "Contact"
	Key  string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found.", e.Kind, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
