package database

import "errors"

// Shared error taxonomy for the data access layer. Repository and service
// failures either wrap one of these sentinels or are storage failures that
// propagate with context attached.
var (
	// ErrNotFound indicates an identifier did not resolve to a stored row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed request shape, detected before
	// any transaction is opened.
	ErrInvalidInput = errors.New("invalid input")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
