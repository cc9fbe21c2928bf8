package errors

import (
	"errors"
	"fmt"
)

// Application error taxonomy. Every upstream or local failure is wrapped
// around one of these sentinels so callers can branch with errors.Is.

var (
	// ErrNotFound indicates a requested record was not found upstream
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates rejected credentials or a missing session
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream indicates the recipe service failed or was unreachable.
	// An expired token is deliberately not distinguished from any other
	// upstream failure.
	ErrUpstream = errors.New("upstream error")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// UnauthorizedError creates an unauthorized error with context
func UnauthorizedError(reason string) error {
	if reason != "" {
		return fmt.Errorf("%s: %w", reason, ErrUnauthorized)
	}
	return ErrUnauthorized
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// UpstreamError creates an upstream error with context
func UpstreamError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrUpstream)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
