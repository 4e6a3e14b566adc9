// Package common contains shared constants and sentinel errors used across
// the panel and backend layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")

	// Input validation errors (missing required field, bad enum value).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials is deliberately generic: it never
	// says whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")

	// Transport-level errors (collaborator unreachable or call cancelled).
	ErrTransport = errors.New("transport error")

	// ErrConflict is returned when a mutation targets an identifier that
	// already has an operation in flight.
	ErrConflict = errors.New("operation already in flight")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
