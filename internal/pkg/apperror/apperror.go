// Package apperror carries the stable error taxonomy exposed by the core:
// handlers map kinds to HTTP statuses, messages stay human-readable and
// never leak internals.
package apperror

import "errors"

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// AppError is an error with a stable kind and a user-facing message
type AppError struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, kept for logs only
	Err error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation builds a validation error (malformed or contradictory input)
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NotFound builds a not-found error for an unresolved entity reference
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// Conflict builds a conflict error
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected failure behind a generic message; err is
// preserved for logging via Unwrap.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind of err, defaulting to KindInternal for plain errors
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
