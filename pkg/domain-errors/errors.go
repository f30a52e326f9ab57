// Package domainerrors provides coded domain errors.
//
// Services return these instead of raw errors so callers (handlers, tests)
// can branch on a stable code while the message stays human-readable.
// Expected business-rule failures travel as CodeValidation / CodeNotFound;
// infrastructure problems are wrapped as CodeInternal with a generic message
// and the technical detail preserved in the chain for logging only.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeNotFound means a referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeValidation means an expected business-rule violation. The message
	// always explains which precondition failed and, where applicable, which
	// flag would satisfy it.
	CodeValidation Code = "validation"
	// CodeConflict means an optimistic-concurrency or uniqueness conflict.
	// Callers may retry with fresh data.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation means an entity invariant would be broken.
	// Model constructors and transition guards return this.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInvalidInput means malformed input at a trust boundary (bad UUID,
	// empty identifier).
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest means a malformed request at the transport boundary.
	CodeBadRequest Code = "bad_request"
	// CodeUnauthorized means the caller is not authenticated.
	CodeUnauthorized Code = "unauthorized"
	// CodeTimeout means the operation was cancelled or timed out.
	CodeTimeout Code = "timeout"
	// CodeInternal means an infrastructure failure. The message is generic;
	// details stay in the wrapped cause.
	CodeInternal Code = "internal"
)

// Error is a domain error with a code, a message, and an optional cause.
type Error struct {
	code    Code
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the human-readable message without the cause chain.
// Handlers use this to render responses that do not leak internals.
func (e *Error) Message() string {
	return e.message
}

// Code returns the error's classification.
func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{code: code, message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Unwrap for logging; Message() hides it.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the outermost domain error in the chain, or
// CodeInternal when err is not a domain error.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.code
	}
	return CodeInternal
}

// MessageOf returns the safe, human-readable message for err. Non-domain
// errors collapse to a generic message so infrastructure detail never
// crosses the engine boundary.
func MessageOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.message
	}
	return "operation failed, try again"
}
