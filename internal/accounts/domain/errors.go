package domain

import "errors"

// Error kinds. Every failure a flow reports wraps exactly one of these; the
// HTTP boundary maps them to a status. Anything else is an internal fault.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the kind so callers can use errors.Is(err, domain.ErrConflict).
func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) error   { return &Error{Kind: ErrValidation, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: ErrNotFound, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: ErrConflict, Message: msg} }

// Message returns the client-facing message of err, or "" when err is not a
// domain error.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
