package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping and recovery decisions.
type Kind int

const (
	// Validation is malformed or incomplete input.
	Validation Kind = iota + 1
	// Conflict is a business-rule violation: insufficient stock, inactive
	// schedule, below-minimum quantity, uninitialized configuration.
	Conflict
	// NotFound means a referenced entity does not exist.
	NotFound
	// Unauthorized means a missing session or insufficient role.
	Unauthorized
	// Internal is everything unexpected; its message is never shown to callers.
	Internal
)

// Error is a classified application error with a user-presentable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...interface{}) error {
	return &Error{Kind: Unauthorized, Message: fmt.Sprintf(format, args...)}
}

// Internalf wraps an unexpected error. The cause is kept for logging only.
func Internalf(err error, format string, args ...interface{}) error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the classification of err, defaulting to Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns what the caller is allowed to see: the classified message
// for recoverable errors, a generic line for internal ones.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "error interno del servidor"
}
