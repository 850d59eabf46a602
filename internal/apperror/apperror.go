// Package apperror defines the typed errors that services return and the
// HTTP boundary turns into responses.
package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindTooManyRequests
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Body is the structured error payload.
type Body struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error,omitempty"`
}

// Error is a domain error. Body is written to the client verbatim: either a
// Body value or a bare string.
type Error struct {
	Kind Kind
	Body any
	Err  error
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

func (e *Error) message() string {
	switch b := e.Body.(type) {
	case string:
		return b
	case Body:
		if s, ok := b.Message.(string); ok {
			return s
		}
		if list, ok := b.Message.([]string); ok && len(list) > 0 {
			return list[0]
		}
	}
	return ""
}

func newStructured(kind Kind, message any) *Error {
	status := kind.Status()
	return &Error{
		Kind: kind,
		Body: Body{
			StatusCode: status,
			Message:    message,
			Error:      http.StatusText(status),
		},
	}
}

// Validation builds a 400 error with one message per failed constraint.
func Validation(messages ...string) *Error {
	if len(messages) == 1 {
		return newStructured(KindValidation, messages[0])
	}
	return newStructured(KindValidation, messages)
}

// InvalidFields builds a 400 error whose message is always a list, one entry
// per rejected field.
func InvalidFields(messages []string) *Error {
	return newStructured(KindValidation, messages)
}

func Conflict(message string) *Error {
	return newStructured(KindConflict, message)
}

func Unauthorized(message string) *Error {
	return newStructured(KindUnauthorized, message)
}

func NotFound(message string) *Error {
	return newStructured(KindNotFound, message)
}

// TooManyRequests carries no "error" field, matching the throttler payload.
func TooManyRequests(message string) *Error {
	return &Error{
		Kind: KindTooManyRequests,
		Body: Body{
			StatusCode: http.StatusTooManyRequests,
			Message:    message,
		},
	}
}

// Internal wraps an unexpected failure. The cause is never sent to clients.
func Internal(err error) *Error {
	return &Error{
		Kind: KindInternal,
		Body: http.StatusText(http.StatusInternalServerError),
		Err:  err,
	}
}

// From returns err as an *Error, wrapping anything unrecognised as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Write sends the error body with its status code.
func Write(w http.ResponseWriter, err *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Status())
	json.NewEncoder(w).Encode(err.Body)
}
