package apperror

import (
	"errors"
	"net/http"
)

// Kind tags an Error with its failure category. Handlers translate the kind
// and status into the response envelope exactly once, at the boundary.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// Error carries an HTTP status, a client-facing message and an optional
// details payload (e.g. the missing field name).
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(message string, details map[string]any) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Details: details}
}

func Auth(message string, details map[string]any) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: message, Details: details}
}

func NotFound(message string, details map[string]any) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message, Details: details}
}

// Conflict uses 400, matching the duplicate-record responses of the API.
func Conflict(message string, details map[string]any) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: message, Details: details}
}

func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: message, cause: cause}
}

func Unavailable(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusServiceUnavailable, Message: message, cause: cause}
}

// From returns err as an *Error, wrapping anything unexpected as a generic
// internal failure so internals never leak to the client.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("Erro interno do servidor", err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
