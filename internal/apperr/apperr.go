package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the boundary can render it without
// re-deciding status codes.
type Kind int

const (
	Validation Kind = iota
	Authentication
	NotFound
	Conflict
	Persistence
	Crypto
)

var defaultStatus = map[Kind]int{
	Validation:     http.StatusUnprocessableEntity,
	Authentication: http.StatusForbidden,
	NotFound:       http.StatusNotFound,
	Conflict:       http.StatusUnprocessableEntity,
	Persistence:    http.StatusInternalServerError,
	Crypto:         http.StatusInternalServerError,
}

// Error carries a human-readable message together with the HTTP status the
// boundary must emit. Both fields are always set.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Status:  defaultStatus[kind],
	}
}

// WithStatus overrides the default status for kinds that map to more than
// one code (authentication failures are 401 during login, 403 at the guard).
func WithStatus(kind Kind, message string, status int) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Status:  status,
	}
}

// From returns err as an *Error if it is one, otherwise wraps it as a
// generic 500. Internal diagnostic detail never crosses the boundary.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Kind:    Persistence,
		Message: "an unknown error occurred",
		Status:  http.StatusInternalServerError,
	}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
