package web

import "github.com/pkg/errors"

// Error is the request error carried up from repositories and handlers to the
// response writer. Status is the http status the response should use. Fields
// holds per-field validation messages when the error came from input checking.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps a provided error with an http status.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// NewValidationError reports bad input with per-field messages.
func NewValidationError(err error, status int, fields map[string]string) error {
	return &Error{Err: err, Status: status, Fields: fields}
}

// IsRequestError checks whether err is a *web.Error.
func IsRequestError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
