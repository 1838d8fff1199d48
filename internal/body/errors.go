package body

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMalformedBody        = errors.New("malformed request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// Error is a body read failure that knows its HTTP status.
type Error struct {
	Status int
	Err    error
}

func newError(status int, sentinel error, cause error) *Error {
	if cause == nil {
		return &Error{Status: status, Err: sentinel}
	}
	return &Error{Status: status, Err: fmt.Errorf("%w: %v", sentinel, cause)}
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// StatusCode implements the status contract used by the error reply.
func (e *Error) StatusCode() int { return e.Status }

// Classify turns a body read failure into an Error: an exceeded size limit
// is 413, anything else is a malformed body.
func Classify(err error) *Error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return newError(http.StatusRequestEntityTooLarge, ErrBodyTooLarge, nil)
	}
	return newError(http.StatusBadRequest, ErrMalformedBody, err)
}
