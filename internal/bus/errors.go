// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bus

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoMatchingAction = errors.New("no matching action")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrRemoteAction     = errors.New("remote action failed")
	ErrRemoteUnreached  = errors.New("remote bus unreachable")
)

// Error is an action failure carrying the HTTP status it should be answered
// with. Actions return it to pick a status other than 500.
type Error struct {
	Status int
	Err    error
}

// NewError returns an *Error with status and message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Err: errors.New(message)}
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) StatusCode() int { return e.Status }

func notFound(pattern string) *Error {
	return &Error{Status: http.StatusNotFound, Err: fmt.Errorf("%w: %s", ErrNoMatchingAction, pattern)}
}
