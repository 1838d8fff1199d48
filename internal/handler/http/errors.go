// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Registration errors. They are returned before any route reaches the
// route table.
var (
	// ErrNoRouteTable is returned when the registrar has nowhere to register.
	ErrNoRouteTable = errors.New("no context provided")

	// ErrUnresolvedMiddleware is returned for a middleware reference that is
	// neither a function nor a registered name.
	ErrUnresolvedMiddleware = errors.New("expected valid middleware")

	// ErrUnsupportedMethod is returned for an unknown HTTP method token.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrInvalidRoute is returned for a route without path, methods or pattern.
	ErrInvalidRoute = errors.New("invalid route")
)

// Request errors.
var (
	// ErrRouteNotFound answers requests that match no route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrIntegrityCheckFailed is returned by the integrity middleware.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrNotAuthenticated is returned by the secure gate when the route has
	// no failure redirect.
	ErrNotAuthenticated = errors.New("authentication required")
)
