// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"net/http"
	"strings"
)

// Route describes one logical HTTP endpoint and how requests to it are
// turned into a single action on the bus.
//
// A Route is created once (usually loaded from the routes file) and is
// read-only after registration.
type Route struct {
	// Name is an optional label used only in logs.
	Name string `json:"name,omitempty" toml:"name"`

	// Path is the URL pattern. Both ":id" and "{id}" parameter styles are accepted.
	Path string `json:"path" toml:"path"`

	// Methods lists HTTP methods served by the route. Case-insensitive on input.
	Methods []string `json:"methods" toml:"methods"`

	// Pattern is the opaque key the bus uses to find the action handler.
	Pattern string `json:"pattern" toml:"pattern"`

	// Middleware is the ordered list of middleware that run before the action.
	Middleware []MiddlewareRef `json:"middleware,omitempty" toml:"middleware"`

	// Auth, when set, puts an authentication strategy in front of the chain.
	Auth *AuthGate `json:"auth,omitempty" toml:"auth"`

	// Secure, when set, requires an already authenticated user.
	Secure *SecureGate `json:"secure,omitempty" toml:"secure"`

	// Redirect is the destination of every successful dispatch, if set.
	Redirect string `json:"redirect,omitempty" toml:"redirect"`

	// AutoReply writes the action result as the response body.
	AutoReply bool `json:"autoreply,omitempty" toml:"autoreply"`
}

// AuthGate configures authentication for a route.
type AuthGate struct {
	// Strategy is the name of the registered authentication strategy.
	Strategy string `json:"strategy" toml:"strategy"`
	// Fail is where the client is redirected when authentication fails.
	Fail string `json:"fail,omitempty" toml:"fail"`
	// Pass is where the client is redirected when authentication succeeds.
	Pass string `json:"pass,omitempty" toml:"pass"`
}

// SecureGate requires a current user on the request.
type SecureGate struct {
	// Fail is where anonymous clients are redirected.
	Fail string `json:"fail" toml:"fail"`
}

// String returns a short identification of the route for logs and errors.
func (r Route) String() string {
	if r.Name != "" {
		return r.Name
	}
	return strings.Join(r.Methods, ",") + " " + r.Path
}

// MiddlewareRef references a middleware either directly or by its name in
// the middleware registry.
//
// The zero value is an empty named reference and never resolves.
type MiddlewareRef struct {
	name   string
	direct func(http.Handler) http.Handler
}

// DirectMiddleware wraps a middleware function.
func DirectMiddleware(m func(http.Handler) http.Handler) MiddlewareRef {
	return MiddlewareRef{direct: m}
}

// NamedMiddleware references a middleware by registry key.
func NamedMiddleware(name string) MiddlewareRef {
	return MiddlewareRef{name: name}
}

// Direct returns the wrapped middleware and true for direct references.
func (m MiddlewareRef) Direct() (func(http.Handler) http.Handler, bool) {
	return m.direct, m.direct != nil
}

// Name returns the registry key and true for named references.
func (m MiddlewareRef) Name() (string, bool) {
	return m.name, m.direct == nil
}

// String implements fmt.Stringer.
func (m MiddlewareRef) String() string {
	if m.direct != nil {
		return "<func>"
	}
	return m.name
}

// UnmarshalText allows route files to list middleware as plain strings.
func (m *MiddlewareRef) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	if name == "" {
		return errors.New("empty middleware name")
	}
	*m = NamedMiddleware(name)
	return nil
}

// MarshalText implements encoding.TextMarshaler. Direct references are
// written as "<func>".
func (m MiddlewareRef) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
