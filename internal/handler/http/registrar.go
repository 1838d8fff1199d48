// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-action-web/internal/auth"
	"github.com/MKhiriev/go-action-web/internal/router"
	"github.com/MKhiriev/go-action-web/models"
)

var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodConnect: true,
	http.MethodTrace:   true,
}

// Registrar registers routes with a route table.
type Registrar struct {
	table   router.Table
	handler *Handler
}

// registration is a validated route ready to be registered.
type registration struct {
	route   models.Route
	methods []string
	chain   []router.Middleware
}

// NewRegistrar returns a registrar bound to table. A nil table is a
// configuration error.
func NewRegistrar(table router.Table, handler *Handler) (*Registrar, error) {
	if table == nil {
		return nil, ErrNoRouteTable
	}
	return &Registrar{table: table, handler: handler}, nil
}

// Register validates every route and then registers one handler per route
// and method. Nothing is registered when any route is invalid, including
// two routes serving the same method on the same path. The routes are
// returned unchanged.
func (g *Registrar) Register(routes []models.Route) ([]models.Route, error) {
	registrations := make([]registration, 0, len(routes))
	declared := make(map[string]models.Route, len(routes))
	for _, route := range routes {
		reg, err := g.prepare(route)
		if err != nil {
			return nil, err
		}

		path := router.Canonical(route.Path)
		for _, method := range reg.methods {
			key := method + " " + path
			if prev, ok := declared[key]; ok {
				return nil, fmt.Errorf("%w %s: %s already declared for %s", ErrInvalidRoute, route.Path, method, prev.Pattern)
			}
			declared[key] = route
		}

		registrations = append(registrations, reg)
	}

	for _, reg := range registrations {
		dispatch := g.handler.dispatch(reg.route)
		for _, method := range reg.methods {
			g.table.Route(method, reg.route.Path, reg.chain, dispatch)
		}
		g.handler.logger.Debug().
			Str("path", reg.route.Path).
			Strs("methods", reg.methods).
			Str("pattern", reg.route.Pattern).
			Int("chain", len(reg.chain)).
			Msg("route registered")
	}

	return routes, nil
}

func (g *Registrar) prepare(route models.Route) (registration, error) {
	if route.Path == "" {
		return registration{}, fmt.Errorf("%w: empty path", ErrInvalidRoute)
	}
	if !strings.HasPrefix(route.Path, "/") {
		return registration{}, fmt.Errorf("%w %s: path must begin with /", ErrInvalidRoute, route.Path)
	}
	if len(route.Methods) == 0 {
		return registration{}, fmt.Errorf("%w %s: no methods", ErrInvalidRoute, route.Path)
	}
	if strings.TrimSpace(route.Pattern) == "" {
		return registration{}, fmt.Errorf("%w %s: empty pattern", ErrInvalidRoute, route.Path)
	}

	methods := make([]string, 0, len(route.Methods))
	seen := make(map[string]bool, len(route.Methods))
	for _, m := range route.Methods {
		method := strings.ToUpper(strings.TrimSpace(m))
		if !supportedMethods[method] {
			return registration{}, fmt.Errorf("%w %q on route %s", ErrUnsupportedMethod, m, route.Path)
		}
		if !seen[method] {
			seen[method] = true
			methods = append(methods, method)
		}
	}

	declared, err := g.resolve(route)
	if err != nil {
		return registration{}, err
	}

	chain, err := g.gate(route, declared)
	if err != nil {
		return registration{}, err
	}

	return registration{route: route, methods: methods, chain: chain}, nil
}

func (g *Registrar) resolve(route models.Route) ([]router.Middleware, error) {
	chain := make([]router.Middleware, 0, len(route.Middleware)+1)
	for _, ref := range route.Middleware {
		if fn, ok := ref.Direct(); ok {
			chain = append(chain, fn)
			continue
		}
		name, _ := ref.Name()
		fn, ok := g.handler.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w %q on route %s", ErrUnresolvedMiddleware, ref, route.Path)
		}
		chain = append(chain, fn)
	}
	return chain, nil
}

// gate places the secure gate after the declared middleware, or the auth
// middleware before it. Secure is checked first.
func (g *Registrar) gate(route models.Route, declared []router.Middleware) ([]router.Middleware, error) {
	switch {
	case route.Secure != nil:
		if route.Auth != nil {
			g.handler.logger.Warn().Str("path", route.Path).Msg("route sets both secure and auth, auth is ignored")
		}
		return append(declared, g.handler.secureGate(route.Secure.Fail)), nil

	case route.Auth != nil:
		if g.handler.auth == nil {
			return nil, fmt.Errorf("%w: no authentication provider for route %s", auth.ErrUnknownStrategy, route.Path)
		}
		mw, err := g.handler.auth.Authenticate(route.Auth.Strategy, auth.Options{
			FailureRedirect: route.Auth.Fail,
			SuccessRedirect: route.Auth.Pass,
		})
		if err != nil {
			return nil, fmt.Errorf("error building auth for route %s: %w", route.Path, err)
		}
		return append([]router.Middleware{mw}, declared...), nil

	default:
		return declared, nil
	}
}
