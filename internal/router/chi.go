// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiTable registers routes on a chi mux.
type ChiTable struct {
	mux *chi.Mux
}

// NewChi returns a route table backed by mux. Global middlewares are
// installed with mux.Use, so they must be passed here, before any route is
// registered.
func NewChi(mux *chi.Mux, global ...Middleware) *ChiTable {
	if len(global) > 0 {
		mux.Use(global...)
	}
	return &ChiTable{mux: mux}
}

func (t *ChiTable) Route(method, path string, chain []Middleware, h http.Handler) {
	middlewares := make([]func(http.Handler) http.Handler, 0, len(chain)+1)
	middlewares = append(middlewares, chiParams)
	middlewares = append(middlewares, chain...)

	t.mux.With(middlewares...).Method(method, chiPath(path), h)
}

// Fallback answers both unmatched paths and unmatched methods with h.
func (t *ChiTable) Fallback(h http.Handler) {
	t.mux.NotFound(h.ServeHTTP)
	t.mux.MethodNotAllowed(h.ServeHTTP)
}

func (t *ChiTable) Handler() http.Handler {
	return t.mux
}

func chiParams(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]string{}
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					params[key] = rctx.URLParams.Values[i]
				}
			}
		}
		next.ServeHTTP(w, r.WithContext(WithParams(r.Context(), params)))
	})
}
