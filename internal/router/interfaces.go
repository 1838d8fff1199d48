package router

import "net/http"

//go:generate mockgen -source=interfaces.go -destination=../mock/router_mock.go -package=mock

// Middleware wraps a handler. It is the only middleware shape the route
// table accepts.
type Middleware = func(http.Handler) http.Handler

// Table is the HTTP server collaborator of the registrar.
type Table interface {
	// Route registers h for method and path behind chain. The chain runs
	// in order: chain[0] is the outermost middleware.
	Route(method, path string, chain []Middleware, h http.Handler)

	// Fallback sets the handler for requests that match no route.
	Fallback(h http.Handler)

	// Handler returns the http.Handler serving every registered route.
	Handler() http.Handler
}
