package http

import (
	"github.com/MKhiriev/go-action-web/internal/config"
	"github.com/MKhiriev/go-action-web/internal/router"
)

// Options are the translator settings. They are resolved once, when the
// handler is built, and never change afterwards.
type Options struct {
	// ParseBody makes the translator read the body with the body reader.
	// When false the body stored by an upstream middleware is used.
	ParseBody bool

	// IncludeRequest and IncludeResponse attach the raw request and
	// response to every action.
	IncludeRequest  bool
	IncludeResponse bool

	// MaxBodyBytes bounds the bodies buffered by the "body" and "integrity"
	// middleware. Non-positive means body.DefaultMaxBytes.
	MaxBodyBytes int64

	// HashKey enables the "integrity" middleware.
	HashKey string

	// Session, when set, runs for every request before routing.
	Session router.Middleware

	// Middleware adds or overrides named middleware.
	Middleware MiddlewareRegistry
}

// NewOptions resolves the adapter configuration. Unset flags take their
// defaults: ParseBody false, IncludeRequest and IncludeResponse true.
func NewOptions(adapter config.Adapter, app config.App) Options {
	return Options{
		ParseBody:       valueOr(adapter.ParseBody, false),
		IncludeRequest:  valueOr(adapter.IncludeRequest, true),
		IncludeResponse: valueOr(adapter.IncludeResponse, true),
		MaxBodyBytes:    adapter.MaxBodyBytes.Int64(),
		HashKey:         app.HashKey,
	}
}

func valueOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
