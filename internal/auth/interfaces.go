package auth

import (
	"net/http"

	"github.com/MKhiriev/go-action-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

// Middleware is the shape of every middleware the provider returns.
type Middleware = func(http.Handler) http.Handler

// Options carries the redirect targets of an auth route.
type Options struct {
	// FailureRedirect is where failed requests go. Empty means 401.
	FailureRedirect string
	// SuccessRedirect is where authenticated requests go. Empty means the
	// request continues down the chain.
	SuccessRedirect string
}

// Provider resolves a strategy name into a middleware.
type Provider interface {
	Authenticate(strategy string, opts Options) (Middleware, error)
}

// Strategy extracts and verifies the credentials of a request.
//
// Authenticate returns an error wrapping ErrUnauthenticated when the
// credentials are missing or wrong. Any other error is an internal failure.
type Strategy interface {
	Authenticate(r *http.Request) (*models.User, error)
}

// Challenger is implemented by strategies that want a WWW-Authenticate
// header on 401 responses.
type Challenger interface {
	Challenge() string
}
