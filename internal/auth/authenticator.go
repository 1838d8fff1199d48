// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
)

// Authenticator is a registry of named strategies. Strategies are added
// with Use during startup; after that it is read-only and safe for
// concurrent use.
type Authenticator struct {
	strategies map[string]Strategy
	logger     *logger.Logger
}

func NewAuthenticator(logger *logger.Logger) *Authenticator {
	return &Authenticator{
		strategies: make(map[string]Strategy),
		logger:     logger,
	}
}

// Use registers strategy under name, replacing any previous one.
func (a *Authenticator) Use(name string, strategy Strategy) *Authenticator {
	a.strategies[name] = strategy
	return a
}

func (a *Authenticator) strategy(name string) (Strategy, error) {
	s, ok := a.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Authenticate returns the gate middleware for strategy.
func (a *Authenticator) Authenticate(strategy string, opts Options) (Middleware, error) {
	s, err := a.strategy(strategy)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, err := s.Authenticate(r)
			if err != nil {
				if !errors.Is(err, ErrUnauthenticated) {
					log.Err(err).Str("strategy", strategy).Msg("authentication strategy failed")
					writeError(w, http.StatusInternalServerError, "authentication failed")
					return
				}

				log.Debug().Err(err).Str("strategy", strategy).Msg("authentication denied")
				if opts.FailureRedirect != "" {
					http.Redirect(w, r, opts.FailureRedirect, http.StatusFound)
					return
				}
				if c, ok := s.(Challenger); ok {
					w.Header().Set("WWW-Authenticate", c.Challenge())
				}
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			if opts.SuccessRedirect != "" {
				http.Redirect(w, r, opts.SuccessRedirect, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}, nil
}

// Session returns a middleware that stores the user authenticated by
// strategy in the request context when the request carries valid
// credentials. It never rejects a request.
func (a *Authenticator) Session(strategy string) (Middleware, error) {
	s, err := a.strategy(strategy)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := s.Authenticate(r)
			if err != nil {
				if !errors.Is(err, ErrNoCredentials) {
					logger.FromRequest(r).Debug().Err(err).Str("strategy", strategy).Msg("session credentials rejected")
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, map[string]any{
		"statusCode": status,
		"error":      http.StatusText(status),
		"message":    message,
	}, status)
}
