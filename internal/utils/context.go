// Package utils provides general-purpose helpers shared by the adapter:
// typed context keys for the current user, JWT issuing and validation,
// HTTP reply writers, the resty-based HTTP client and HMAC hashing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-action-web/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the current user is stored.
var UserCtxKey = contextKey("currentUser")

// WithUser returns a copy of ctx carrying user as the current user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext returns the current user and true if one is set.
//
// A nil *models.User stored in the context is reported as absent.
//
//	user, ok := utils.UserFromContext(r.Context())
//	if !ok {
//	    // anonymous request
//	}
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	return user, ok && user != nil
}
