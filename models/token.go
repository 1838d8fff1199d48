package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token issued to or presented by a user.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]; Name and Roles are private claims carried next to
// the standard ones.
type Token struct {
	// Token is the underlying parsed or freshly created JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Name is the user display name claim.
	Name string `json:"name,omitempty"`

	// Roles is the user roles claim.
	Roles []string `json:"roles,omitempty"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// User builds the [User] described by the token claims.
func (t *Token) User() *User {
	return &User{
		ID:    t.Subject,
		Name:  t.Name,
		Roles: t.Roles,
	}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
