package models

// User is the authenticated principal attached to a request by an
// authentication strategy.
type User struct {
	// ID is the stable user identifier (the "sub" claim for JWT users).
	ID string `json:"id"`

	// Name is the display name or login.
	Name string `json:"name"`

	// Roles is an optional list of role names.
	Roles []string `json:"roles,omitempty"`
}
