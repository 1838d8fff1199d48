package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when no strategy is registered under
	// the requested name.
	ErrUnknownStrategy = errors.New("unknown authentication strategy")

	// ErrUnauthenticated is the root of every credential failure.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNoCredentials means the request carries no credentials for the
	// strategy. It wraps ErrUnauthenticated.
	ErrNoCredentials = fmt.Errorf("%w: no credentials", ErrUnauthenticated)

	// ErrInvalidCredentials wraps ErrUnauthenticated.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
)
