package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the route
// file loader.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address, engine
	// or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid translator options.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAuthConfigs indicates missing token settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidBusConfigs indicates a malformed remote bus address.
	ErrInvalidBusConfigs = errors.New("invalid bus configuration")
	// ErrNoRoutesFile is returned when no routes file is configured.
	ErrNoRoutesFile = errors.New("no routes file configured")
	// ErrUnsupportedRoutesFormat is returned for route files that are
	// neither .json nor .toml.
	ErrUnsupportedRoutesFormat = errors.New("unsupported routes file format")
)
