// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the adapter. It is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: name, log level, version and the
	// HMAC key used by the integrity middleware.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, the router engine and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the request-to-action translation options.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Bus selects and configures the action bus.
	Bus Bus `envPrefix:"BUS_"`

	// Auth holds authentication strategy settings.
	Auth Auth `envPrefix:"AUTH_"`

	// RoutesFilePath is the JSON or TOML file with route descriptors.
	// Env: ROUTES
	RoutesFilePath string `env:"ROUTES"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flags.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Name is used as the logger role.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the application version reported at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// HashKey is the HMAC key for the "integrity" middleware.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Engine selects the route table implementation: "chi" or "gin".
	// Env: SERVER_ENGINE
	Engine string `env:"ENGINE"`

	// RequestTimeout bounds a single request when non-zero.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadTimeout is passed to http.Server.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout is passed to http.Server.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// MetricsPath is where Prometheus metrics are served. Empty disables
	// the endpoint. It must not collide with a declared route.
	// Env: SERVER_METRICS_PATH
	MetricsPath string `env:"METRICS_PATH"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the options of the dispatch translator. The boolean options
// are pointers so that "not set" can be told apart from "false" while
// merging sources; they are resolved exactly once when the handler is built.
type Adapter struct {
	// ParseBody makes the translator read the request body itself.
	// Env: ADAPTER_PARSE_BODY
	ParseBody *bool `env:"PARSE_BODY"`

	// IncludeRequest attaches the raw *http.Request to every action.
	// Env: ADAPTER_INCLUDE_REQUEST
	IncludeRequest *bool `env:"INCLUDE_REQUEST"`

	// IncludeResponse attaches the raw http.ResponseWriter to every action.
	// Env: ADAPTER_INCLUDE_RESPONSE
	IncludeResponse *bool `env:"INCLUDE_RESPONSE"`

	// MaxBodyBytes limits the size of bodies read by the body reader and
	// buffered by the json and integrity middleware.
	// Accepts plain byte counts and sizes like "2MB".
	// Env: ADAPTER_MAX_BODY_BYTES
	MaxBodyBytes ByteSize `env:"MAX_BODY_BYTES"`
}

// Bus configures the action bus. An empty RemoteAddress selects the
// in-process bus with the built-in actions.
type Bus struct {
	// RemoteAddress is the base URL of a remote action service.
	// Env: BUS_REMOTE_ADDRESS
	RemoteAddress string `env:"REMOTE_ADDRESS"`

	// RequestTimeout bounds one remote act call.
	// Env: BUS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds authentication settings.
type Auth struct {
	// TokenSignKey signs and verifies JWT tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenCookie is the cookie the jwt strategy reads when no
	// Authorization header is present.
	// Env: AUTH_TOKEN_COOKIE
	TokenCookie string `env:"TOKEN_COOKIE"`

	// SessionStrategy names the strategy used to populate the current user
	// on every request. Empty disables session lookup.
	// Env: AUTH_SESSION_STRATEGY
	SessionStrategy string `env:"SESSION_STRATEGY"`

	// BasicUsers maps login to bcrypt hash for the basic strategy.
	// Env: AUTH_BASIC_USERS (format "alice:$2a$10$...,bob:$2a$10$...")
	BasicUsers map[string]string `env:"BASIC_USERS"`
}

// Defaults returns the lowest-priority configuration source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     "action-web",
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			Engine:          EngineChi,
			MetricsPath:     "/metrics",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			MaxBodyBytes: 1 << 20,
		},
		Auth: Auth{
			TokenIssuer:     "action-web",
			TokenDuration:   time.Hour,
			TokenCookie:     "token",
			SessionStrategy: "jwt",
		},
	}
}

// Router engines accepted by Server.Engine.
const (
	EngineChi = "chi"
	EngineGin = "gin"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
