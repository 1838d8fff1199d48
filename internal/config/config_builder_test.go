package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.Auth.TokenSignKey = "secret"
	cfg.RoutesFilePath = "routes.json"
	return cfg
}

func boolPtr(v bool) *bool { return &v }

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config never
// passes validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that later sources override non-zero
// fields and keep the rest.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "first"}, RoutesFilePath: "a.json"},
		&StructuredConfig{Auth: Auth{TokenSignKey: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Auth.TokenSignKey)
	assert.Equal(t, "a.json", cfg.RoutesFilePath)
	assert.Equal(t, EngineChi, cfg.Server.Engine)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

// TestBuild_ExplicitFalseOverridesTrue verifies that pointer options are not
// dereferenced during merge.
func TestBuild_ExplicitFalseOverridesTrue(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Adapter: Adapter{IncludeRequest: boolPtr(true), ParseBody: boolPtr(true)}},
		&StructuredConfig{Adapter: Adapter{IncludeRequest: boolPtr(false)}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Adapter.IncludeRequest)
	assert.False(t, *cfg.Adapter.IncludeRequest)
	require.NotNil(t, cfg.Adapter.ParseBody)
	assert.True(t, *cfg.Adapter.ParseBody)
	assert.Nil(t, cfg.Adapter.IncludeResponse)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsFileConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"engine": "gin"},
		"auth":   map[string]any{"token_sign_key": "from-json"},
		"routes": "routes.toml",
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path, Auth: Auth{TokenSignKey: "from-env"}})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, EngineGin, cfg.Server.Engine)
	assert.Equal(t, "from-json", cfg.Auth.TokenSignKey)
	assert.Equal(t, "routes.toml", cfg.RoutesFilePath)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithFlags_BadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"unknown engine", func(c *StructuredConfig) { c.Server.Engine = "echo" }, ErrInvalidServerConfigs},
		{"negative timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, ErrInvalidServerConfigs},
		{"relative metrics path", func(c *StructuredConfig) { c.Server.MetricsPath = "metrics" }, ErrInvalidServerConfigs},
		{"negative body limit", func(c *StructuredConfig) { c.Adapter.MaxBodyBytes = -1 }, ErrInvalidAdapterConfigs},
		{"no sign key", func(c *StructuredConfig) { c.Auth.TokenSignKey = "" }, ErrInvalidAuthConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.Auth.TokenDuration = 0 }, ErrInvalidAuthConfigs},
		{"bad bus address", func(c *StructuredConfig) { c.Bus.RemoteAddress = "http://[::1" }, ErrInvalidBusConfigs},
		{"no routes file", func(c *StructuredConfig) { c.RoutesFilePath = "" }, ErrNoRoutesFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
