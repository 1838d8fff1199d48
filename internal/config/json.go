package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name"`
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
		HashKey  string `json:"hash_key"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		Engine          string   `json:"engine"`
		MetricsPath     string   `json:"metrics_path"`
		RequestTimeout  Duration `json:"request_timeout"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ParseBody       *bool    `json:"parse_body"`
		IncludeRequest  *bool    `json:"include_request"`
		IncludeResponse *bool    `json:"include_response"`
		MaxBodyBytes    ByteSize `json:"max_body_bytes"`
	} `json:"adapter,omitempty"`

	Bus struct {
		RemoteAddress  string   `json:"remote_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"bus,omitempty"`

	Auth struct {
		TokenSignKey    string            `json:"token_sign_key"`
		TokenIssuer     string            `json:"token_issuer"`
		TokenDuration   Duration          `json:"token_duration"`
		TokenCookie     string            `json:"token_cookie"`
		SessionStrategy string            `json:"session_strategy"`
		BasicUsers      map[string]string `json:"basic_users"`
	} `json:"auth,omitempty"`

	Routes string `json:"routes"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     jsonCfg.App.Name,
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
			HashKey:  jsonCfg.App.HashKey,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			Engine:          jsonCfg.Server.Engine,
			MetricsPath:     jsonCfg.Server.MetricsPath,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ParseBody:       jsonCfg.Adapter.ParseBody,
			IncludeRequest:  jsonCfg.Adapter.IncludeRequest,
			IncludeResponse: jsonCfg.Adapter.IncludeResponse,
			MaxBodyBytes:    jsonCfg.Adapter.MaxBodyBytes,
		},
		Bus: Bus{
			RemoteAddress:  jsonCfg.Bus.RemoteAddress,
			RequestTimeout: time.Duration(jsonCfg.Bus.RequestTimeout),
		},
		Auth: Auth{
			TokenSignKey:    jsonCfg.Auth.TokenSignKey,
			TokenIssuer:     jsonCfg.Auth.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.Auth.TokenDuration),
			TokenCookie:     jsonCfg.Auth.TokenCookie,
			SessionStrategy: jsonCfg.Auth.SessionStrategy,
			BasicUsers:      jsonCfg.Auth.BasicUsers,
		},
		RoutesFilePath: jsonCfg.Routes,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
