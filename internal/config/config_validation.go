// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged configuration can be used to start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	switch cfg.Server.Engine {
	case EngineChi, EngineGin:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidServerConfigs, cfg.Server.Engine)
	}

	if cfg.Server.MetricsPath != "" && !strings.HasPrefix(cfg.Server.MetricsPath, "/") {
		return fmt.Errorf("%w: metrics path must start with /", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: negative body limit", ErrInvalidAdapterConfigs)
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Bus.RemoteAddress != "" {
		if _, err := url.Parse(cfg.Bus.RemoteAddress); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBusConfigs, err)
		}
	}

	if cfg.RoutesFilePath == "" {
		return ErrNoRoutesFile
	}

	return nil
}
