package handler

import (
	"fmt"

	"github.com/MKhiriev/go-action-web/internal/actions"
	"github.com/MKhiriev/go-action-web/internal/auth"
	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/bus"
	"github.com/MKhiriev/go-action-web/internal/config"
	"github.com/MKhiriev/go-action-web/internal/handler/http"
	"github.com/MKhiriev/go-action-web/internal/logger"
)

// Handlers holds the transport handlers and the bus they dispatch to.
type Handlers struct {
	HTTP *http.Handler
	Bus  bus.Bus
}

// NewHandlers builds the action bus, the authentication strategies and the
// HTTP handler from cfg.
func NewHandlers(cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil {
		return nil, errNoHandlersAreCreated
	}

	actionBus, err := newBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	authenticator := newAuthenticator(cfg.Auth, logger)

	options := http.NewOptions(cfg.Adapter, cfg.App)
	if cfg.Auth.SessionStrategy != "" {
		session, err := authenticator.Session(cfg.Auth.SessionStrategy)
		if err != nil {
			return nil, fmt.Errorf("error creating session middleware: %w", err)
		}
		options.Session = session
	}

	return &Handlers{
		HTTP: http.NewHandler(actionBus, authenticator, body.NewReader(cfg.Adapter.MaxBodyBytes.Int64()), options, logger),
		Bus:  actionBus,
	}, nil
}

// newBus returns the remote bus when an address is configured and the local
// bus with the built-in actions otherwise.
func newBus(cfg *config.StructuredConfig, logger *logger.Logger) (bus.Bus, error) {
	if cfg.Bus.RemoteAddress != "" {
		remote, err := bus.NewRemote(cfg.Bus.RemoteAddress, cfg.Bus.RequestTimeout, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating remote bus: %w", err)
		}
		logger.Info().Str("address", cfg.Bus.RemoteAddress).Msg("using remote bus")
		return remote, nil
	}

	local := bus.NewLocal(logger)
	if err := actions.New(cfg.Auth).Register(local); err != nil {
		return nil, fmt.Errorf("error registering actions: %w", err)
	}
	logger.Info().Msg("using local bus")
	return local, nil
}

func newAuthenticator(cfg config.Auth, logger *logger.Logger) *auth.Authenticator {
	authenticator := auth.NewAuthenticator(logger).
		Use("jwt", &auth.JWT{
			SignKey: cfg.TokenSignKey,
			Issuer:  cfg.TokenIssuer,
			Cookie:  cfg.TokenCookie,
		})

	if len(cfg.BasicUsers) > 0 {
		authenticator.Use("basic", &auth.Basic{Users: cfg.BasicUsers, Realm: cfg.TokenIssuer})
	}
	return authenticator
}
