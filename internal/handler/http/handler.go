package http

import (
	"github.com/MKhiriev/go-action-web/internal/auth"
	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/bus"
	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
)

type Handler struct {
	bus      bus.Bus
	auth     auth.Provider
	body     body.Reader
	options  Options
	registry MiddlewareRegistry
	hasher   *utils.Hasher
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(b bus.Bus, provider auth.Provider, reader body.Reader, options Options, logger *logger.Logger) *Handler {
	h := &Handler{
		bus:     b,
		auth:    provider,
		body:    reader,
		options: options,
		metrics: newMetrics(),
		logger:  logger,
	}
	if options.HashKey != "" {
		h.hasher = utils.NewHasher(options.HashKey)
	}
	h.registry = h.defaultRegistry().merge(options.Middleware)

	logger.Info().
		Bool("parse_body", options.ParseBody).
		Bool("include_request", options.IncludeRequest).
		Bool("include_response", options.IncludeResponse).
		Strs("middleware", h.registry.names()).
		Msg("http handler created")
	return h
}
