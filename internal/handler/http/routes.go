package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-action-web/internal/config"
	"github.com/MKhiriev/go-action-web/internal/router"
	"github.com/MKhiriev/go-action-web/models"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the route table for the configured engine, registers routes
// on it and returns the resulting handler.
//
// Every request passes through panic recovery, tracing, access logging,
// the optional request timeout and the optional session middleware before
// reaching a route chain. When cfg.MetricsPath is set the Prometheus
// metrics are served there.
func (h *Handler) Init(cfg config.Server, routes []models.Route) (http.Handler, error) {
	global := []router.Middleware{middleware.Recoverer, h.withTraceID, h.withLogging}
	if cfg.RequestTimeout > 0 {
		global = append(global, middleware.Timeout(cfg.RequestTimeout))
	}
	if h.options.Session != nil {
		global = append(global, h.options.Session)
	}

	if err := checkMetricsPath(cfg.MetricsPath, routes); err != nil {
		return nil, fmt.Errorf("error registering routes: %w", err)
	}

	var table router.Table
	switch cfg.Engine {
	case config.EngineGin:
		gin.SetMode(gin.ReleaseMode)
		table = router.NewGin(gin.New(), global...)
	default:
		table = router.NewChi(chi.NewRouter(), global...)
	}
	table.Fallback(http.HandlerFunc(h.notFound))
	if cfg.MetricsPath != "" {
		table.Route(http.MethodGet, cfg.MetricsPath, nil, h.metrics.handler())
	}

	registrar, err := NewRegistrar(table, h)
	if err != nil {
		return nil, err
	}

	registered, err := registrar.Register(routes)
	if err != nil {
		return nil, fmt.Errorf("error registering routes: %w", err)
	}

	for _, route := range registered {
		h.logger.Info().
			Str("route", route.String()).
			Str("pattern", route.Pattern).
			Msg("route ready")
	}

	return table.Handler(), nil
}

// checkMetricsPath rejects a declared GET route that would shadow the
// metrics endpoint.
func checkMetricsPath(metricsPath string, routes []models.Route) error {
	if metricsPath == "" {
		return nil
	}
	taken := router.Canonical(metricsPath)
	for _, route := range routes {
		if router.Canonical(route.Path) != taken {
			continue
		}
		for _, method := range route.Methods {
			if strings.EqualFold(method, http.MethodGet) {
				return fmt.Errorf("%w %s: GET is reserved for metrics", ErrInvalidRoute, route.Path)
			}
		}
	}
	return nil
}
