package http

import (
	"sort"

	"github.com/MKhiriev/go-action-web/internal/router"
	"github.com/go-chi/chi/v5/middleware"
)

// MiddlewareRegistry maps names used in route files to middleware. It is
// read-only once the handler is built.
type MiddlewareRegistry map[string]router.Middleware

// Lookup returns the middleware registered under name.
func (m MiddlewareRegistry) Lookup(name string) (router.Middleware, bool) {
	mw, ok := m[name]
	return mw, ok && mw != nil
}

func (m MiddlewareRegistry) merge(other MiddlewareRegistry) MiddlewareRegistry {
	out := make(MiddlewareRegistry, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func (m MiddlewareRegistry) names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (h *Handler) defaultRegistry() MiddlewareRegistry {
	registry := MiddlewareRegistry{
		"traceid": h.withTraceID,
		"logging": h.withLogging,
		"gzip":    withGZip,
		"metrics": h.metrics.withMetrics,
		"json":    h.withParsedBody,
		"nocache": middleware.NoCache,
		"realip":  middleware.RealIP,
	}
	if h.hasher != nil {
		registry["integrity"] = h.withIntegrity
	}
	return registry
}
