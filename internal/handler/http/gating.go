package http

import (
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/router"
	"github.com/MKhiriev/go-action-web/internal/utils"
)

// secureGate lets requests with a current user through and redirects the
// rest to fail. Without a fail location anonymous requests get 401.
func (h *Handler) secureGate(fail string) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.UserFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("anonymous request to secure route")
			if fail == "" {
				h.replyError(w, r, ErrNotAuthenticated)
				return
			}
			http.Redirect(w, r, fail, http.StatusFound)
		})
	}
}
