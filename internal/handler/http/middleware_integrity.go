package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/logger"
)

const integrityHeader = "HashSHA256"

// withIntegrity checks the HMAC-SHA256 of the raw request body against the
// HashSHA256 header. Requests without a body pass unchecked. The body is
// restored for the handlers that follow.
func (h *Handler) withIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.bodyLimit()))
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.replyError(w, r, body.Classify(err))
				return
			}
			h.replyError(w, r, fmt.Errorf("%w: %v", ErrIntegrityCheckFailed, err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		if len(raw) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		hash := r.Header.Get(integrityHeader)
		if hash == "" {
			h.replyError(w, r, fmt.Errorf("%w: missing %s header", ErrIntegrityCheckFailed, integrityHeader))
			return
		}

		if !h.hasher.Equal(raw, hash) {
			log.Warn().Str("hash", hash).Msg("hashes are not equal")
			h.replyError(w, r, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
