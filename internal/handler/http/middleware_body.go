package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/body"
)

// withParsedBody parses the request body with the body reader and stores
// the result in the request context, where the translator picks it up when
// ParseBody is off. The raw body stays readable downstream.
func (h *Handler) withParsedBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.bodyLimit()))
		if err != nil {
			h.replyError(w, r, body.Classify(err))
			return
		}

		parseReq := r.Clone(r.Context())
		parseReq.Body = io.NopCloser(bytes.NewReader(raw))
		parseReq.ContentLength = int64(len(raw))

		parsed, err := h.body.ReadBody(parseReq)
		if err != nil {
			h.replyError(w, r, err)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		r.ContentLength = int64(len(raw))
		next.ServeHTTP(w, r.WithContext(body.WithBody(r.Context(), parsed)))
	})
}

func (h *Handler) bodyLimit() int64 {
	if h.options.MaxBodyBytes <= 0 {
		return body.DefaultMaxBytes
	}
	return h.options.MaxBodyBytes
}
