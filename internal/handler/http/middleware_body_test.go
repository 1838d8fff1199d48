package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithParsedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	var parsed map[string]any
	var raw string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parsed, _ = body.FromContext(r.Context())
		data, _ := io.ReadAll(r.Body)
		raw = string(data)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	serve(h.withParsedBody(next), req)

	assert.Equal(t, map[string]any{"a": "b"}, parsed)
	assert.Equal(t, `{"a":"b"}`, raw)
}

func TestWithParsedBody_Malformed(t *testing.T) {
	h, _ := newTestHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h.withParsedBody(next), req)

	assert.False(t, nextCalled)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"statusCode":400,"error":"Bad Request","message":"malformed request body: unexpected end of JSON input"}`, rec.Body.String())
}

func TestWithParsedBody_NoBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.withParsedBody(okHandler()), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithParsedBody_OversizedStream(t *testing.T) {
	const limit = 1024
	h, _ := newTestHandler(t, func(o *Options) { o.MaxBodyBytes = limit })

	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	stream := &endlessBody{}
	req := httptest.NewRequest(http.MethodPost, "/", stream)
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h.withParsedBody(next), req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	// MaxBytesReader stops after limit+1 bytes, rounded up to one read buffer
	assert.Less(t, stream.read, int64(64*1024))
}

func TestWithParsedBody_DefaultLimit(t *testing.T) {
	h, _ := newTestHandler(t)

	stream := &endlessBody{}
	req := httptest.NewRequest(http.MethodPost, "/", stream)
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h.withParsedBody(okHandler()), req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.LessOrEqual(t, stream.read, 2*body.DefaultMaxBytes)
}
