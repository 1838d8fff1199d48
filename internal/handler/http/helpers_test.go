package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/mock"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler with a mocked bus and the default options.
func newTestHandler(t *testing.T, opts ...func(*Options)) (*Handler, *mock.MockBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBus(ctrl)

	options := Options{IncludeRequest: true, IncludeResponse: true, HashKey: "test-key"}
	for _, opt := range opts {
		opt(&options)
	}

	return NewHandler(bus, nil, body.NewReader(0), options, logger.Nop()), bus
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// withBufferLogger puts a logger writing to buf into the request context the
// same way withTraceID does.
func withBufferLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf).With().Timestamp().Logger()
	return r.WithContext(l.WithContext(r.Context()))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// endlessBody never reaches EOF and counts the bytes handed out.
type endlessBody struct {
	read int64
}

func (b *endlessBody) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	b.read += int64(len(p))
	return len(p), nil
}
