package body

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var sc interface{ StatusCode() int }
	require.True(t, errors.As(err, &sc), "error %v has no status", err)
	return sc.StatusCode()
}

func TestReadBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		maxBytes    int64
		want        map[string]any
		wantStatus  int
		wantErr     error
	}{
		{
			name:        "json object",
			body:        `{"ok":true,"n":1}`,
			contentType: "application/json; charset=utf-8",
			want:        map[string]any{"ok": true, "n": float64(1)},
		},
		{
			name: "json without content type",
			body: `{"a":"b"}`,
			want: map[string]any{"a": "b"},
		},
		{
			name:        "json null",
			body:        `null`,
			contentType: "application/json",
			want:        map[string]any{},
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "application/json",
			want:        map[string]any{},
		},
		{
			name:        "urlencoded",
			body:        "name=alice&tag=a&tag=b",
			contentType: "application/x-www-form-urlencoded",
			want:        map[string]any{"name": "alice", "tag": []string{"a", "b"}},
		},
		{
			name:        "malformed json",
			body:        `{"ok":`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantErr:     ErrMalformedBody,
		},
		{
			name:        "json array",
			body:        `[1,2]`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantErr:     ErrMalformedBody,
		},
		{
			name:        "too large",
			body:        `{"data":"` + strings.Repeat("x", 64) + `"}`,
			contentType: "application/json",
			maxBytes:    16,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantErr:     ErrBodyTooLarge,
		},
		{
			name:        "unsupported media type",
			body:        "<xml/>",
			contentType: "application/xml",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantErr:     ErrUnsupportedMediaType,
		},
		{
			name:        "broken content type",
			body:        "x",
			contentType: "a/b; =",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantErr:     ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(tt.maxBytes).ReadBody(newRequest(tt.body, tt.contentType))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBody_NoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got, err := NewReader(0).ReadBody(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestReadBody_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "report"))
	fw, err := mw.CreateFormFile("file", "report.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := NewReader(0).ReadBody(req)
	require.NoError(t, err)

	assert.Equal(t, "report", got["title"])
	file, ok := got["file"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "report.txt", file["filename"])
	assert.Equal(t, int64(5), file["size"])
}

func TestContextBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := FromContext(req.Context())
	assert.False(t, ok)

	ctx := WithBody(req.Context(), map[string]any{"a": 1})
	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestNewReader_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxBytes, NewReader(-5).MaxBytes)
	assert.Equal(t, int64(10), NewReader(10).MaxBytes)
}
