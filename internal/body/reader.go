// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package body

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// DefaultMaxBytes is used when a FormReader is built with a non-positive limit.
const DefaultMaxBytes int64 = 1 << 20

// FormReader reads JSON, urlencoded and multipart bodies up to MaxBytes.
type FormReader struct {
	MaxBytes int64
}

// NewReader returns a FormReader limited to maxBytes.
func NewReader(maxBytes int64) *FormReader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &FormReader{MaxBytes: maxBytes}
}

// ReadBody parses the request body according to its Content-Type. A request
// without a body yields an empty map.
func (f *FormReader) ReadBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return map[string]any{}, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, newError(http.StatusUnsupportedMediaType, ErrUnsupportedMediaType, err)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, f.limit())

	switch mediaType {
	case "application/json":
		return f.readJSON(r.Body)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, Classify(err)
		}
		return fromValues(r.PostForm), nil
	case "multipart/form-data":
		return f.readMultipart(r)
	default:
		return nil, newError(http.StatusUnsupportedMediaType, ErrUnsupportedMediaType, errors.New(mediaType))
	}
}

func (f *FormReader) limit() int64 {
	if f.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return f.MaxBytes
}

func (f *FormReader) readJSON(rc io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, Classify(err)
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, Classify(err)
	}
	if out == nil {
		// "null"
		out = map[string]any{}
	}
	return out, nil
}

func (f *FormReader) readMultipart(r *http.Request) (map[string]any, error) {
	if err := r.ParseMultipartForm(f.limit()); err != nil {
		return nil, Classify(err)
	}

	out := fromValues(url.Values(r.MultipartForm.Value))
	for field, headers := range r.MultipartForm.File {
		files := make([]map[string]any, 0, len(headers))
		for _, fh := range headers {
			files = append(files, map[string]any{
				"filename":    fh.Filename,
				"size":        fh.Size,
				"contentType": fh.Header.Get("Content-Type"),
			})
		}
		if len(files) == 1 {
			out[field] = files[0]
		} else {
			out[field] = files
		}
	}
	return out, nil
}

// fromValues keeps single values as strings and repeated ones as slices.
func fromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
		} else {
			out[k] = v
		}
	}
	return out
}

type bodyKey struct{}

// WithBody returns a copy of ctx carrying an already parsed body.
func WithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// FromContext returns the body stored by WithBody.
func FromContext(ctx context.Context) (map[string]any, bool) {
	body, ok := ctx.Value(bodyKey{}).(map[string]any)
	return body, ok && body != nil
}
