package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/auth"
	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/bus"
)

// statusCoder is implemented by errors that know their HTTP status.
type statusCoder interface {
	StatusCode() int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},

	{ErrRouteNotFound, http.StatusNotFound},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},
	{ErrNotAuthenticated, http.StatusUnauthorized},

	{body.ErrMalformedBody, http.StatusBadRequest},
	{body.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{body.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},

	{auth.ErrUnauthenticated, http.StatusUnauthorized},

	{bus.ErrNoMatchingAction, http.StatusNotFound},
	{bus.ErrRemoteUnreached, http.StatusBadGateway},
	{bus.ErrRemoteAction, http.StatusBadGateway},
}

func statusFromError(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		if status := sc.StatusCode(); status >= 400 && status <= 599 {
			return status
		}
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
