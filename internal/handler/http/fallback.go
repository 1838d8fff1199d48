// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// notFound answers requests matching no route, including known paths
// requested with a method they do not serve. Both get 404 so the set of
// served methods is not revealed.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.replyError(w, r, fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path))
}
