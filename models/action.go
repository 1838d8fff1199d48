package models

import (
	"net/http"
	"net/url"
)

// ActionPayload is the argument every action receives. It is built fresh for
// each request and never retained after the action returns.
type ActionPayload struct {
	// Body is the parsed request body; an empty map when there is none.
	Body map[string]any `json:"body"`

	// Route is the descriptor of the route that received the request.
	Route Route `json:"route"`

	// Params holds path parameters.
	Params map[string]string `json:"params"`

	// Query holds URL query parameters.
	Query url.Values `json:"query"`

	// User is the current user, nil for anonymous requests.
	User *User `json:"user"`
}

// ActionContext carries the payload together with the raw request and
// response handles. The handles are a side channel for actions that need
// the underlying HTTP primitives; each is nil unless the adapter is
// configured to include it.
type ActionContext struct {
	Payload ActionPayload

	Request  *http.Request
	Response http.ResponseWriter
}
