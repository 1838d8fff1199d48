package body

import "net/http"

//go:generate mockgen -source=interfaces.go -destination=../mock/body_mock.go -package=mock

// Reader is the body-reader collaborator of the dispatch translator.
type Reader interface {
	ReadBody(r *http.Request) (map[string]any, error)
}
