package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client used for outbound calls
// such as the remote action bus. It embeds *resty.Client so the whole resty
// API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON-oriented client bound to baseURL.
// A zero timeout leaves the client without a timeout; callers then rely on
// the request context for cancellation.
//
//	client := utils.NewHTTPClient("http://actions:8081", 5*time.Second)
//	resp, err := client.R().SetContext(ctx).SetBody(payload).Post("/act")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
