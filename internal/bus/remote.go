package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
	"github.com/MKhiriev/go-action-web/models"
)

// ActPath is the endpoint of a remote action service.
const ActPath = "/act"

// ActRequest is the body posted to a remote action service.
type ActRequest struct {
	Pattern string               `json:"pattern"`
	Payload models.ActionPayload `json:"payload"`
}

// Remote forwards actions to another service. The raw request and response
// handles of the action context cannot cross the process boundary and are
// not sent.
type Remote struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRemote returns a bus posting to address + ActPath. A missing scheme
// defaults to http.
func NewRemote(address string, timeout time.Duration, logger *logger.Logger) (*Remote, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote bus address: %w", err)
	}

	return &Remote{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (r *Remote) Act(ctx context.Context, pattern string, action models.ActionContext) (any, error) {
	log := logger.FromContext(ctx)

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ActRequest{Pattern: pattern, Payload: action.Payload}).
		Post(ActPath)
	if err != nil {
		log.Err(err).Str("pattern", pattern).Msg("remote act failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrRemoteUnreached, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnreached, err)
	}

	if err := mapRemoteError(resp); err != nil {
		log.Debug().Err(err).Str("pattern", pattern).Int("status", resp.StatusCode()).Msg("remote action returned error")
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decoding result: %v", ErrRemoteAction, err)
	}
	return result, nil
}
