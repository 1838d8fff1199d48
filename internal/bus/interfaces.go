package bus

import (
	"context"

	"github.com/MKhiriev/go-action-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bus_mock.go -package=mock

// Bus dispatches one action and returns its result. Act is called exactly
// once per request and returns exactly once.
type Bus interface {
	Act(ctx context.Context, pattern string, action models.ActionContext) (any, error)
}

// ActionFunc is an action registered on the local bus.
type ActionFunc func(ctx context.Context, action models.ActionContext) (any, error)
