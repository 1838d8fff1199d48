package http

import (
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/body"
	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/router"
	"github.com/MKhiriev/go-action-web/internal/utils"
	"github.com/MKhiriev/go-action-web/models"
)

// Outcome is how a dispatched request was answered.
type Outcome int

const (
	// OutcomeError means the error was replied.
	OutcomeError Outcome = iota
	// OutcomeRedirect means the client was redirected to route.Redirect.
	OutcomeRedirect
	// OutcomeAutoReply means the action result was written as the body.
	OutcomeAutoReply
	// OutcomeManual means nothing was written; the action owns the response.
	OutcomeManual
)

func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "error"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeAutoReply:
		return "autoreply"
	case OutcomeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// dispatch returns the request handler bound to route.
func (h *Handler) dispatch(route models.Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outcome := h.translate(w, r, route)
		h.metrics.observe(route.Pattern, outcome)
		logger.FromRequest(r).Debug().
			Str("pattern", route.Pattern).
			Stringer("outcome", outcome).
			Msg("request dispatched")
	})
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request, route models.Route) Outcome {
	ctx := r.Context()

	payloadBody, err := h.requestBody(r)
	if err != nil {
		h.replyError(w, r, err)
		return OutcomeError
	}

	user, _ := utils.UserFromContext(ctx)

	action := models.ActionContext{
		Payload: models.ActionPayload{
			Body:   payloadBody,
			Route:  route,
			Params: router.Params(ctx),
			Query:  r.URL.Query(),
			User:   user,
		},
	}
	if h.options.IncludeRequest {
		action.Request = r
	}
	if h.options.IncludeResponse {
		action.Response = w
	}

	result, err := h.bus.Act(ctx, route.Pattern, action)

	switch {
	case err != nil:
		h.replyError(w, r, err)
		return OutcomeError
	case route.Redirect != "":
		http.Redirect(w, r, route.Redirect, http.StatusFound)
		return OutcomeRedirect
	case route.AutoReply:
		h.replyResult(w, r, result)
		return OutcomeAutoReply
	default:
		return OutcomeManual
	}
}

func (h *Handler) requestBody(r *http.Request) (map[string]any, error) {
	if h.options.ParseBody {
		parsed, err := h.body.ReadBody(r)
		if err != nil {
			return nil, err
		}
		if parsed == nil {
			parsed = map[string]any{}
		}
		return parsed, nil
	}

	if parsed, ok := body.FromContext(r.Context()); ok {
		return parsed, nil
	}
	return map[string]any{}, nil
}
