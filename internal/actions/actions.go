// Package actions holds the built-in actions served by the local bus.
package actions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-action-web/internal/bus"
	"github.com/MKhiriev/go-action-web/internal/config"
	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
	"github.com/MKhiriev/go-action-web/models"
)

// Patterns of the built-in actions.
const (
	PatternPing   = "role:web,cmd:ping"
	PatternEcho   = "role:web,cmd:echo"
	PatternWhoAmI = "role:web,cmd:whoami"
	PatternToken  = "role:auth,cmd:token"
	PatternRaw    = "role:web,cmd:raw"
)

type Actions struct {
	auth config.Auth
}

func New(auth config.Auth) *Actions {
	return &Actions{auth: auth}
}

// Register adds every built-in action to l.
func (a *Actions) Register(l *bus.Local) error {
	for pattern, action := range map[string]bus.ActionFunc{
		PatternPing:   a.Ping,
		PatternEcho:   a.Echo,
		PatternWhoAmI: a.WhoAmI,
		PatternToken:  a.Token,
		PatternRaw:    a.Raw,
	} {
		if err := l.Add(pattern, action); err != nil {
			return fmt.Errorf("error adding action %s: %w", pattern, err)
		}
	}
	return nil
}

func (a *Actions) Ping(context.Context, models.ActionContext) (any, error) {
	return map[string]bool{"ok": true}, nil
}

// Echo returns the payload it was called with.
func (a *Actions) Echo(_ context.Context, action models.ActionContext) (any, error) {
	return action.Payload, nil
}

func (a *Actions) WhoAmI(_ context.Context, action models.ActionContext) (any, error) {
	if action.Payload.User == nil {
		return nil, bus.NewError(http.StatusUnauthorized, "no current user")
	}
	return action.Payload.User, nil
}

// TokenReply is the result of the token action.
type TokenReply struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Token issues a JWT for the current user. When the raw response is
// available the token is also set as a cookie.
func (a *Actions) Token(_ context.Context, action models.ActionContext) (any, error) {
	user := action.Payload.User
	if user == nil {
		return nil, bus.NewError(http.StatusUnauthorized, "no current user")
	}

	token, err := utils.GenerateJWTToken(a.auth.TokenIssuer, *user, a.auth.TokenDuration, a.auth.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	reply := TokenReply{Token: token.String(), ExpiresAt: token.ExpiresAt.Time}

	if action.Response != nil && a.auth.TokenCookie != "" {
		http.SetCookie(action.Response, &http.Cookie{
			Name:     a.auth.TokenCookie,
			Value:    reply.Token,
			Path:     "/",
			Expires:  reply.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return reply, nil
}

// Raw answers through the raw response handle and returns nothing, so the
// route should be declared without autoreply or redirect. Once the status
// is written a failed write can only be logged.
func (a *Actions) Raw(ctx context.Context, action models.ActionContext) (any, error) {
	if action.Response == nil {
		return nil, bus.NewError(http.StatusNotImplemented, "raw response handle not available")
	}

	method := ""
	if action.Request != nil {
		method = action.Request.Method
	}

	action.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	action.Response.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(action.Response, "raw %s %s", method, action.Payload.Route.Path); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error writing raw response")
	}
	return nil, nil
}
