package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
	"github.com/MKhiriev/go-action-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type stubStrategy struct {
	user *models.User
	err  error
}

func (s stubStrategy) Authenticate(*http.Request) (*models.User, error) {
	return s.user, s.err
}

// recordingNext records whether it was called and with which user.
type recordingNext struct {
	called bool
	user   *models.User
}

func (n *recordingNext) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.called = true
	n.user, _ = utils.UserFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func run(t *testing.T, mw Middleware, req *http.Request) (*httptest.ResponseRecorder, *recordingNext) {
	t.Helper()
	next := &recordingNext{}
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)
	return rec, next
}

var alice = &models.User{ID: "alice", Name: "Alice"}

// ── Authenticate ──────────────────────────────────────────────────────────────

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name         string
		strategy     Strategy
		opts         Options
		wantStatus   int
		wantLocation string
		wantNext     bool
	}{
		{
			name:       "success continues with user",
			strategy:   stubStrategy{user: alice},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:         "success redirect",
			strategy:     stubStrategy{user: alice},
			opts:         Options{SuccessRedirect: "/home"},
			wantStatus:   http.StatusFound,
			wantLocation: "/home",
		},
		{
			name:         "failure redirect",
			strategy:     stubStrategy{err: ErrInvalidCredentials},
			opts:         Options{FailureRedirect: "/login"},
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "failure without redirect",
			strategy:   stubStrategy{err: ErrNoCredentials},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "internal strategy error",
			strategy:   stubStrategy{err: errors.New("db down")},
			opts:       Options{FailureRedirect: "/login"},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuthenticator(logger.Nop()).Use("stub", tt.strategy)

			mw, err := a.Authenticate("stub", tt.opts)
			require.NoError(t, err)

			rec, next := run(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, tt.wantNext, next.called)
			if tt.wantNext {
				assert.Equal(t, alice, next.user)
			}
		})
	}
}

func TestAuthenticate_UnknownStrategy(t *testing.T) {
	a := NewAuthenticator(logger.Nop())

	mw, err := a.Authenticate("missing", Options{})
	assert.Nil(t, mw)
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	mw, err = a.Session("missing")
	assert.Nil(t, mw)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestAuthenticate_Challenge(t *testing.T) {
	a := NewAuthenticator(logger.Nop()).Use("basic", &Basic{Realm: "test"})
	mw, err := a.Authenticate("basic", Options{})
	require.NoError(t, err)

	rec, _ := run(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="test"`, rec.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rec.Body.String(), `"statusCode":401`)
}

// ── Session ───────────────────────────────────────────────────────────────────

func TestSession(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		wantUser *models.User
	}{
		{"user found", stubStrategy{user: alice}, alice},
		{"no credentials", stubStrategy{err: ErrNoCredentials}, nil},
		{"bad credentials", stubStrategy{err: ErrInvalidCredentials}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, err := NewAuthenticator(logger.Nop()).Use("s", tt.strategy).Session("s")
			require.NoError(t, err)

			rec, next := run(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, next.called)
			assert.Equal(t, tt.wantUser, next.user)
		})
	}
}

// ── strategies ────────────────────────────────────────────────────────────────

func TestJWT_Authenticate(t *testing.T) {
	strategy := &JWT{SignKey: "secret", Issuer: "action-web", Cookie: "token"}

	token, err := utils.GenerateJWTToken("action-web", models.User{ID: "u1", Name: "Bob"}, time.Hour, "secret")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("action-web", models.User{ID: "u1"}, time.Hour, "other")
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token.String())

		user, err := strategy.Authenticate(req)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "Bob", user.Name)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token.String()})

		user, err := strategy.Authenticate(req)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("no credentials", func(t *testing.T) {
		_, err := strategy.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, ErrNoCredentials)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")

		_, err := strategy.Authenticate(req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+foreign.String())

		_, err := strategy.Authenticate(req)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.NotErrorIs(t, err, ErrNoCredentials)
	})
}

func TestBasic_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	strategy := &Basic{Users: map[string]string{"alice": string(hash)}}

	tests := []struct {
		name     string
		login    string
		password string
		noAuth   bool
		wantErr  error
	}{
		{name: "valid", login: "alice", password: "s3cret"},
		{name: "wrong password", login: "alice", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", login: "eve", password: "s3cret", wantErr: ErrInvalidCredentials},
		{name: "no header", noAuth: true, wantErr: ErrNoCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.login, tt.password)
			}

			user, err := strategy.Authenticate(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", user.ID)
		})
	}

	assert.Equal(t, `Basic realm="action-web"`, strategy.Challenge())
}
