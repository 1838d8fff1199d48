package auth

import (
	"net/http"

	"github.com/MKhiriev/go-action-web/models"
	"golang.org/x/crypto/bcrypt"
)

// Basic authenticates HTTP basic credentials against bcrypt hashes.
type Basic struct {
	// Users maps login to bcrypt hash.
	Users map[string]string
	Realm string
}

func (b *Basic) Authenticate(r *http.Request) (*models.User, error) {
	login, password, ok := r.BasicAuth()
	if !ok {
		return nil, ErrNoCredentials
	}

	hash, known := b.Users[login]
	if !known {
		// compare anyway so unknown logins cost the same
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.User{ID: login, Name: login}, nil
}

func (b *Basic) Challenge() string {
	realm := b.Realm
	if realm == "" {
		realm = "action-web"
	}
	return `Basic realm="` + realm + `"`
}

// dummyHash is a well-formed bcrypt hash at the default cost.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
