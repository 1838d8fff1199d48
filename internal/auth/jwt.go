package auth

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/utils"
	"github.com/MKhiriev/go-action-web/models"
)

// JWT authenticates requests carrying a token signed with SignKey, either in
// an "Authorization: Bearer" header or in the Cookie cookie.
type JWT struct {
	SignKey string
	Issuer  string
	Cookie  string
}

func (j *JWT) Authenticate(r *http.Request) (*models.User, error) {
	raw, err := j.token(r)
	if err != nil {
		return nil, err
	}

	token, err := utils.ValidateAndParseJWTToken(raw, j.SignKey, j.Issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	return token.User(), nil
}

func (j *JWT) token(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return raw, nil
	}

	if j.Cookie != "" {
		if c, err := r.Cookie(j.Cookie); err == nil && c.Value != "" {
			return c.Value, nil
		}
	}

	return "", ErrNoCredentials
}

func (j *JWT) Challenge() string {
	return `Bearer realm="` + j.Issuer + `"`
}
