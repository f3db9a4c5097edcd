package jwt

import (
	"net/http"
	"strings"
)

// BearerTokenExtractor returns the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerTokenExtractor(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
