package jwt

import "errors"

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrWeakSigningKey    = errors.New("jwt: signing key too short")
	ErrInvalidTTL        = errors.New("jwt: ttl must be positive")
	ErrMissingSubject    = errors.New("jwt: missing subject")
	ErrMalformedToken    = errors.New("jwt: malformed token")
	ErrExpiredToken      = errors.New("jwt: token expired")
	ErrMissingToken      = errors.New("jwt: missing bearer token")
)
