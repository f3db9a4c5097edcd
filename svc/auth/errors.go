package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("auth: invalid username or password")
	ErrTokenMissing           = errors.New("auth: missing token")
	ErrTokenMalformed         = errors.New("auth: malformed token")
	ErrTokenExpired           = errors.New("auth: token expired")
	ErrSubjectNotFound        = errors.New("auth: token subject not found")
	ErrForbidden              = errors.New("auth: forbidden")
	ErrStoreUnavailable       = errors.New("auth: store unavailable")
	ErrUnsupportedCredentials = errors.New("auth: unsupported credentials")
)

// IsTokenError reports whether err means the presented token cannot identify a user.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenMissing) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrSubjectNotFound)
}
