package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error that already knows its HTTP status and client-facing message.
// Err carries the cause for logging and errors.Is; it is never sent to the client.
type HTTPError struct {
	Code    int
	Message string
	// Plain renders Message as text/plain instead of {"message": ...}.
	Plain bool
	Err   error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error { return e.Err }

// Is matches on status code and message so sentinels survive Wrap.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Code == e.Code && t.Message == e.Message
}

// Wrap returns a copy of e carrying cause.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.Err = cause
	return e
}

// NewHTTPError creates an HTTPError with a JSON message body.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad Request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Not Found"}
	ErrUnsupportedMedia    = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Unsupported Media Type"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Message: "Too Many Requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
)
