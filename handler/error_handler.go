package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/myflix/pkg/binder"
	"github.com/dmitrymomot/myflix/pkg/logger"
	"github.com/dmitrymomot/myflix/pkg/validator"
)

// ErrorMapping maps any error matching Target (via errors.Is) to a response.
type ErrorMapping struct {
	Target  error
	Status  int
	Message string
}

// Map builds an ErrorMapping.
func Map(target error, status int, message string) ErrorMapping {
	return ErrorMapping{Target: target, Status: status, Message: message}
}

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationBody struct {
	Errors []FieldError `json:"errors"`
}

type errorInfo struct {
	status  int
	message string
	plain   bool
	fields  []FieldError
}

// classifyError resolves err in order: validation errors, HTTPError, the
// supplied mappings, binder errors, then a generic 500.
func classifyError(err error, mappings []ErrorMapping) errorInfo {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		fields := make([]FieldError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, FieldError{Field: ve.Field, Message: ve.Message})
		}
		return errorInfo{status: http.StatusUnprocessableEntity, fields: fields}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorInfo{status: httpErr.Code, message: httpErr.Message, plain: httpErr.Plain}
	}

	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return errorInfo{status: m.Status, message: m.Message}
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return errorInfo{status: ErrUnsupportedMedia.Code, message: ErrUnsupportedMedia.Message}
	case binder.IsBindError(err):
		return errorInfo{status: ErrBadRequest.Code, message: ErrBadRequest.Message}
	}

	return errorInfo{status: ErrInternalServerError.Code, message: ErrInternalServerError.Message}
}

func renderError(w http.ResponseWriter, info errorInfo) {
	switch {
	case info.fields != nil:
		_ = WriteJSON(w, info.status, validationBody{Errors: info.fields})
	case info.plain:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(info.status)
		_, _ = w.Write([]byte(info.message))
	default:
		WriteMessage(w, info.status, info.message)
	}
}

// NewErrorHandler creates the JSON error handler shared by every endpoint.
// Server errors are logged at error level with the cause; client errors at debug.
// Causes are never sent to the client.
func NewErrorHandler(log *slog.Logger, mappings ...ErrorMapping) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		info := classifyError(err, mappings)

		level := slog.LevelDebug
		if info.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		renderError(ctx.ResponseWriter(), info)
	}
}
