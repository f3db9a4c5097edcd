package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status  int
	body    any
	headers http.Header
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	for k, v := range j.headers {
		w.Header()[k] = v
	}
	return WriteJSON(w, j.status, j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets the HTTP status code. Default 200.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithHeader sets a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) { r.headers.Set(key, value) }
}

// JSON renders v as the response body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v, headers: http.Header{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Message renders {"message": msg}.
func Message(status int, msg string) Response {
	return JSON(messageBody{Message: msg}, WithStatus(status))
}

type messageBody struct {
	Message string `json:"message"`
}

// WriteJSON encodes v with the given status. Exported for middleware that
// answers before a handler runs.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg} with the given status.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	_ = WriteJSON(w, status, messageBody{Message: msg})
}

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.body))
	return err
}

// Text renders body as text/plain.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates a 204 No Content response.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

type failResponse struct {
	err error
}

func (f failResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail hands err to the configured error handler instead of rendering.
// Handlers return Fail(err) for every failure so that error-to-status mapping
// lives in one place.
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return failResponse{err: err}
}
