package binder

import (
	"fmt"
	"net/http"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
// Only fields with a `form` tag are bound.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return nil
		}
		if mediaType(r) != "application/x-www-form-urlencoded" {
			return ErrBinderNotApplicable
		}

		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxJSONSize)
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
