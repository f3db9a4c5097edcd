// Package binder decodes HTTP requests into typed request structs.
//
// Each binder is a func(*http.Request, any) error suitable for
// handler.WithBinders. Binders handle one source each:
//
//   - JSON reads an application/json body (strict, size-limited).
//   - Form reads an application/x-www-form-urlencoded body using `form` tags.
//   - Path reads router parameters using `path` tags.
//
// Body binders return ErrBinderNotApplicable when the request carries a
// different media type, so JSON and Form can be stacked on one endpoint and
// the matching one wins. A request without a body leaves the target zeroed
// and defers the decision to validation.
//
//	r.Post("/login", handler.Wrap(login,
//	    handler.WithBinders[handler.Context, LoginRequest](binder.JSON(), binder.Form()),
//	))
package binder
