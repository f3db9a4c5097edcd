// Package handler provides type-safe HTTP handlers for the JSON API.
//
// A HandlerFunc receives a Context and a request struct populated by binders
// (see pkg/binder) and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type LoginRequest struct {
//		Username string `json:"Username" form:"Username"`
//		Password string `json:"Password" form:"Password"`
//	}
//
//	login := func(ctx handler.Context, req LoginRequest) handler.Response {
//		res, err := auth.Login(ctx, req.Username, req.Password)
//		if err != nil {
//			return handler.Fail(err)
//		}
//		return handler.JSON(res)
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, LoginRequest](binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](errHandler),
//	))
//
// # Responses
//
//	handler.JSON(v)                                  // 200 application/json
//	handler.JSON(v, handler.WithStatus(201))         // custom status
//	handler.Message(http.StatusNotFound, "Movie not found")
//	handler.Text(http.StatusOK, "Welcome")
//	handler.Empty()                                  // 204
//	handler.Fail(err)                                // delegate to the ErrorHandler
//
// # Errors
//
// NewErrorHandler centralises error rendering:
//
//   - validator.ValidationErrors become 422 {"errors":[{"field","message"}]}.
//   - HTTPError values render their own status and message.
//   - ErrorMapping entries map domain sentinels through errors.Is.
//   - Malformed bodies from pkg/binder become 400, wrong media types 415.
//   - Anything else is 500 {"message":"Internal Server Error"} and is logged.
//
// Decorators wrap HandlerFunc values for cross-cutting concerns, the first in
// the list being outermost.
package handler
