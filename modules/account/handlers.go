package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/myflix/handler"
	"github.com/dmitrymomot/myflix/pkg/binder"
	"github.com/dmitrymomot/myflix/pkg/validator"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/movie"
	"github.com/dmitrymomot/myflix/svc/user"
)

// LoginFailedMessage is the only body a rejected login ever gets.
const LoginFailedMessage = "Something is not right"

var errLoginRejected = handler.NewHTTPError(http.StatusBadRequest, LoginFailedMessage)

type handlers struct {
	auth         *auth.Service
	movies       movie.Store
	errorHandler handler.ErrorHandler[handler.Context]
}

// LoginRequest accepts JSON or urlencoded bodies.
type LoginRequest struct {
	Username string `json:"Username" form:"Username"`
	Password string `json:"Password" form:"Password"`
}

func (h *handlers) login() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, LoginRequest](
		func(ctx handler.Context, req LoginRequest) handler.Response {
			res, err := h.auth.Login(ctx, req.Username, req.Password)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					return handler.Fail(errLoginRejected.Wrap(err))
				}
				return handler.Fail(err)
			}
			return handler.JSON(res)
		}),
		handler.WithBinders[handler.Context, LoginRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, LoginRequest](h.errorHandler),
	)
}

// RegisterRequest is the sign-up body. Birthday is optional.
type RegisterRequest struct {
	Username string `json:"Username" form:"Username"`
	Password string `json:"Password" form:"Password"`
	Email    string `json:"Email" form:"Email"`
	Birthday string `json:"Birthday,omitempty" form:"Birthday"`
}

func (h *handlers) register() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, RegisterRequest](
		func(ctx handler.Context, req RegisterRequest) handler.Response {
			profile, err := h.auth.Register(ctx, user.Registration{
				Username: req.Username,
				Password: req.Password,
				Email:    req.Email,
				Birthday: req.Birthday,
			})
			if err != nil {
				return handler.Fail(conflictError(err, req.Username))
			}
			return handler.JSON(profile,
				handler.WithStatus(http.StatusCreated),
				handler.WithHeader("Location", "/users/"+profile.Username),
			)
		}),
		handler.WithBinders[handler.Context, RegisterRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, RegisterRequest](h.errorHandler),
	)
}

// UsernamePath addresses the account in the URL.
type UsernamePath struct {
	Username string `path:"username" json:"-"`
}

func (h *handlers) profile() http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, UsernamePath](
		func(ctx handler.Context, req UsernamePath) handler.Response {
			profile, err := h.auth.Profile(ctx, req.Username)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(profile)
		}),
		handler.WithBinders[handler.Context, UsernamePath](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, UsernamePath](h.errorHandler),
	)
}

// UpdateRequest changes only the fields present in the body.
type UpdateRequest struct {
	Username *string `json:"Username,omitempty" form:"Username"`
	Password *string `json:"Password,omitempty" form:"Password"`
	Email    *string `json:"Email,omitempty" form:"Email"`
	Birthday *string `json:"Birthday,omitempty" form:"Birthday"`
}

func (h *handlers) update() http.HandlerFunc {
	return ownerOnly(h, func(ctx *accountContext, req UpdateRequest) handler.Response {
		current := ctx.Profile
		profile, err := h.auth.UpdateProfile(ctx, current.ID, user.ChangeRequest{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
			Birthday: req.Birthday,
		})
		if err != nil {
			name := current.Username
			if req.Username != nil {
				name = *req.Username
			}
			return handler.Fail(conflictError(err, name))
		}
		return handler.JSON(profile)
	}, binder.JSON(), binder.Form())
}

func (h *handlers) delete() http.HandlerFunc {
	return ownerOnly(h, func(ctx *accountContext, _ struct{}) handler.Response {
		if err := h.auth.DeleteAccount(ctx, ctx.Profile.ID); err != nil {
			return handler.Fail(err)
		}
		return handler.Message(http.StatusOK, "User deleted successfully")
	})
}

// FavoriteRequest names a movie by its id, in the body or in the path.
type FavoriteRequest struct {
	MovieID string `json:"movieId" form:"movieId" path:"movieId"`
}

func (h *handlers) addFavorite() http.HandlerFunc {
	return ownerOnly(h, func(ctx *accountContext, req FavoriteRequest) handler.Response {
		if err := validator.Apply(validator.ValidObjectID("movieId", req.MovieID)); err != nil {
			return handler.Fail(err)
		}

		movieID, err := bson.ObjectIDFromHex(req.MovieID)
		if err != nil {
			return handler.Fail(err)
		}
		if _, err := h.movies.ByID(ctx, movieID); err != nil {
			return handler.Fail(err)
		}

		profile, err := h.auth.AddFavorite(ctx, ctx.Profile.ID, req.MovieID)
		if err != nil {
			return handler.Fail(err)
		}
		return handler.JSON(profile)
	}, binder.JSON(), binder.Form())
}

func (h *handlers) removeFavorite() http.HandlerFunc {
	return ownerOnly(h, func(ctx *accountContext, req FavoriteRequest) handler.Response {
		profile, err := h.auth.RemoveFavorite(ctx, ctx.Profile.ID, req.MovieID)
		if err != nil {
			return handler.Fail(err)
		}
		return handler.JSON(profile)
	}, binder.Path(chi.URLParam))
}

// conflictError renders a taken username as the plain-text 400 clients expect.
func conflictError(err error, username string) error {
	if errors.Is(err, user.ErrConflict) {
		return handler.HTTPError{
			Code:    http.StatusBadRequest,
			Message: username + " already exists",
			Plain:   true,
			Err:     err,
		}
	}
	return err
}
