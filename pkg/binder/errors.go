package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that a binder does not handle the request's content type.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// IsBindError reports whether err came from a binder and describes a malformed request.
func IsBindError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidForm) ||
		errors.Is(err, ErrInvalidPath) ||
		errors.Is(err, ErrBodyTooLarge)
}
