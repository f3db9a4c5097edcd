package movie

import "errors"

var (
	ErrNotFound         = errors.New("movie: not found")
	ErrGenreNotFound    = errors.New("movie: genre not found")
	ErrDirectorNotFound = errors.New("movie: director not found")
	ErrInvalidMovie     = errors.New("movie: invalid movie")
)
