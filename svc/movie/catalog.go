package movie

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog file cannot be decoded.
var ErrInvalidCatalog = errors.New("movie: invalid catalog")

type catalogFile struct {
	Movies []Movie `yaml:"movies"`
}

// DecodeCatalog reads a YAML catalog:
//
//	movies:
//	  - title: Alien
//	    description: ...
//	    genre: {name: Science Fiction, description: ...}
//	    director: {name: Ridley Scott, bio: ...}
//	    actors: [Sigourney Weaver]
//
// Every entry is validated and titles must be unique.
func DecodeCatalog(r io.Reader) ([]Movie, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	seen := make(map[string]struct{}, len(f.Movies))
	for i := range f.Movies {
		m := &f.Movies[i]
		if err := m.Validate(); err != nil {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("entry %d: %w", i, err))
		}
		if _, dup := seen[m.Title]; dup {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("entry %d: duplicate title %q", i, m.Title))
		}
		seen[m.Title] = struct{}{}
	}
	return f.Movies, nil
}

// Seed upserts movies by title and returns how many were written.
func Seed(ctx context.Context, store Store, movies []Movie) (int, error) {
	for i := range movies {
		if _, err := store.Upsert(ctx, &movies[i]); err != nil {
			return i, err
		}
	}
	return len(movies), nil
}
