package movie

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Genre struct {
	Name        string `json:"Name" bson:"Name" yaml:"name"`
	Description string `json:"Description" bson:"Description" yaml:"description"`
}

type Director struct {
	Name string `json:"Name" bson:"Name" yaml:"name"`
	Bio  string `json:"Bio" bson:"Bio" yaml:"bio"`
}

// Movie is a catalog entry. Title is unique within the catalog.
type Movie struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty" yaml:"-"`
	Title       string        `json:"Title" bson:"Title" yaml:"title"`
	Description string        `json:"Description" bson:"Description" yaml:"description"`
	Genre       Genre         `json:"Genre" bson:"Genre" yaml:"genre"`
	Director    Director      `json:"Director" bson:"Director" yaml:"director"`
	Actors      []string      `json:"Actors" bson:"Actors" yaml:"actors"`
	ImagePath   string        `json:"ImagePath" bson:"ImagePath" yaml:"image_path"`
	Featured    bool          `json:"Featured" bson:"Featured" yaml:"featured"`
}

// Validate checks the required fields.
func (m *Movie) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Title) == "" {
		missing = append(missing, "Title")
	}
	if strings.TrimSpace(m.Description) == "" {
		missing = append(missing, "Description")
	}
	if strings.TrimSpace(m.Genre.Name) == "" {
		missing = append(missing, "Genre.Name")
	}
	if strings.TrimSpace(m.Director.Name) == "" {
		missing = append(missing, "Director.Name")
	}
	if len(missing) > 0 {
		return errors.Join(ErrInvalidMovie, errors.New("missing "+strings.Join(missing, ", ")))
	}
	return nil
}

func (m Movie) clone() Movie {
	m.Actors = slices.Clone(m.Actors)
	return m
}

// Store reads and seeds the catalog.
type Store interface {
	// List returns every movie ordered by title.
	List(ctx context.Context) ([]Movie, error)
	// ByTitle returns the movie with the exact title or ErrNotFound.
	ByTitle(ctx context.Context, title string) (*Movie, error)
	// ByGenre returns the movies of a genre or ErrGenreNotFound when there are none.
	ByGenre(ctx context.Context, name string) ([]Movie, error)
	// ByDirector returns the movies of a director or ErrDirectorNotFound when there are none.
	ByDirector(ctx context.Context, name string) ([]Movie, error)
	ByID(ctx context.Context, id bson.ObjectID) (*Movie, error)
	// Upsert inserts m or replaces the movie with the same title, keeping its ID.
	Upsert(ctx context.Context, m *Movie) (*Movie, error)
}
