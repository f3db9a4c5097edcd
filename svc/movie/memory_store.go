package movie

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is a Store backed by process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	movies []Movie
}

// NewMemoryStore returns a store seeded with movies. Movies without an ID get one.
func NewMemoryStore(movies ...Movie) *MemoryStore {
	s := &MemoryStore{}
	for _, m := range movies {
		s.upsert(m)
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(Movie) bool { return true }), nil
}

func (s *MemoryStore) ByTitle(_ context.Context, title string) (*Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.Title == title {
			found := m.clone()
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ByGenre(_ context.Context, name string) ([]Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := s.filter(func(m Movie) bool { return m.Genre.Name == name })
	if len(movies) == 0 {
		return nil, ErrGenreNotFound
	}
	return movies, nil
}

func (s *MemoryStore) ByDirector(_ context.Context, name string) ([]Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := s.filter(func(m Movie) bool { return m.Director.Name == name })
	if len(movies) == 0 {
		return nil, ErrDirectorNotFound
	}
	return movies, nil
}

func (s *MemoryStore) ByID(_ context.Context, id bson.ObjectID) (*Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.ID == id {
			found := m.clone()
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Upsert(_ context.Context, m *Movie) (*Movie, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.upsert(*m)
	return &stored, nil
}

// upsert must be called with mu held or before the store is shared.
func (s *MemoryStore) upsert(m Movie) Movie {
	m = m.clone()
	idx := slices.IndexFunc(s.movies, func(existing Movie) bool { return existing.Title == m.Title })
	if idx >= 0 {
		m.ID = s.movies[idx].ID
		s.movies[idx] = m
		return m.clone()
	}

	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	s.movies = append(s.movies, m)
	slices.SortFunc(s.movies, func(a, b Movie) int { return cmp.Compare(a.Title, b.Title) })
	return m.clone()
}

// filter returns copies of the matching movies in title order. Never nil.
func (s *MemoryStore) filter(match func(Movie) bool) []Movie {
	out := make([]Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if match(m) {
			out = append(out, m.clone())
		}
	}
	return out
}
