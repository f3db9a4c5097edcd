package user

import (
	"context"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is a Store backed by process memory.
// Returned users are copies; mutating them does not affect the store.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[bson.ObjectID]*User
	byName map[string]bson.ObjectID
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[bson.ObjectID]*User),
		byName: make(map[string]bson.ObjectID),
	}
}

func (s *MemoryStore) Create(_ context.Context, u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[u.Username]; taken {
		return nil, ErrConflict
	}

	stored := u.clone()
	if stored.ID.IsZero() {
		stored.ID = bson.NewObjectID()
	}
	if stored.FavoriteMovies == nil {
		stored.FavoriteMovies = []bson.ObjectID{}
	}
	s.byID[stored.ID] = stored
	s.byName[stored.Username] = stored.ID
	return stored.clone(), nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	return s.byID[id].clone(), nil
}

func (s *MemoryStore) FindByID(_ context.Context, id bson.ObjectID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id bson.ObjectID, changes Changes) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if changes.Username != nil && *changes.Username != u.Username {
		if _, taken := s.byName[*changes.Username]; taken {
			return nil, ErrConflict
		}
		delete(s.byName, u.Username)
		s.byName[*changes.Username] = id
	}
	changes.apply(u)
	return u.clone(), nil
}

func (s *MemoryStore) AddFavorite(_ context.Context, id, movieID bson.ObjectID) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !u.HasFavorite(movieID) {
		u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	}
	return u.clone(), nil
}

func (s *MemoryStore) RemoveFavorite(_ context.Context, id, movieID bson.ObjectID) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.FavoriteMovies = slices.DeleteFunc(u.FavoriteMovies, func(m bson.ObjectID) bool {
		return m == movieID
	})
	return u.clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byName, u.Username)
	delete(s.byID, id)
	return nil
}
