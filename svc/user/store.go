package user

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store persists users.
type Store interface {
	// Create inserts u, assigning an ID when u.ID is zero.
	// Returns ErrConflict when the username is taken.
	Create(ctx context.Context, u *User) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	// Update applies changes and returns the updated user.
	// Returns ErrConflict when a username change collides with another user.
	Update(ctx context.Context, id bson.ObjectID, changes Changes) (*User, error)
	AddFavorite(ctx context.Context, id, movieID bson.ObjectID) (*User, error)
	RemoveFavorite(ctx context.Context, id, movieID bson.ObjectID) (*User, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
