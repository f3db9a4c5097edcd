package user

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the stored identity record. The BSON keys match the documents
// written by earlier versions of the service.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty"`
	Username       string          `bson:"Username"`
	PasswordHash   string          `bson:"Password"`
	Email          string          `bson:"Email"`
	Birthday       *time.Time      `bson:"Birthday,omitempty"`
	FavoriteMovies []bson.ObjectID `bson:"FavoriteMovies"`
}

// Profile is the client-facing view of a User.
type Profile struct {
	ID             string     `json:"_id"`
	Username       string     `json:"Username"`
	Email          string     `json:"Email"`
	Birthday       *time.Time `json:"Birthday,omitempty"`
	FavoriteMovies []string   `json:"FavoriteMovies"`
}

// Profile returns the public projection of u.
func (u *User) Profile() *Profile {
	favorites := make([]string, 0, len(u.FavoriteMovies))
	for _, id := range u.FavoriteMovies {
		favorites = append(favorites, id.Hex())
	}

	p := &Profile{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		Email:          u.Email,
		FavoriteMovies: favorites,
	}
	if u.Birthday != nil {
		b := *u.Birthday
		p.Birthday = &b
	}
	return p
}

// HasFavorite reports whether movieID is in the user's favorite set.
func (u *User) HasFavorite(movieID bson.ObjectID) bool {
	return slices.Contains(u.FavoriteMovies, movieID)
}

func (u *User) clone() *User {
	c := *u
	c.FavoriteMovies = slices.Clone(u.FavoriteMovies)
	if u.Birthday != nil {
		b := *u.Birthday
		c.Birthday = &b
	}
	return &c
}

// Changes is a partial update. Nil fields are left untouched.
// PasswordHash must already be hashed by the caller.
type Changes struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
}

// IsEmpty reports whether c changes nothing.
func (c Changes) IsEmpty() bool {
	return c.Username == nil && c.PasswordHash == nil && c.Email == nil && c.Birthday == nil
}

func (c Changes) apply(u *User) {
	if c.Username != nil {
		u.Username = *c.Username
	}
	if c.PasswordHash != nil {
		u.PasswordHash = *c.PasswordHash
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Birthday != nil {
		b := *c.Birthday
		u.Birthday = &b
	}
}
