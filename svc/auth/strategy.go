package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/myflix/pkg/jwt"
	"github.com/dmitrymomot/myflix/pkg/password"
	"github.com/dmitrymomot/myflix/svc/user"
)

// Scheme names a kind of credentials.
type Scheme string

const (
	SchemePassword Scheme = "password"
	SchemeBearer   Scheme = "bearer"
)

// Credentials is something a client presents to prove its identity.
type Credentials interface {
	Scheme() Scheme
}

// PasswordCredentials are a username and plaintext password.
type PasswordCredentials struct {
	Username string
	Password string
}

func (PasswordCredentials) Scheme() Scheme { return SchemePassword }

// BearerCredentials carry a signed token issued by Login.
type BearerCredentials struct {
	Token string
}

func (BearerCredentials) Scheme() Scheme { return SchemeBearer }

// Strategy verifies one kind of Credentials and resolves them to a user.
type Strategy interface {
	Authenticate(ctx context.Context, creds Credentials) (*user.User, error)
}

// dummyPassword is hashed once so that unknown usernames still cost a bcrypt comparison.
const dummyPassword = "myflix-timing-equalizer"

// LocalStrategy checks a username and password against the user store.
type LocalStrategy struct {
	users     user.Store
	hasher    *password.Hasher
	dummyHash string
}

// NewLocalStrategy prepares a LocalStrategy. It hashes a dummy password with
// the hasher's cost, so construction takes one bcrypt round.
func NewLocalStrategy(users user.Store, hasher *password.Hasher) (*LocalStrategy, error) {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, err
	}
	return &LocalStrategy{users: users, hasher: hasher, dummyHash: dummy}, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown user and for a
// wrong password alike.
func (s *LocalStrategy) Authenticate(ctx context.Context, creds Credentials) (*user.User, error) {
	pc, ok := creds.(PasswordCredentials)
	if !ok {
		return nil, ErrUnsupportedCredentials
	}
	if pc.Username == "" || pc.Password == "" {
		s.hasher.Verify(pc.Password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, pc.Username)
	switch {
	case errors.Is(err, user.ErrNotFound):
		s.hasher.Verify(pc.Password, s.dummyHash)
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	if !s.hasher.Verify(pc.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// BearerStrategy verifies a token and resolves its subject through the user store.
type BearerStrategy struct {
	users  user.Store
	tokens *jwt.Service
}

func NewBearerStrategy(users user.Store, tokens *jwt.Service) *BearerStrategy {
	return &BearerStrategy{users: users, tokens: tokens}
}

func (s *BearerStrategy) Authenticate(ctx context.Context, creds Credentials) (*user.User, error) {
	bc, ok := creds.(BearerCredentials)
	if !ok {
		return nil, ErrUnsupportedCredentials
	}
	if bc.Token == "" {
		return nil, ErrTokenMissing
	}

	claims, err := s.tokens.Parse(bc.Token)
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, errors.Join(ErrTokenMalformed, err)
	}

	id, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, errors.Join(ErrTokenMalformed, err)
	}

	u, err := s.users.FindByID(ctx, id)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil, ErrSubjectNotFound
	case err != nil:
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return u, nil
}
