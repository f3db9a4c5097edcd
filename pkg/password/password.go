// Package password hashes and verifies user passwords with bcrypt.
//
// Every hash carries its own random salt and cost, so Verify needs nothing but
// the stored string. Verification never fails loudly: a malformed hash simply
// does not match.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

var (
	ErrEmptyPassword   = errors.New("password: empty password")
	ErrPasswordTooLong = errors.New("password: longer than 72 bytes")
	ErrInvalidCost     = errors.New("password: invalid bcrypt cost")
)

// Hasher hashes and verifies passwords.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt work factor.
func WithCost(cost int) Option {
	return func(h *Hasher) { h.cost = cost }
}

// New returns a Hasher using bcrypt.DefaultCost unless WithCost is given.
func New(opts ...Option) (*Hasher, error) {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidCost, h.cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return h, nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns a salted bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > MaxLength {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash.
// It returns false for malformed or empty hashes and for plaintext longer
// than MaxLength, which bcrypt would otherwise truncate.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if hash == "" || len(plaintext) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
