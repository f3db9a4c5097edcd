package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/myflix/pkg/password"
)

func newHasher(t *testing.T) *password.Hasher {
	t.Helper()
	h, err := password.New(password.WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default cost", func(t *testing.T) {
		t.Parallel()
		h, err := password.New()
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, h.Cost())
	})

	t.Run("rejects cost out of range", func(t *testing.T) {
		t.Parallel()
		for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
			_, err := password.New(password.WithCost(cost))
			assert.ErrorIs(t, err, password.ErrInvalidCost)
		}
	})
}

func TestHashAndVerify(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	cases := map[string]string{
		"regular":     "Secret123",
		"single char": "p",
		"unicode":     "пароль",
		"max length":  strings.Repeat("x", password.MaxLength),
	}

	for name, plain := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			hash, err := h.Hash(plain)
			require.NoError(t, err)

			assert.NotEqual(t, plain, hash)
			assert.True(t, h.Verify(plain, hash))
			assert.False(t, h.Verify(plain+"!", hash))
		})
	}
}

func TestHash_SaltIsRandom(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	first, err := h.Hash("Secret123")
	require.NoError(t, err)
	second, err := h.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Secret123", first))
	assert.True(t, h.Verify("Secret123", second))
}

func TestHash_Rejects(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	_, err = h.Hash(strings.Repeat("x", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}

func TestVerify_RejectsOverlongPlaintext(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	plain := strings.Repeat("x", password.MaxLength)
	hash, err := h.Hash(plain)
	require.NoError(t, err)

	assert.True(t, h.Verify(plain, hash))
	assert.False(t, h.Verify(plain+"y", hash))
	assert.False(t, h.Verify(plain+"WRONG-SUFFIX", hash))
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	for _, hash := range []string{"", "plaintext", "$2a$10$short", "$2a$99$" + strings.Repeat("a", 53)} {
		assert.False(t, h.Verify("Secret123", hash), "hash %q", hash)
	}
}

func TestVerify_HashFromOtherCost(t *testing.T) {
	t.Parallel()

	strong, err := password.New(password.WithCost(bcrypt.MinCost + 1))
	require.NoError(t, err)
	hash, err := strong.Hash("Secret123")
	require.NoError(t, err)

	assert.True(t, newHasher(t).Verify("Secret123", hash))
}
