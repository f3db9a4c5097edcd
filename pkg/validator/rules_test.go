package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/myflix/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required ok", validator.Required("f", "x"), true},
		{"required blank", validator.Required("f", "   "), false},
		{"min len exact", validator.MinLen("f", "abcde", 5), true},
		{"min len short", validator.MinLen("f", "abcd", 5), false},
		{"min len counts runes", validator.MinLen("f", "ééééé", 5), true},
		{"max len ok", validator.MaxLen("f", "abc", 3), true},
		{"max len long", validator.MaxLen("f", "abcd", 3), false},
		{"max bytes ok", validator.MaxBytes("f", strings.Repeat("a", 72), 72), true},
		{"max bytes long", validator.MaxBytes("f", strings.Repeat("a", 73), 72), false},
		{"max bytes multibyte", validator.MaxBytes("f", strings.Repeat("é", 37), 72), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"fan@example.com", "first.last+tag@mail.example.org"}
	invalid := []string{"", "plain", "@example.com", "fan@localhost", "fan@.com", "fan@example.", "fan@exa..mple.com", "Fan <fan@example.com>"}

	for _, v := range valid {
		assert.True(t, validator.ValidEmail("Email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("Email", v).Check(), v)
	}
}

func TestValidAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidAlphanumeric("Username", "Moviefan42").Check())
	for _, v := range []string{"", "movie fan", "movie_fan", "movie-fan", "fän"} {
		assert.False(t, validator.ValidAlphanumeric("Username", v).Check(), v)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := validator.ParseDate("1990-04-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), d)

	d, err = validator.ParseDate("1990-04-12T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 1990, d.Year())

	_, err = validator.ParseDate("12/04/1990")
	assert.ErrorIs(t, err, validator.ErrInvalidFormat)

	assert.True(t, validator.ValidDate("Birthday", "2000-01-31").Check())
	assert.False(t, validator.ValidDate("Birthday", "2000-02-31").Check())
}

func TestValidBirthdate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.True(t, validator.ValidBirthdate("Birthday", now.AddDate(-30, 0, 0)).Check())
	assert.False(t, validator.ValidBirthdate("Birthday", now.AddDate(0, 0, 1)).Check())
	assert.False(t, validator.ValidBirthdate("Birthday", now.AddDate(-151, 0, 0)).Check())
}

func TestValidObjectID(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidObjectID("movieId", "65a1b2c3d4e5f60718293a4b").Check())
	assert.False(t, validator.ValidObjectID("movieId", "65a1b2c3d4e5f60718293a4").Check())
	assert.False(t, validator.ValidObjectID("movieId", "zza1b2c3d4e5f60718293a4b").Check())
	assert.True(t, validator.ValidHexString("hex", "DEADbeef", 8).Check())

	r := validator.ValidObjectID("movieId", "x")
	assert.Equal(t, "validation.object_id", r.Error.Code)
}
