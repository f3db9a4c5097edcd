package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/myflix/pkg/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newService(t *testing.T, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(testSecret, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New("")
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.New("short")
	assert.ErrorIs(t, err, jwt.ErrWeakSigningKey)

	_, err = jwt.New(testSecret, jwt.WithTTL(0))
	assert.ErrorIs(t, err, jwt.ErrInvalidTTL)

	svc, err := jwt.New(testSecret)
	require.NoError(t, err)
	assert.Equal(t, jwt.DefaultTTL, svc.TTL())
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	svc := newService(t, jwt.WithClock(c.now), jwt.WithIssuer("myflix"), jwt.WithTTL(time.Hour))

	token, err := svc.Issue("65a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", claims.Subject)
	assert.Equal(t, "myflix", claims.Issuer)
	assert.Equal(t, c.t, claims.IssuedAt.Time.UTC())
	assert.Equal(t, c.t.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestIssue_MissingSubject(t *testing.T) {
	t.Parallel()
	_, err := newService(t).Issue("")
	assert.ErrorIs(t, err, jwt.ErrMissingSubject)
}

func TestParse_Expiry(t *testing.T) {
	t.Parallel()

	const ttl = time.Hour
	issuedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: issuedAt}
	svc := newService(t, jwt.WithClock(c.now), jwt.WithTTL(ttl))

	token, err := svc.Issue("user-1")
	require.NoError(t, err)

	c.t = issuedAt.Add(ttl - time.Second)
	_, err = svc.Parse(token)
	require.NoError(t, err)

	c.t = issuedAt.Add(ttl + time.Second)
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	assert.NotErrorIs(t, err, jwt.ErrMalformedToken)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()
	svc := newService(t, jwt.WithIssuer("myflix"))

	valid, err := svc.Issue("user-1")
	require.NoError(t, err)

	other, err := jwt.New("fedcba9876543210fedcba9876543210", jwt.WithIssuer("myflix"))
	require.NoError(t, err)
	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	wrongIssuer, err := newService(t, jwt.WithIssuer("someone-else")).Issue("user-1")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tamperedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"admin","iss":"myflix","exp":4102444800}`))
	tampered := parts[0] + "." + tamperedPayload + "." + parts[2]

	none := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "myflix",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noneToken, err := none.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		Subject: "user-1",
		Issuer:  "myflix",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"two segments":   parts[0] + "." + parts[1],
		"foreign key":    foreign,
		"wrong issuer":   wrongIssuer,
		"tampered body":  tampered,
		"alg none":       noneToken,
		"missing expiry": noExpiry,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Parse(token)
			assert.ErrorIs(t, err, jwt.ErrMalformedToken)
		})
	}
}

func TestIssue_PayloadHasOnlyRegisteredClaims(t *testing.T) {
	t.Parallel()
	token, err := newService(t, jwt.WithIssuer("myflix")).Issue("user-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"sub", "iss", "iat", "exp"}, keys)
}
