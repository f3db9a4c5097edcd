package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/myflix/pkg/jwt"
	"github.com/dmitrymomot/myflix/pkg/password"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/user"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	svc      *auth.Service
	users    user.Store
	hasher   *password.Hasher
	recorder *recorder
	now      time.Time
}

func (f *fixture) clock() time.Time { return f.now }

func newFixture(t *testing.T, users user.Store) *fixture {
	t.Helper()

	if users == nil {
		users = user.NewMemoryStore()
	}
	f := &fixture{
		users:    users,
		recorder: &recorder{},
		now:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	hasher, err := password.New(password.WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	f.hasher = hasher

	tokens, err := jwt.New(testSecret, jwt.WithTTL(time.Hour), jwt.WithIssuer("myflix"), jwt.WithClock(f.clock))
	require.NoError(t, err)

	f.svc, err = auth.New(users, hasher, tokens, auth.WithRecorder(f.recorder))
	require.NoError(t, err)
	return f
}

func (f *fixture) register(t *testing.T, username, plaintext string) *user.Profile {
	t.Helper()
	p, err := f.svc.Register(context.Background(), user.Registration{
		Username: username,
		Password: plaintext,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return p
}

type recorder struct {
	mu         sync.Mutex
	logins     []string
	rejections []string
}

func (r *recorder) LoginAttempt(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins = append(r.logins, outcome)
}

func (r *recorder) TokenRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections = append(r.rejections, reason)
}

func (r *recorder) loginOutcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logins...)
}

func (r *recorder) rejectionReasons() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.rejections...)
}

// mockStore injects store failures. Methods not set up panic via mock.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(*user.User)
	return created, args.Error(1)
}

func (m *mockStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockStore) FindByID(ctx context.Context, id bson.ObjectID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id bson.ObjectID, changes user.Changes) (*user.User, error) {
	args := m.Called(ctx, id, changes)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockStore) AddFavorite(ctx context.Context, id, movieID bson.ObjectID) (*user.User, error) {
	args := m.Called(ctx, id, movieID)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockStore) RemoveFavorite(ctx context.Context, id, movieID bson.ObjectID) (*user.User, error) {
	args := m.Called(ctx, id, movieID)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
