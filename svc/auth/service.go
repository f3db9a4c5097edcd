package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/myflix/pkg/jwt"
	"github.com/dmitrymomot/myflix/pkg/logger"
	"github.com/dmitrymomot/myflix/pkg/password"
	"github.com/dmitrymomot/myflix/pkg/validator"
	"github.com/dmitrymomot/myflix/svc/user"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	User  *user.Profile `json:"user"`
	Token string        `json:"token"`
}

// Service authenticates clients and orchestrates account changes.
type Service struct {
	users      user.Store
	hasher     *password.Hasher
	tokens     *jwt.Service
	strategies map[Scheme]Strategy
	log        *slog.Logger
	recorder   Recorder
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder reports login attempts and token rejections to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New creates a Service with the local and bearer strategies.
func New(users user.Store, hasher *password.Hasher, tokens *jwt.Service, opts ...Option) (*Service, error) {
	local, err := NewLocalStrategy(users, hasher)
	if err != nil {
		return nil, fmt.Errorf("auth: local strategy: %w", err)
	}

	s := &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		strategies: map[Scheme]Strategy{
			SchemePassword: local,
			SchemeBearer:   NewBearerStrategy(users, tokens),
		},
		log:      logger.Discard(),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("auth"))
	return s, nil
}

// NewFromConfig builds the hasher and token service from cfg.
func NewFromConfig(cfg Config, users user.Store, opts ...Option) (*Service, error) {
	hasher, err := password.New(password.WithCost(cfg.BcryptCost))
	if err != nil {
		return nil, err
	}
	tokens, err := jwt.New(cfg.JWTSecret, jwt.WithTTL(cfg.JWTTTL), jwt.WithIssuer(cfg.JWTIssuer))
	if err != nil {
		return nil, err
	}
	return New(users, hasher, tokens, opts...)
}

// Authenticate resolves creds with the strategy registered for their scheme.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (*user.Profile, error) {
	u, err := s.authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	return u.Profile(), nil
}

func (s *Service) authenticate(ctx context.Context, creds Credentials) (*user.User, error) {
	if creds == nil {
		return nil, ErrUnsupportedCredentials
	}
	strategy, ok := s.strategies[creds.Scheme()]
	if !ok {
		return nil, ErrUnsupportedCredentials
	}
	return strategy.Authenticate(ctx, creds)
}

// Register validates r, hashes the password and creates the user.
// A taken username yields user.ErrConflict, whether caught by the lookup or by
// the store's unique index.
func (s *Service) Register(ctx context.Context, r user.Registration) (*user.Profile, error) {
	if err := user.ValidateRegistration(r); err != nil {
		return nil, err
	}

	_, err := s.users.FindByUsername(ctx, r.Username)
	switch {
	case err == nil:
		return nil, user.ErrConflict
	case !errors.Is(err, user.ErrNotFound):
		return nil, s.storeError(ctx, "register", err)
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, err
	}
	birthday, err := user.ParseBirthday(r.Birthday)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &user.User{
		Username:     r.Username,
		PasswordHash: hash,
		Email:        r.Email,
		Birthday:     birthday,
	})
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			return nil, user.ErrConflict
		}
		return nil, s.storeError(ctx, "register", err)
	}

	s.log.InfoContext(ctx, "user registered",
		logger.Event("user.registered"),
		logger.UserID(created.ID.Hex()),
		logger.Username(created.Username),
	)
	return created.Profile(), nil
}

// Login checks the credentials and issues a token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, plaintext string) (*LoginResult, error) {
	u, err := s.authenticate(ctx, PasswordCredentials{Username: username, Password: plaintext})
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		s.recorder.LoginAttempt(OutcomeInvalidCredentials)
		s.log.DebugContext(ctx, "login rejected", logger.Event("auth.login_rejected"))
		return nil, ErrInvalidCredentials
	case err != nil:
		s.recorder.LoginAttempt(OutcomeError)
		s.log.ErrorContext(ctx, "login failed", logger.Event("auth.login_failed"), logger.Error(err))
		return nil, err
	}

	token, err := s.tokens.Issue(u.ID.Hex())
	if err != nil {
		s.recorder.LoginAttempt(OutcomeError)
		s.log.ErrorContext(ctx, "token issue failed", logger.Event("auth.login_failed"), logger.Error(err))
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}

	s.recorder.LoginAttempt(OutcomeSuccess)
	s.log.InfoContext(ctx, "user logged in",
		logger.Event("auth.login"),
		logger.UserID(u.ID.Hex()),
		logger.Username(u.Username),
	)
	return &LoginResult{User: u.Profile(), Token: token}, nil
}

// Verify resolves a bearer token to the profile of a live user.
// Errors: ErrTokenMissing, ErrTokenMalformed, ErrTokenExpired,
// ErrSubjectNotFound, or ErrStoreUnavailable.
func (s *Service) Verify(ctx context.Context, token string) (*user.Profile, error) {
	profile, err := s.Authenticate(ctx, BearerCredentials{Token: token})
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			s.recorder.TokenRejected(reason)
		} else {
			s.log.ErrorContext(ctx, "token verification failed", logger.Error(err))
		}
		return nil, err
	}
	return profile, nil
}

// Profile returns the profile of username.
func (s *Service) Profile(ctx context.Context, username string) (*user.Profile, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, s.storeError(ctx, "profile", err)
	}
	return u.Profile(), nil
}

// UpdateProfile validates req and applies it to the user with the given id.
// A new password is hashed before it reaches the store.
func (s *Service) UpdateProfile(ctx context.Context, id string, req user.ChangeRequest) (*user.Profile, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	if err := user.ValidateChanges(req); err != nil {
		return nil, err
	}

	changes := user.Changes{Username: req.Username, Email: req.Email}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}
	if req.Birthday != nil {
		birthday, err := user.ParseBirthday(*req.Birthday)
		if err != nil {
			return nil, err
		}
		changes.Birthday = birthday
	}

	updated, err := s.users.Update(ctx, oid, changes)
	if err != nil {
		return nil, s.accountError(ctx, "update profile", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		logger.Event("user.updated"),
		logger.UserID(id),
		slog.Bool("password_changed", changes.PasswordHash != nil),
	)
	return updated.Profile(), nil
}

// AddFavorite adds movieID to the user's favorites. Adding twice is a no-op.
func (s *Service) AddFavorite(ctx context.Context, id, movieID string) (*user.Profile, error) {
	oid, mid, err := parseFavoriteIDs(id, movieID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.AddFavorite(ctx, oid, mid)
	if err != nil {
		return nil, s.accountError(ctx, "add favorite", err)
	}
	return u.Profile(), nil
}

// RemoveFavorite removes movieID from the user's favorites. Removing an absent id is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, id, movieID string) (*user.Profile, error) {
	oid, mid, err := parseFavoriteIDs(id, movieID)
	if err != nil {
		return nil, err
	}
	u, err := s.users.RemoveFavorite(ctx, oid, mid)
	if err != nil {
		return nil, s.accountError(ctx, "remove favorite", err)
	}
	return u.Profile(), nil
}

// DeleteAccount removes the user. Tokens issued to it stop verifying.
func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	oid, err := parseUserID(id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, oid); err != nil {
		return s.accountError(ctx, "delete account", err)
	}
	s.log.InfoContext(ctx, "account deleted", logger.Event("user.deleted"), logger.UserID(id))
	return nil
}

// accountError passes through the user sentinels and wraps everything else.
func (s *Service) accountError(ctx context.Context, op string, err error) error {
	if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrConflict) {
		return err
	}
	return s.storeError(ctx, op, err)
}

func (s *Service) storeError(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, "user store failed", slog.String("op", op), logger.Error(err))
	return errors.Join(ErrStoreUnavailable, err)
}

func parseUserID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, user.ErrNotFound
	}
	return oid, nil
}

func parseFavoriteIDs(id, movieID string) (bson.ObjectID, bson.ObjectID, error) {
	if err := validator.Apply(validator.ValidObjectID("movieId", movieID)); err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, err
	}
	oid, err := parseUserID(id)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, err
	}
	mid, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, err
	}
	return oid, mid, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return ReasonMissing
	case errors.Is(err, ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, ErrSubjectNotFound):
		return ReasonUnknownSubject
	case errors.Is(err, ErrTokenMalformed):
		return ReasonMalformed
	}
	return ""
}
