package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/hasher"
	"github.com/sbilibin2017/petpal-api/internal/jwt"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

const (
	tokenTypeBearer   = "bearer"
	minPasswordLength = 6
	dummyPassword     = "petpal-timing-equalizer"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Generate(ctx context.Context, email string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenManager
	events *EventPublisher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenManager,
	events *EventPublisher,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
		events: events,
	}
}

// Signup registers a new user and logs them in.
func (svc *AuthService) Signup(ctx context.Context, in models.SignupInput) (*models.TokenResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validateSignup(in); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", in.Email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := svc.hasher.Hash(in.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	svc.events.Publish(ctx, models.EventUserRegistered, user.ID, user.ID, uuid.Nil)

	return svc.issue(ctx, user)
}

// Login authenticates a user by email and password and returns an access token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	email = strings.TrimSpace(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user == nil {
		svc.hasher.Verify(password, svc.dummy())
		logger.Log.Infow("login failed", "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

// Authenticate resolves a bearer token to its persisted user. A bad token and
// a token whose user no longer exists fail the same way.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("token rejected", "err", err)
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByEmail(ctx, claims.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		logger.Log.Infow("token subject not found")
		return nil, ErrUnauthorized
	}

	return user, nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.User) (*models.TokenResponse, error) {
	token, err := svc.tokens.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		User:        user.Public(),
	}, nil
}

// dummy returns a hash to verify against when the user does not exist, so
// both login failures cost one bcrypt comparison.
func (svc *AuthService) dummy() string {
	svc.dummyOnce.Do(func() {
		hash, err := svc.hasher.Hash(dummyPassword)
		if err != nil {
			logger.Log.Errorw("failed to prepare dummy hash", "err", err)
			return
		}
		svc.dummyHash = hash
	})
	return svc.dummyHash
}

func validateSignup(in models.SignupInput) error {
	if in.Name == "" || len(in.Name) > 100 {
		return invalidField("name", "must be between 1 and 100 characters")
	}
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return invalidField("email", "must be a valid email address")
	}
	if in.Phone == "" || len(in.Phone) > 20 {
		return invalidField("phone", "must be between 1 and 20 characters")
	}
	if len(in.Password) < minPasswordLength || len(in.Password) > hasher.MaxPasswordLength {
		return invalidField("password", fmt.Sprintf("must be between %d and %d bytes", minPasswordLength, hasher.MaxPasswordLength))
	}
	return nil
}
