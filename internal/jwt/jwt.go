package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnsupportedAlg    = errors.New("unsupported signing algorithm")
)

// SupportedAlgorithms lists the HMAC algorithms a server secret can sign with.
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// Claims is the verified content of an access token.
type Claims struct {
	Email     string    // Subject of the token
	IssuedAt  time.Time // Issue time
	ExpiresAt time.Time // Expiration time
}

// JWT issues and verifies HMAC-signed access tokens whose subject is a user email.
type JWT struct {
	SecretKey string           // Secret key for signing tokens
	Algorithm string           // Signing algorithm name, e.g. HS256
	Exp       time.Duration    // Token lifetime
	now       func() time.Time // Clock used for iat/exp and verification
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(key string) Option {
	return func(j *JWT) { j.SecretKey = key }
}

// WithAlgorithm sets the signing algorithm.
func WithAlgorithm(alg string) Option {
	return func(j *JWT) { j.Algorithm = alg }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.Exp = exp }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// New creates a JWT with HS256 and a 30 minute lifetime unless overridden.
func New(opts ...Option) *JWT {
	j := &JWT{
		Algorithm: "HS256",
		Exp:       30 * time.Minute,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// IsSupportedAlgorithm reports whether alg can be used with New.
func IsSupportedAlgorithm(alg string) bool {
	for _, a := range SupportedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

func (j *JWT) method() (jwt.SigningMethod, error) {
	if !IsSupportedAlgorithm(j.Algorithm) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, j.Algorithm)
	}
	return jwt.GetSigningMethod(j.Algorithm), nil
}

// Generate creates a signed token with sub=email, iat=now and exp=now+Exp.
func (j *JWT) Generate(ctx context.Context, email string) (string, error) {
	method, err := j.method()
	if err != nil {
		return "", err
	}

	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies signature, algorithm and expiry of tokenString and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if _, err := j.method(); err != nil {
		return nil, err
	}

	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &registered,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.SecretKey), nil
		},
		jwt.WithValidMethods([]string{j.Algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || registered.Subject == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Email: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	claims.ExpiresAt = registered.ExpiresAt.Time
	return claims, nil
}

// Validate reports whether tokenString is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
