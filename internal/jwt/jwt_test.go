package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWT_AllAlgorithms(t *testing.T) {
	ctx := context.Background()
	for _, alg := range SupportedAlgorithms {
		t.Run(alg, func(t *testing.T) {
			j := New(WithSecretKey("secret"), WithAlgorithm(alg))
			token, err := j.Generate(ctx, "b@x.com")
			require.NoError(t, err)

			claims, err := j.GetClaims(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, "b@x.com", claims.Email)
		})
	}
}

func TestJWT_ExpiresAfterTTL(t *testing.T) {
	issued := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	now := issued
	clock := func() time.Time { return now }

	j := New(WithSecretKey("secret"), WithExpiration(30*time.Minute), WithClock(clock))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)

	now = issued.Add(29 * time.Minute)
	assert.NoError(t, j.Validate(ctx, token))

	now = issued.Add(30*time.Minute + time.Second)
	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "a@x.com")
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	for _, token := range []string{"", "invalid.token.string", "abc"} {
		assert.ErrorIs(t, j.Validate(ctx, token), ErrInvalidToken, "token %q", token)
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "a@x.com")
	require.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_Validate_WrongAlgorithm(t *testing.T) {
	ctx := context.Background()
	signer := New(WithSecretKey("secret"), WithAlgorithm("HS512"))
	verifier := New(WithSecretKey("secret"), WithAlgorithm("HS256"))

	token, err := signer.Generate(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Error(t, verifier.Validate(ctx, token))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.Error(t, verifier.Validate(ctx, unsigned))
}

func TestJWT_MissingExpOrSubject(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "a@x.com",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.Error(t, j.Validate(ctx, noExp))

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.ErrorIs(t, j.Validate(ctx, noSub), ErrInvalidToken)
}

func TestJWT_UnsupportedAlgorithm(t *testing.T) {
	j := New(WithSecretKey("secret"), WithAlgorithm("RS256"))

	_, err := j.Generate(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, ErrUnsupportedAlg)
	assert.False(t, IsSupportedAlgorithm("none"))
	assert.True(t, IsSupportedAlgorithm("HS384"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
