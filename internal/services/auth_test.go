package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/hasher"
	"github.com/sbilibin2017/petpal-api/internal/jwt"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(ctrl *gomock.Controller) (*AuthService, *MockUserReader, *MockUserWriter) {
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	svc := NewAuthService(reader, writer, hasher.New(bcrypt.MinCost), tokens, nil)
	return svc, reader, writer
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	valid := models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: "secret1"}

	tests := []struct {
		name    string
		input   models.SignupInput
		setup   func(r *MockUserReader, w *MockUserWriter)
		wantErr error
	}{
		{
			name:  "success",
			input: valid,
			setup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
				w.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
					assert.NotEqual(t, "secret1", u.PasswordHash)
					assert.NotEqual(t, uuid.Nil, u.ID)
					return nil
				})
			},
		},
		{
			name:  "password at minimum length",
			input: models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: "secret"},
			setup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
				w.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:  "password at bcrypt limit",
			input: models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: strings.Repeat("p", 72)},
			setup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
				w.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "invalid email",
			input:   models.SignupInput{Name: "Alice", Email: "not-an-email", Phone: "123", Password: "secret1"},
			wantErr: ErrValidation,
		},
		{
			name:    "short password",
			input:   models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: "12345"},
			wantErr: ErrValidation,
		},
		{
			name:    "password over bcrypt limit",
			input:   models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: strings.Repeat("p", 73)},
			wantErr: ErrValidation,
		},
		{
			name:    "blank name",
			input:   models.SignupInput{Name: "   ", Email: "a@x.com", Phone: "123", Password: "secret1"},
			wantErr: ErrValidation,
		},
		{
			name:  "email already registered",
			input: valid,
			setup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByEmail(ctx, "a@x.com").Return(&models.User{ID: uuid.New()}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:  "concurrent duplicate on save",
			input: valid,
			setup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
				w.EXPECT().Save(ctx, gomock.Any()).Return(models.ErrDuplicate)
			},
			wantErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, writer := newTestAuthService(ctrl)
			if tt.setup != nil {
				tt.setup(reader, writer)
			}

			resp, err := svc.Signup(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, "a@x.com", resp.User.Email)
			assert.Equal(t, "Alice", resp.User.Name)
		})
	}
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, writer := newTestAuthService(ctrl)

	var stored *models.User
	reader.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		stored = u
		return nil
	})

	signup, err := svc.Signup(ctx, models.SignupInput{Name: "Alice", Email: "a@x.com", Phone: "123", Password: "secret1"})
	require.NoError(t, err)

	reader.EXPECT().GetByEmail(ctx, "a@x.com").DoAndReturn(func(context.Context, string) (*models.User, error) {
		return stored, nil
	}).Times(3)

	login, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)

	user, err := svc.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	_, err = svc.Login(ctx, "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newTestAuthService(ctrl)

	hash, err := hasher.New(bcrypt.MinCost).Hash("secret1")
	require.NoError(t, err)
	reader.EXPECT().GetByEmail(ctx, "a@x.com").Return(&models.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: hash}, nil)
	reader.EXPECT().GetByEmail(ctx, "nobody@x.com").Return(nil, nil)

	_, wrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_LoginTrimsEmail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newTestAuthService(ctrl)

	hash, err := hasher.New(bcrypt.MinCost).Hash("secret1")
	require.NoError(t, err)
	reader.EXPECT().GetByEmail(ctx, "a@x.com").Return(&models.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: hash}, nil)

	resp, err := svc.Login(ctx, "  a@x.com ", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_LoginStoreError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _ := newTestAuthService(ctrl)
	reader.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, errors.New("db down"))

	_, err := svc.Login(ctx, "a@x.com", "secret1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newTestAuthService(ctrl)

		_, err := svc.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newTestAuthService(ctrl)

		past := jwt.New(
			jwt.WithSecretKey("test-secret"),
			jwt.WithExpiration(time.Minute),
			jwt.WithClock(func() time.Time { return time.Now().Add(-time.Hour) }),
		)
		token, err := past.Generate(ctx, "a@x.com")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, reader, _ := newTestAuthService(ctrl)

		token, err := jwt.New(jwt.WithSecretKey("test-secret")).Generate(ctx, "gone@x.com")
		require.NoError(t, err)
		reader.EXPECT().GetByEmail(ctx, "gone@x.com").Return(nil, nil)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newTestAuthService(ctrl)

		token, err := jwt.New(jwt.WithSecretKey("other-secret")).Generate(ctx, "a@x.com")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
