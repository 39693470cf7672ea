package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/petpal-api/internal/middlewares"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Signupper defines the interface that the service must implement.
type Signupper interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.TokenResponse, error)
}

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
}

// SignupRequest represents the JSON body for registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	Name string `json:"name" example:"Alice"`
	// Email
	// required: true
	Email string `json:"email" example:"alice@example.com"`
	// Contact phone
	// required: true
	Phone string `json:"phone" example:"+44 20 7946 0958"`
	// Password, 6 to 72 bytes
	// required: true
	Password string `json:"password" example:"secret123"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email" example:"alice@example.com"`
	// Password
	// required: true
	Password string `json:"password" example:"secret123"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and returns an access token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} models.TokenResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signupper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := svc.Signup(r.Context(), models.SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Verifies credentials and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse "Authenticated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		resp, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewMeHandler returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserPublic "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, user.Public())
	}
}

// requireUser returns the user stored by the auth middleware, answering 401 when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return nil, false
	}
	return user, true
}
