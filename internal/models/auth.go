package models

import "errors"

// ErrDuplicate is returned by stores when a unique constraint is violated.
var ErrDuplicate = errors.New("duplicate key")

// SignupInput carries the fields of a registration request.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// TokenResponse is returned by signup and login.
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT access token
	AccessToken string `json:"access_token" example:"JWT_TOKEN"`

	// Always "bearer"
	TokenType string `json:"token_type" example:"bearer"`

	// Authenticated user
	User UserPublic `json:"user"`
}
