package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email, matched case-sensitively
	Phone        string    `json:"phone" db:"phone"`           // Contact phone
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Verified     bool      `json:"verified" db:"verified"`     // Email verification flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserPublic is the part of a user that is safe to return to clients.
type UserPublic struct {
	ID    string `json:"id" example:"4f8a1c0e-8a4b-4a5e-9d7c-1c2b3d4e5f60"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"a@x.com"`
}

// Public maps a user to its public view.
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
