package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

// UserReadRepository handles user reads.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns nil, nil when no user has this email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, phone, password_hash, verified, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)

	logQuery(query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user writes.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken email yields models.ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, name, email, phone, password_hash, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.Verified, user.CreatedAt)

	// password hash stays out of the log
	logQuery(query, []any{user.ID, user.Name, user.Email, user.Phone}, rowsAffected(res), err)

	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	return err
}
