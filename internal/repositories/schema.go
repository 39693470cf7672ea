package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/logger"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(20) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS pets (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		species VARCHAR(50) NOT NULL,
		breed VARCHAR(50),
		dob DATE,
		weight DOUBLE PRECISION,
		photo_url TEXT,
		age VARCHAR(50),
		about TEXT,
		last_vet_visit DATE,
		last_vax_date DATE,
		vaccinated BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS pets_owner_id_idx ON pets (owner_id);`,
	`CREATE TABLE IF NOT EXISTS health_records (
		id UUID PRIMARY KEY,
		pet_id UUID NOT NULL REFERENCES pets(id),
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(150) NOT NULL,
		record_date DATE NOT NULL,
		notes TEXT,
		tags JSONB NOT NULL DEFAULT '[]'::jsonb,
		attachment_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS health_records_owner_id_idx ON health_records (owner_id);`,
	`CREATE INDEX IF NOT EXISTS health_records_pet_id_idx ON health_records (pet_id);`,
	`CREATE TABLE IF NOT EXISTS reminders (
		id UUID PRIMARY KEY,
		pet_id UUID NOT NULL REFERENCES pets(id),
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(150) NOT NULL,
		notes TEXT,
		due_date DATE NOT NULL,
		due_time VARCHAR(8),
		recurrence VARCHAR(10) NOT NULL DEFAULT 'none',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS reminders_owner_id_idx ON reminders (owner_id);`,
	`CREATE INDEX IF NOT EXISTS reminders_pet_id_idx ON reminders (pet_id);`,
	`CREATE TABLE IF NOT EXISTS lookup_cache (
		query_key VARCHAR(255) PRIMARY KEY,
		payload JSONB NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS lookup_cache_expires_at_idx ON lookup_cache (expires_at);`,
}

// Migrate creates the tables the service needs. It is safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	logger.Log.Infow("database schema is up to date", "migrations", len(migrations))
	return nil
}
