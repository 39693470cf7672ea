package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

const petColumns = `id, owner_id, name, species, breed, dob, weight, photo_url, age, about,
	last_vet_visit, last_vax_date, vaccinated, created_at`

// PetRepository stores pets.
type PetRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPetRepository(db *sqlx.DB, txGetter TxGetter) *PetRepository {
	return &PetRepository{db: db, txGetter: txGetter}
}

func (r *PetRepository) Save(ctx context.Context, pet *models.Pet) error {
	query := `INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	args := []any{
		pet.ID, pet.OwnerID, pet.Name, pet.Species, pet.Breed, pet.DOB, pet.Weight, pet.PhotoURL,
		pet.Age, pet.About, pet.LastVetVisit, pet.LastVaxDate, pet.Vaccinated, pet.CreatedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

// GetByID returns nil, nil when the pet does not exist.
func (r *PetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`

	var pet models.Pet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &pet, query, id)
	logQuery(query, []any{id}, pet.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at, id`

	pets := []models.Pet{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &pets, query, ownerID)
	logQuery(query, []any{ownerID}, len(pets), err)

	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepository) Update(ctx context.Context, pet *models.Pet) error {
	const query = `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, dob = $5, weight = $6, photo_url = $7,
		    age = $8, about = $9, last_vet_visit = $10, last_vax_date = $11, vaccinated = $12
		WHERE id = $1
	`
	args := []any{
		pet.ID, pet.Name, pet.Species, pet.Breed, pet.DOB, pet.Weight, pet.PhotoURL,
		pet.Age, pet.About, pet.LastVetVisit, pet.LastVaxDate, pet.Vaccinated,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

// Delete removes the pet with its health records and reminders. It runs inside
// the request transaction when there is one, otherwise in its own.
func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return deletePetCascade(ctx, tx, id)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := deletePetCascade(ctx, tx, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func deletePetCascade(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	queries := []string{
		`DELETE FROM health_records WHERE pet_id = $1`,
		`DELETE FROM reminders WHERE pet_id = $1`,
		`DELETE FROM pets WHERE id = $1`,
	}
	for _, query := range queries {
		res, err := tx.ExecContext(ctx, query, id)
		logQuery(query, []any{id}, rowsAffected(res), err)
		if err != nil {
			return err
		}
	}
	return nil
}
