package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

const healthRecordColumns = `id, pet_id, owner_id, title, record_date, notes, tags, attachment_url, created_at`

// HealthRecordRepository stores health records. Lists are newest first.
type HealthRecordRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHealthRecordRepository(db *sqlx.DB, txGetter TxGetter) *HealthRecordRepository {
	return &HealthRecordRepository{db: db, txGetter: txGetter}
}

func (r *HealthRecordRepository) Save(ctx context.Context, rec *models.HealthRecord) error {
	query := `INSERT INTO health_records (` + healthRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	args := []any{rec.ID, rec.PetID, rec.OwnerID, rec.Title, rec.Date, rec.Notes, rec.Tags, rec.AttachmentURL, rec.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

// GetByID returns nil, nil when the record does not exist.
func (r *HealthRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HealthRecord, error) {
	query := `SELECT ` + healthRecordColumns + ` FROM health_records WHERE id = $1`

	var rec models.HealthRecord
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rec, query, id)
	logQuery(query, []any{id}, rec.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *HealthRecordRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.HealthRecord, error) {
	query := `SELECT ` + healthRecordColumns + ` FROM health_records
		WHERE owner_id = $1
		ORDER BY record_date DESC, created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *HealthRecordRepository) ListByPet(ctx context.Context, petID uuid.UUID) ([]models.HealthRecord, error) {
	query := `SELECT ` + healthRecordColumns + ` FROM health_records
		WHERE pet_id = $1
		ORDER BY record_date DESC, created_at DESC`
	return r.list(ctx, query, petID)
}

func (r *HealthRecordRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]models.HealthRecord, error) {
	records := []models.HealthRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query, arg)
	logQuery(query, []any{arg}, len(records), err)

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *HealthRecordRepository) Update(ctx context.Context, rec *models.HealthRecord) error {
	const query = `
		UPDATE health_records
		SET title = $2, record_date = $3, notes = $4, tags = $5, attachment_url = $6
		WHERE id = $1
	`
	args := []any{rec.ID, rec.Title, rec.Date, rec.Notes, rec.Tags, rec.AttachmentURL}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

func (r *HealthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM health_records WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, rowsAffected(res), err)
	return err
}
