package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

const reminderColumns = `id, pet_id, owner_id, title, notes, due_date, due_time, recurrence, created_at`

// Reminders are listed soonest first; untimed reminders sort after timed ones on the same day.
const reminderOrder = `ORDER BY due_date ASC, due_time ASC NULLS LAST, created_at ASC`

// ReminderRepository stores reminders.
type ReminderRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReminderRepository(db *sqlx.DB, txGetter TxGetter) *ReminderRepository {
	return &ReminderRepository{db: db, txGetter: txGetter}
}

func (r *ReminderRepository) Save(ctx context.Context, rem *models.Reminder) error {
	query := `INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	args := []any{rem.ID, rem.PetID, rem.OwnerID, rem.Title, rem.Notes, rem.DueDate, rem.DueTime, rem.Recurrence, rem.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

// GetByID returns nil, nil when the reminder does not exist.
func (r *ReminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	var rem models.Reminder
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rem, query, id)
	logQuery(query, []any{id}, rem.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *ReminderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE owner_id = $1 ` + reminderOrder
	return r.list(ctx, query, ownerID)
}

func (r *ReminderRepository) ListByPet(ctx context.Context, petID uuid.UUID) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE pet_id = $1 ` + reminderOrder
	return r.list(ctx, query, petID)
}

func (r *ReminderRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reminders, query, arg)
	logQuery(query, []any{arg}, len(reminders), err)

	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderRepository) Update(ctx context.Context, rem *models.Reminder) error {
	const query = `
		UPDATE reminders
		SET title = $2, notes = $3, due_date = $4, due_time = $5, recurrence = $6
		WHERE id = $1
	`
	args := []any{rem.ID, rem.Title, rem.Notes, rem.DueDate, rem.DueTime, rem.Recurrence}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)
	return err
}

func (r *ReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM reminders WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, rowsAffected(res), err)
	return err
}
