package models

import (
	"time"

	"github.com/google/uuid"
)

// Recurrence modes of a reminder.
const (
	RecurrenceNone   = "none"
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

// IsValidRecurrence reports whether r is one of the known recurrence modes.
func IsValidRecurrence(r string) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// Reminder represents a scheduled reminder for one pet
type Reminder struct {
	ID         uuid.UUID `json:"id" db:"id"`                 // Primary key
	PetID      uuid.UUID `json:"pet_id" db:"pet_id"`         // Pet the reminder is about
	OwnerID    uuid.UUID `json:"owner_id" db:"owner_id"`     // Owner of the pet at creation time
	Title      string    `json:"title" db:"title"`           // Short description
	Notes      *string   `json:"notes" db:"notes"`           // Optional notes
	DueDate    Date      `json:"due_date" db:"due_date"`     // First (or only) due date
	DueTime    *string   `json:"due_time" db:"due_time"`     // Optional time of day, HH:MM:SS
	Recurrence string    `json:"recurrence" db:"recurrence"` // none, daily or weekly
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// GetOwnerID returns the owning user.
func (r *Reminder) GetOwnerID() uuid.UUID { return r.OwnerID }

// ReminderInput carries the fields accepted when creating a reminder.
type ReminderInput struct {
	PetID      string
	Title      string
	Notes      *string
	DueDate    *Date
	DueTime    *string
	Recurrence string
}

// ReminderPatch carries a partial update; nil fields are left untouched.
type ReminderPatch struct {
	Title      *string
	Notes      *string
	DueDate    *Date
	DueTime    *string
	Recurrence *string
}

// Apply copies every non-nil field of the patch onto r and reports whether anything changed.
func (patch ReminderPatch) Apply(r *Reminder) bool {
	changed := false
	if patch.Title != nil {
		r.Title = *patch.Title
		changed = true
	}
	if patch.Notes != nil {
		r.Notes = patch.Notes
		changed = true
	}
	if patch.DueDate != nil {
		r.DueDate = *patch.DueDate
		changed = true
	}
	if patch.DueTime != nil {
		r.DueTime = patch.DueTime
		changed = true
	}
	if patch.Recurrence != nil {
		r.Recurrence = *patch.Recurrence
		changed = true
	}
	return changed
}
