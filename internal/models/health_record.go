package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord represents a medical history entry for one pet
type HealthRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`                         // Primary key
	PetID         uuid.UUID `json:"pet_id" db:"pet_id"`                 // Pet the record belongs to
	OwnerID       uuid.UUID `json:"owner_id" db:"owner_id"`             // Owner of the pet at creation time
	Title         string    `json:"title" db:"title"`                   // Short description
	Date          Date      `json:"date" db:"record_date"`              // Date of the event
	Notes         *string   `json:"notes" db:"notes"`                   // Optional notes
	Tags          Tags      `json:"tags" db:"tags"`                     // e.g. vaccine, prescription, surgery
	AttachmentURL *string   `json:"attachment_url" db:"attachment_url"` // Optional attachment location
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// GetOwnerID returns the owning user.
func (h *HealthRecord) GetOwnerID() uuid.UUID { return h.OwnerID }

// HealthRecordInput carries the fields accepted when creating a record.
type HealthRecordInput struct {
	PetID         string
	Title         string
	Date          *Date
	Notes         *string
	Tags          []string
	AttachmentURL *string
}

// HealthRecordPatch carries a partial update; nil fields are left untouched.
type HealthRecordPatch struct {
	Title         *string
	Date          *Date
	Notes         *string
	Tags          *[]string
	AttachmentURL *string
}

// Apply copies every non-nil field of the patch onto h and reports whether anything changed.
func (patch HealthRecordPatch) Apply(h *HealthRecord) bool {
	changed := false
	if patch.Title != nil {
		h.Title = *patch.Title
		changed = true
	}
	if patch.Date != nil {
		h.Date = *patch.Date
		changed = true
	}
	if patch.Notes != nil {
		h.Notes = patch.Notes
		changed = true
	}
	if patch.Tags != nil {
		h.Tags = Tags(*patch.Tags)
		changed = true
	}
	if patch.AttachmentURL != nil {
		h.AttachmentURL = patch.AttachmentURL
		changed = true
	}
	return changed
}
