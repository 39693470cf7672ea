package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=records.go -destination=mock_records.go -package=handlers

// HealthRecordManager defines the interface that the health record service must implement.
type HealthRecordManager interface {
	Create(ctx context.Context, user *models.User, in models.HealthRecordInput) (*models.HealthRecord, error)
	ListAll(ctx context.Context, user *models.User) ([]models.HealthRecord, error)
	ListByPet(ctx context.Context, user *models.User, petID string) ([]models.HealthRecord, error)
	Get(ctx context.Context, user *models.User, id string) (*models.HealthRecord, error)
	Update(ctx context.Context, user *models.User, id string, patch models.HealthRecordPatch) (*models.HealthRecord, error)
	Delete(ctx context.Context, user *models.User, id string) error
}

// HealthRecordRequest is the body of record create and update requests.
// pet_id is only read on create.
// swagger:model HealthRecordRequest
type HealthRecordRequest struct {
	PetID         string       `json:"pet_id" example:"4f8a1c0e-8a4b-4a5e-9d7c-1c2b3d4e5f60"`
	Title         *string      `json:"title" example:"Rabies vaccine"`
	Date          *models.Date `json:"date" swaggertype:"string" example:"2024-03-01"`
	Notes         *string      `json:"notes"`
	Tags          *[]string    `json:"tags" example:"vaccine"`
	AttachmentURL *string      `json:"attachment_url"`
}

func (req HealthRecordRequest) input() models.HealthRecordInput {
	in := models.HealthRecordInput{
		PetID:         req.PetID,
		Date:          req.Date,
		Notes:         req.Notes,
		AttachmentURL: req.AttachmentURL,
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Tags != nil {
		in.Tags = *req.Tags
	}
	return in
}

func (req HealthRecordRequest) patch() models.HealthRecordPatch {
	return models.HealthRecordPatch{
		Title:         req.Title,
		Date:          req.Date,
		Notes:         req.Notes,
		Tags:          req.Tags,
		AttachmentURL: req.AttachmentURL,
	}
}

// NewCreateHealthRecordHandler returns an HTTP handler that adds a record to one of the caller's pets.
// @Summary Create a health record
// @Tags records
// @Accept json
// @Produce json
// @Param recordRequest body handlers.HealthRecordRequest true "Health record"
// @Success 201 {object} models.HealthRecord
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /records/ [post]
// @Security BearerAuth
func NewCreateHealthRecordHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req HealthRecordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rec, err := svc.Create(r.Context(), user, req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// NewListHealthRecordsHandler returns all of the caller's records, newest first.
// @Summary List all health records
// @Tags records
// @Produce json
// @Success 200 {array} models.HealthRecord
// @Router /records/all [get]
// @Security BearerAuth
func NewListHealthRecordsHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		recs, err := svc.ListAll(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// NewListPetHealthRecordsHandler returns the records of one pet, newest first.
// @Summary List a pet's health records
// @Tags records
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {array} models.HealthRecord
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /records/pet/{pet_id} [get]
// @Security BearerAuth
func NewListPetHealthRecordsHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		recs, err := svc.ListByPet(r.Context(), user, chi.URLParam(r, "pet_id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// NewGetHealthRecordHandler returns a single record.
// @Summary Get a health record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.HealthRecord
// @Failure 404 {object} handlers.ErrorResponse
// @Router /records/{id} [get]
// @Security BearerAuth
func NewGetHealthRecordHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		rec, err := svc.Get(r.Context(), user, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewUpdateHealthRecordHandler applies a partial update to a record.
// @Summary Update a health record
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param recordRequest body handlers.HealthRecordRequest true "Fields to change"
// @Success 200 {object} models.HealthRecord
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /records/{id} [put]
// @Security BearerAuth
func NewUpdateHealthRecordHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req HealthRecordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rec, err := svc.Update(r.Context(), user, chi.URLParam(r, "id"), req.patch())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewDeleteHealthRecordHandler deletes a record.
// @Summary Delete a health record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /records/{id} [delete]
// @Security BearerAuth
func NewDeleteHealthRecordHandler(svc HealthRecordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Health record deleted successfully"})
	}
}
