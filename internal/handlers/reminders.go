package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=reminders.go -destination=mock_reminders.go -package=handlers

// ReminderManager defines the interface that the reminder service must implement.
type ReminderManager interface {
	Create(ctx context.Context, user *models.User, in models.ReminderInput) (*models.Reminder, error)
	ListAll(ctx context.Context, user *models.User) ([]models.Reminder, error)
	ListByPet(ctx context.Context, user *models.User, petID string) ([]models.Reminder, error)
	Get(ctx context.Context, user *models.User, id string) (*models.Reminder, error)
	Update(ctx context.Context, user *models.User, id string, patch models.ReminderPatch) (*models.Reminder, error)
	Delete(ctx context.Context, user *models.User, id string) error
}

// ReminderRequest is the body of reminder create and update requests.
// pet_id is only read on create. On update an empty due_time clears the time.
// swagger:model ReminderRequest
type ReminderRequest struct {
	PetID      string       `json:"pet_id" example:"4f8a1c0e-8a4b-4a5e-9d7c-1c2b3d4e5f60"`
	Title      *string      `json:"title" example:"Flea treatment"`
	Notes      *string      `json:"notes"`
	DueDate    *models.Date `json:"due_date" swaggertype:"string" example:"2024-06-01"`
	DueTime    *string      `json:"due_time" example:"09:30"`
	Recurrence *string      `json:"recurrence" enums:"none,daily,weekly" example:"weekly"`
}

func (req ReminderRequest) input() models.ReminderInput {
	in := models.ReminderInput{
		PetID:   req.PetID,
		Notes:   req.Notes,
		DueDate: req.DueDate,
		DueTime: req.DueTime,
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Recurrence != nil {
		in.Recurrence = *req.Recurrence
	}
	return in
}

func (req ReminderRequest) patch() models.ReminderPatch {
	return models.ReminderPatch{
		Title:      req.Title,
		Notes:      req.Notes,
		DueDate:    req.DueDate,
		DueTime:    req.DueTime,
		Recurrence: req.Recurrence,
	}
}

// NewCreateReminderHandler returns an HTTP handler that adds a reminder to one of the caller's pets.
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderRequest body handlers.ReminderRequest true "Reminder"
// @Success 201 {object} models.Reminder
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /reminders/ [post]
// @Security BearerAuth
func NewCreateReminderHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req ReminderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rem, err := svc.Create(r.Context(), user, req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rem)
	}
}

// NewListRemindersHandler returns all of the caller's reminders, soonest first.
// @Summary List all reminders
// @Tags reminders
// @Produce json
// @Success 200 {array} models.Reminder
// @Router /reminders/all [get]
// @Security BearerAuth
func NewListRemindersHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		rems, err := svc.ListAll(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rems)
	}
}

// NewListPetRemindersHandler returns the reminders of one pet, soonest first.
// @Summary List a pet's reminders
// @Tags reminders
// @Produce json
// @Param pet_id path string true "Pet ID"
// @Success 200 {array} models.Reminder
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /reminders/pet/{pet_id} [get]
// @Security BearerAuth
func NewListPetRemindersHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		rems, err := svc.ListByPet(r.Context(), user, chi.URLParam(r, "pet_id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rems)
	}
}

// NewGetReminderHandler returns a single reminder.
// @Summary Get a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} models.Reminder
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reminders/{id} [get]
// @Security BearerAuth
func NewGetReminderHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		rem, err := svc.Get(r.Context(), user, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// NewUpdateReminderHandler applies a partial update to a reminder.
// @Summary Update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param reminderRequest body handlers.ReminderRequest true "Fields to change"
// @Success 200 {object} models.Reminder
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reminders/{id} [put]
// @Security BearerAuth
func NewUpdateReminderHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req ReminderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		rem, err := svc.Update(r.Context(), user, chi.URLParam(r, "id"), req.patch())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// NewDeleteReminderHandler deletes a reminder.
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reminders/{id} [delete]
// @Security BearerAuth
func NewDeleteReminderHandler(svc ReminderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Reminder deleted successfully"})
	}
}
