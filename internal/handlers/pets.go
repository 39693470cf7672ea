package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=pets.go -destination=mock_pets.go -package=handlers

// PetManager defines the interface that the pet service must implement.
type PetManager interface {
	Create(ctx context.Context, user *models.User, in models.PetInput) (*models.Pet, error)
	List(ctx context.Context, user *models.User) ([]models.Pet, error)
	Get(ctx context.Context, user *models.User, id string) (*models.Pet, error)
	Update(ctx context.Context, user *models.User, id string, patch models.PetPatch) (*models.Pet, error)
	Delete(ctx context.Context, user *models.User, id string) error
}

// PetRequest is the body of pet create and update requests. On update only
// the supplied fields change.
// swagger:model PetRequest
type PetRequest struct {
	Name         *string      `json:"name" example:"Rex"`
	Species      *string      `json:"species" example:"dog"`
	Breed        *string      `json:"breed" example:"Beagle"`
	DOB          *models.Date `json:"dob" swaggertype:"string" example:"2021-04-01"`
	Weight       *float64     `json:"weight" example:"12.5"`
	PhotoURL     *string      `json:"photo_url"`
	Age          *string      `json:"age" example:"3 years"`
	About        *string      `json:"about"`
	LastVetVisit *models.Date `json:"last_vet_visit" swaggertype:"string" example:"2024-01-15"`
	LastVaxDate  *models.Date `json:"last_vax_date" swaggertype:"string" example:"2023-11-02"`
	Vaccinated   *bool        `json:"vaccinated" example:"true"`
}

func (req PetRequest) input() models.PetInput {
	in := models.PetInput{
		Breed:        req.Breed,
		DOB:          req.DOB,
		Weight:       req.Weight,
		PhotoURL:     req.PhotoURL,
		Age:          req.Age,
		About:        req.About,
		LastVetVisit: req.LastVetVisit,
		LastVaxDate:  req.LastVaxDate,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Species != nil {
		in.Species = *req.Species
	}
	if req.Vaccinated != nil {
		in.Vaccinated = *req.Vaccinated
	}
	return in
}

func (req PetRequest) patch() models.PetPatch {
	return models.PetPatch{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		DOB:          req.DOB,
		Weight:       req.Weight,
		PhotoURL:     req.PhotoURL,
		Age:          req.Age,
		About:        req.About,
		LastVetVisit: req.LastVetVisit,
		LastVaxDate:  req.LastVaxDate,
		Vaccinated:   req.Vaccinated,
	}
}

// NewCreatePetHandler returns an HTTP handler that creates a pet.
// @Summary Create a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param petRequest body handlers.PetRequest true "Pet"
// @Success 201 {object} models.Pet
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /pets/ [post]
// @Security BearerAuth
func NewCreatePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req PetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pet, err := svc.Create(r.Context(), user, req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, pet)
	}
}

// NewListPetsHandler returns an HTTP handler listing the caller's pets, oldest first.
// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {array} models.Pet
// @Failure 401 {object} handlers.ErrorResponse
// @Router /pets/ [get]
// @Security BearerAuth
func NewListPetsHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		pets, err := svc.List(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pets)
	}
}

// NewGetPetHandler returns an HTTP handler for a single pet.
// @Summary Get a pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} models.Pet
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Pet not found"
// @Router /pets/{id} [get]
// @Security BearerAuth
func NewGetPetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		pet, err := svc.Get(r.Context(), user, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pet)
	}
}

// NewUpdatePetHandler returns an HTTP handler applying a partial update to a pet.
// @Summary Update a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param petRequest body handlers.PetRequest true "Fields to change"
// @Success 200 {object} models.Pet
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /pets/{id} [put]
// @Security BearerAuth
func NewUpdatePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req PetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pet, err := svc.Update(r.Context(), user, chi.URLParam(r, "id"), req.patch())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pet)
	}
}

// NewDeletePetHandler returns an HTTP handler deleting a pet with its records and reminders.
// @Summary Delete a pet
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /pets/{id} [delete]
// @Security BearerAuth
func NewDeletePetHandler(svc PetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Pet deleted successfully"})
	}
}
