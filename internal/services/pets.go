package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=pets.go -destination=mock_pets.go -package=services

const entityPet = "pet"

// PetRepository persists pets.
type PetRepository interface {
	Save(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PetService manages pets of the authenticated user.
type PetService struct {
	repo   PetRepository
	events *EventPublisher
}

// NewPetService creates a new PetService.
func NewPetService(repo PetRepository, events *EventPublisher) *PetService {
	return &PetService{repo: repo, events: events}
}

// Create adds a pet owned by user.
func (s *PetService) Create(ctx context.Context, user *models.User, in models.PetInput) (*models.Pet, error) {
	name, err := requireText("name", in.Name, 100)
	if err != nil {
		return nil, err
	}
	species, err := requireText("species", in.Species, 50)
	if err != nil {
		return nil, err
	}
	if err := validatePetOptional(in.Breed, in.Age, in.Weight); err != nil {
		return nil, err
	}

	pet := &models.Pet{
		ID:           uuid.New(),
		OwnerID:      user.ID,
		Name:         name,
		Species:      species,
		Breed:        in.Breed,
		DOB:          in.DOB,
		Weight:       in.Weight,
		PhotoURL:     in.PhotoURL,
		Age:          in.Age,
		About:        in.About,
		LastVetVisit: in.LastVetVisit,
		LastVaxDate:  in.LastVaxDate,
		Vaccinated:   in.Vaccinated,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, pet); err != nil {
		logger.Log.Errorw("failed to save pet", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("save pet: %w", err)
	}

	s.events.Publish(ctx, models.EventPetCreated, user.ID, pet.ID, pet.ID)
	return pet, nil
}

// List returns the pets owned by user.
func (s *PetService) List(ctx context.Context, user *models.User) ([]models.Pet, error) {
	pets, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list pets", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

// Get returns a pet owned by user.
func (s *PetService) Get(ctx context.Context, user *models.User, id string) (*models.Pet, error) {
	return authorize(ctx, user, entityPet, id, s.repo.GetByID)
}

// Update applies a partial update to a pet owned by user.
func (s *PetService) Update(ctx context.Context, user *models.User, id string, patch models.PetPatch) (*models.Pet, error) {
	pet, err := authorize(ctx, user, entityPet, id, s.repo.GetByID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name, err := requireText("name", *patch.Name, 100)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if patch.Species != nil {
		species, err := requireText("species", *patch.Species, 50)
		if err != nil {
			return nil, err
		}
		patch.Species = &species
	}
	if err := validatePetOptional(patch.Breed, patch.Age, patch.Weight); err != nil {
		return nil, err
	}

	if !patch.Apply(pet) {
		return pet, nil
	}

	if err := s.repo.Update(ctx, pet); err != nil {
		logger.Log.Errorw("failed to update pet", "petID", pet.ID, "error", err)
		return nil, fmt.Errorf("update pet: %w", err)
	}

	s.events.Publish(ctx, models.EventPetUpdated, user.ID, pet.ID, pet.ID)
	return pet, nil
}

// Delete removes a pet owned by user together with its health records and reminders.
func (s *PetService) Delete(ctx context.Context, user *models.User, id string) error {
	pet, err := authorize(ctx, user, entityPet, id, s.repo.GetByID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, pet.ID); err != nil {
		logger.Log.Errorw("failed to delete pet", "petID", pet.ID, "error", err)
		return fmt.Errorf("delete pet: %w", err)
	}

	s.events.Publish(ctx, models.EventPetDeleted, user.ID, pet.ID, pet.ID)
	return nil
}

func validatePetOptional(breed, age *string, weight *float64) error {
	if err := optionalText("breed", breed, 50); err != nil {
		return err
	}
	if err := optionalText("age", age, 50); err != nil {
		return err
	}
	if weight != nil && *weight < 0 {
		return invalidField("weight", "must not be negative")
	}
	return nil
}
