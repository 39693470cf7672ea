package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=health_records.go -destination=mock_health_records.go -package=services

const entityHealthRecord = "health record"

// HealthRecordRepository persists health records.
type HealthRecordRepository interface {
	Save(ctx context.Context, record *models.HealthRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HealthRecord, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.HealthRecord, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]models.HealthRecord, error)
	Update(ctx context.Context, record *models.HealthRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HealthRecordService manages the medical history of the user's pets.
type HealthRecordService struct {
	repo   HealthRecordRepository
	pets   PetRepository
	events *EventPublisher
}

// NewHealthRecordService creates a new HealthRecordService.
func NewHealthRecordService(repo HealthRecordRepository, pets PetRepository, events *EventPublisher) *HealthRecordService {
	return &HealthRecordService{repo: repo, pets: pets, events: events}
}

// Create adds a record to a pet owned by user.
func (s *HealthRecordService) Create(ctx context.Context, user *models.User, in models.HealthRecordInput) (*models.HealthRecord, error) {
	pet, err := authorize(ctx, user, entityPet, in.PetID, s.pets.GetByID)
	if err != nil {
		return nil, err
	}

	title, err := requireText("title", in.Title, 150)
	if err != nil {
		return nil, err
	}
	if in.Date == nil {
		return nil, invalidField("date", "is required")
	}

	record := &models.HealthRecord{
		ID:            uuid.New(),
		PetID:         pet.ID,
		OwnerID:       user.ID,
		Title:         title,
		Date:          *in.Date,
		Notes:         in.Notes,
		Tags:          cleanTags(in.Tags),
		AttachmentURL: in.AttachmentURL,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		logger.Log.Errorw("failed to save health record", "petID", pet.ID, "error", err)
		return nil, fmt.Errorf("save health record: %w", err)
	}

	s.events.Publish(ctx, models.EventHealthRecordCreated, user.ID, record.ID, pet.ID)
	return record, nil
}

// ListAll returns the records of every pet owned by user, newest first.
func (s *HealthRecordService) ListAll(ctx context.Context, user *models.User) ([]models.HealthRecord, error) {
	records, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list health records", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return records, nil
}

// ListByPet returns the records of one pet owned by user, newest first.
func (s *HealthRecordService) ListByPet(ctx context.Context, user *models.User, petID string) ([]models.HealthRecord, error) {
	pet, err := authorize(ctx, user, entityPet, petID, s.pets.GetByID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListByPet(ctx, pet.ID)
	if err != nil {
		logger.Log.Errorw("failed to list health records", "petID", pet.ID, "error", err)
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return records, nil
}

// Get returns a record owned by user.
func (s *HealthRecordService) Get(ctx context.Context, user *models.User, id string) (*models.HealthRecord, error) {
	return authorize(ctx, user, entityHealthRecord, id, s.repo.GetByID)
}

// Update applies a partial update to a record owned by user.
func (s *HealthRecordService) Update(ctx context.Context, user *models.User, id string, patch models.HealthRecordPatch) (*models.HealthRecord, error) {
	record, err := authorize(ctx, user, entityHealthRecord, id, s.repo.GetByID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title, err := requireText("title", *patch.Title, 150)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if patch.Tags != nil {
		tags := cleanTags(*patch.Tags)
		patch.Tags = &tags
	}

	if !patch.Apply(record) {
		return record, nil
	}

	if err := s.repo.Update(ctx, record); err != nil {
		logger.Log.Errorw("failed to update health record", "recordID", record.ID, "error", err)
		return nil, fmt.Errorf("update health record: %w", err)
	}

	s.events.Publish(ctx, models.EventHealthRecordUpdated, user.ID, record.ID, record.PetID)
	return record, nil
}

// Delete removes a record owned by user.
func (s *HealthRecordService) Delete(ctx context.Context, user *models.User, id string) error {
	record, err := authorize(ctx, user, entityHealthRecord, id, s.repo.GetByID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, record.ID); err != nil {
		logger.Log.Errorw("failed to delete health record", "recordID", record.ID, "error", err)
		return fmt.Errorf("delete health record: %w", err)
	}

	s.events.Publish(ctx, models.EventHealthRecordDeleted, user.ID, record.ID, record.PetID)
	return nil
}
