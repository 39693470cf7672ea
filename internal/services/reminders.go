package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=reminders.go -destination=mock_reminders.go -package=services

const entityReminder = "reminder"

// ReminderRepository persists reminders.
type ReminderRepository interface {
	Save(ctx context.Context, reminder *models.Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Reminder, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]models.Reminder, error)
	Update(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderService manages reminders for the user's pets.
type ReminderService struct {
	repo   ReminderRepository
	pets   PetRepository
	events *EventPublisher
}

// NewReminderService creates a new ReminderService.
func NewReminderService(repo ReminderRepository, pets PetRepository, events *EventPublisher) *ReminderService {
	return &ReminderService{repo: repo, pets: pets, events: events}
}

// Create adds a reminder to a pet owned by user.
func (s *ReminderService) Create(ctx context.Context, user *models.User, in models.ReminderInput) (*models.Reminder, error) {
	pet, err := authorize(ctx, user, entityPet, in.PetID, s.pets.GetByID)
	if err != nil {
		return nil, err
	}

	title, err := requireText("title", in.Title, 150)
	if err != nil {
		return nil, err
	}
	if in.DueDate == nil {
		return nil, invalidField("due_date", "is required")
	}
	dueTime, err := normalizeTimeOfDay(in.DueTime)
	if err != nil {
		return nil, err
	}
	recurrence, err := normalizeRecurrence(in.Recurrence)
	if err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		ID:         uuid.New(),
		PetID:      pet.ID,
		OwnerID:    user.ID,
		Title:      title,
		Notes:      in.Notes,
		DueDate:    *in.DueDate,
		DueTime:    dueTime,
		Recurrence: recurrence,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, reminder); err != nil {
		logger.Log.Errorw("failed to save reminder", "petID", pet.ID, "error", err)
		return nil, fmt.Errorf("save reminder: %w", err)
	}

	s.events.Publish(ctx, models.EventReminderCreated, user.ID, reminder.ID, pet.ID)
	return reminder, nil
}

// ListAll returns the reminders of every pet owned by user, soonest first.
func (s *ReminderService) ListAll(ctx context.Context, user *models.User) ([]models.Reminder, error) {
	reminders, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list reminders", "userID", user.ID, "error", err)
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// ListByPet returns the reminders of one pet owned by user, soonest first.
func (s *ReminderService) ListByPet(ctx context.Context, user *models.User, petID string) ([]models.Reminder, error) {
	pet, err := authorize(ctx, user, entityPet, petID, s.pets.GetByID)
	if err != nil {
		return nil, err
	}

	reminders, err := s.repo.ListByPet(ctx, pet.ID)
	if err != nil {
		logger.Log.Errorw("failed to list reminders", "petID", pet.ID, "error", err)
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// Get returns a reminder owned by user.
func (s *ReminderService) Get(ctx context.Context, user *models.User, id string) (*models.Reminder, error) {
	return authorize(ctx, user, entityReminder, id, s.repo.GetByID)
}

// Update applies a partial update to a reminder owned by user.
func (s *ReminderService) Update(ctx context.Context, user *models.User, id string, patch models.ReminderPatch) (*models.Reminder, error) {
	reminder, err := authorize(ctx, user, entityReminder, id, s.repo.GetByID)
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
	if patch.DueTime != nil {
		dueTime, err := normalizeTimeOfDay(patch.DueTime)
		if err != nil {
			return nil, err
		}
		if dueTime == nil {
			// an explicit empty string clears the time of day
			reminder.DueTime = nil
		}
		patch.DueTime = dueTime
	}
	if patch.Recurrence != nil {
		recurrence, err := normalizeRecurrence(*patch.Recurrence)
		if err != nil {
			return nil, err
		}
		patch.Recurrence = &recurrence
	}

	patch.Apply(reminder)

	if err := s.repo.Update(ctx, reminder); err != nil {
		logger.Log.Errorw("failed to update reminder", "reminderID", reminder.ID, "error", err)
		return nil, fmt.Errorf("update reminder: %w", err)
	}

	s.events.Publish(ctx, models.EventReminderUpdated, user.ID, reminder.ID, reminder.PetID)
	return reminder, nil
}

// Delete removes a reminder owned by user.
func (s *ReminderService) Delete(ctx context.Context, user *models.User, id string) error {
	reminder, err := authorize(ctx, user, entityReminder, id, s.repo.GetByID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reminder.ID); err != nil {
		logger.Log.Errorw("failed to delete reminder", "reminderID", reminder.ID, "error", err)
		return fmt.Errorf("delete reminder: %w", err)
	}

	s.events.Publish(ctx, models.EventReminderDeleted, user.ID, reminder.ID, reminder.PetID)
	return nil
}

func normalizeRecurrence(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return models.RecurrenceNone, nil
	}
	if !models.IsValidRecurrence(value) {
		return "", invalidField("recurrence", "must be one of none, daily, weekly")
	}
	return value, nil
}
