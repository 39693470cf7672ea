package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_Create(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}
	pet := &models.Pet{ID: uuid.New(), OwnerID: user.ID}
	due := models.NewDate(2024, time.June, 1)

	tests := []struct {
		name           string
		input          models.ReminderInput
		wantErr        error
		wantTime       *string
		wantRecurrence string
	}{
		{
			name:           "defaults",
			input:          models.ReminderInput{Title: "Flea meds", DueDate: &due},
			wantRecurrence: models.RecurrenceNone,
		},
		{
			name:           "time normalized",
			input:          models.ReminderInput{Title: "Walk", DueDate: &due, DueTime: ptr("07:30"), Recurrence: "Daily"},
			wantTime:       ptr("07:30:00"),
			wantRecurrence: models.RecurrenceDaily,
		},
		{
			name:    "bad recurrence",
			input:   models.ReminderInput{Title: "Walk", DueDate: &due, Recurrence: "monthly"},
			wantErr: ErrValidation,
		},
		{
			name:    "bad time",
			input:   models.ReminderInput{Title: "Walk", DueDate: &due, DueTime: ptr("25:00")},
			wantErr: ErrValidation,
		},
		{
			name:    "missing due date",
			input:   models.ReminderInput{Title: "Walk"},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pets := NewMockPetRepository(ctrl)
			repo := NewMockReminderRepository(ctrl)
			pets.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil)
			if tt.wantErr == nil {
				repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			}

			in := tt.input
			in.PetID = pet.ID.String()
			svc := NewReminderService(repo, pets, nil)
			got, err := svc.Create(ctx, user, in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, got.DueTime)
			assert.Equal(t, tt.wantRecurrence, got.Recurrence)
			assert.Equal(t, pet.ID, got.PetID)
		})
	}
}

func TestReminderService_Update(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rem := &models.Reminder{ID: uuid.New(), OwnerID: user.ID, Title: "Walk", DueTime: ptr("07:00:00"), Recurrence: models.RecurrenceNone}
	repo := NewMockReminderRepository(ctrl)
	repo.EXPECT().GetByID(ctx, rem.ID).Return(rem, nil)
	repo.EXPECT().Update(ctx, rem).Return(nil)

	svc := NewReminderService(repo, NewMockPetRepository(ctrl), nil)
	got, err := svc.Update(ctx, user, rem.ID.String(), models.ReminderPatch{
		DueTime:    ptr(""),
		Recurrence: ptr("weekly"),
	})

	require.NoError(t, err)
	assert.Nil(t, got.DueTime)
	assert.Equal(t, models.RecurrenceWeekly, got.Recurrence)
	assert.Equal(t, "Walk", got.Title)
}

func TestReminderService_ListByForeignPet(t *testing.T) {
	ctx := context.Background()
	pet := &models.Pet{ID: uuid.New(), OwnerID: uuid.New()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pets := NewMockPetRepository(ctrl)
	pets.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil)

	svc := NewReminderService(NewMockReminderRepository(ctrl), pets, nil)
	_, err := svc.ListByPet(ctx, &models.User{ID: uuid.New()}, pet.ID.String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReminderService_Delete(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}
	rem := &models.Reminder{ID: uuid.New(), OwnerID: user.ID}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockReminderRepository(ctrl)
	repo.EXPECT().GetByID(ctx, rem.ID).Return(rem, nil)
	repo.EXPECT().Delete(ctx, rem.ID).Return(nil)

	svc := NewReminderService(repo, NewMockPetRepository(ctrl), nil)
	assert.NoError(t, svc.Delete(ctx, user, rem.ID.String()))
}
