package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/sbilibin2017/petpal-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreatePetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dob := models.NewDate(2021, time.April, 1)
	pet := &models.Pet{ID: uuid.New(), OwnerID: testUser.ID, Name: "Rex", Species: "dog", DOB: &dob}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockPetManager)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"name":"Rex","species":"dog","dob":"2021-04-01","vaccinated":true}`,
			mockSetup: func(m *MockPetManager) {
				m.EXPECT().
					Create(gomock.Any(), testUser, models.PetInput{Name: "Rex", Species: "dog", DOB: &dob, Vaccinated: true}).
					Return(pet, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing name",
			body: `{"species":"dog"}`,
			mockSetup: func(m *MockPetManager) {
				m.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).
					Return(nil, &services.ValidationError{Field: "name", Message: "is required"})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed date",
			body:         `{"name":"Rex","species":"dog","dob":"01/04/2021"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPetManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rr := httptest.NewRecorder()
			NewCreatePetHandler(m)(rr, newRequest(t, http.MethodPost, "/api/pets/", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				got := decodeBody[models.Pet](t, rr)
				assert.Equal(t, pet.ID, got.ID)
				assert.Equal(t, "2021-04-01", got.DOB.String())
			}
		})
	}
}

func TestListPetsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPetManager(ctrl)
	m.EXPECT().List(gomock.Any(), testUser).Return([]models.Pet{}, nil)

	rr := httptest.NewRecorder()
	NewListPetsHandler(m)(rr, newRequest(t, http.MethodGet, "/api/pets/", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetPetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	petID := uuid.New()

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockPetManager)
		expectedCode  int
		expectedError string
	}{
		{
			name: "own pet",
			id:   petID.String(),
			mockSetup: func(m *MockPetManager) {
				m.EXPECT().Get(gomock.Any(), testUser, petID.String()).
					Return(&models.Pet{ID: petID, OwnerID: testUser.ID, Name: "Rex"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "someone else's pet",
			id:   petID.String(),
			mockSetup: func(m *MockPetManager) {
				m.EXPECT().Get(gomock.Any(), testUser, petID.String()).
					Return(nil, &services.NotFoundError{Entity: "pet"})
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Pet not found",
		},
		{
			name: "malformed id",
			id:   "not-a-uuid",
			mockSetup: func(m *MockPetManager) {
				m.EXPECT().Get(gomock.Any(), testUser, "not-a-uuid").
					Return(nil, &services.ValidationError{Message: "invalid pet id"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid pet id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPetManager(ctrl)
			tt.mockSetup(m)

			rr := httptest.NewRecorder()
			NewGetPetHandler(m)(rr, newRequest(t, http.MethodGet, "/api/pets/"+tt.id, nil, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[ErrorResponse](t, rr).Error)
			}
		})
	}
}

func TestUpdatePetHandler_PartialPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	petID := uuid.New().String()

	m := NewMockPetManager(ctrl)
	m.EXPECT().
		Update(gomock.Any(), testUser, petID, models.PetPatch{Weight: ptr(12.5)}).
		Return(&models.Pet{Name: "Rex", Weight: ptr(12.5)}, nil)

	rr := httptest.NewRecorder()
	NewUpdatePetHandler(m)(rr, newRequest(t, http.MethodPut, "/api/pets/"+petID, `{"weight":12.5}`, map[string]string{"id": petID}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Rex", decodeBody[models.Pet](t, rr).Name)
}

func TestDeletePetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	petID := uuid.New().String()

	m := NewMockPetManager(ctrl)
	m.EXPECT().Delete(gomock.Any(), testUser, petID).Return(nil)

	rr := httptest.NewRecorder()
	NewDeletePetHandler(m)(rr, newRequest(t, http.MethodDelete, "/api/pets/"+petID, nil, map[string]string{"id": petID}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, MessageResponse{Success: true, Message: "Pet deleted successfully"}, decodeBody[MessageResponse](t, rr))
}

func TestPetHandlers_RequireUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewListPetsHandler(NewMockPetManager(ctrl))(rr, httptest.NewRequest(http.MethodGet, "/api/pets/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
