package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyKey(t *testing.T) {
	assert.Equal(t, "nearby:51.5074:-0.1278:5000", NearbyKey(51.50741234, -0.12779, 5000))
	assert.Equal(t, "details:abc", DetailsKey("abc"))
}

func TestVetService_NearbyServedFromCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rating := 4.6
	vets := []models.NearbyVet{{
		PlaceID:  "p1",
		Name:     "Paws Clinic",
		Address:  "1 High St",
		Location: &models.Location{Lat: 51.5, Lng: -0.12},
		Rating:   &rating,
	}}

	places := NewMockPlacesFetcher(ctrl)
	places.EXPECT().Nearby(gomock.Any(), 51.5074, -0.1278, 5000).Return(vets, nil).Times(1)

	svc := NewVetService(places, NewLookupCache(newMemoryStore()))

	first, err := svc.Nearby(ctx, 51.5074, -0.1278, 5000)
	require.NoError(t, err)
	second, err := svc.Nearby(ctx, 51.5074, -0.1278, 5000)
	require.NoError(t, err)

	assert.Equal(t, vets, first)
	assert.Equal(t, first, second)
}

func TestVetService_NearbyValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewVetService(NewMockPlacesFetcher(ctrl), NewLookupCache(newMemoryStore()))

	tests := []struct {
		name     string
		lat, lng float64
		radius   int
	}{
		{"latitude too high", 91, 0, 5000},
		{"longitude too low", 0, -181, 5000},
		{"zero radius", 0, 0, 0},
		{"radius too large", 0, 0, MaxSearchRadius + 1},
		{"latitude not a number", math.NaN(), 0, 5000},
		{"longitude not a number", 0, math.NaN(), 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Nearby(context.Background(), tt.lat, tt.lng, tt.radius)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestVetService_NearbyEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := NewMockPlacesFetcher(ctrl)
	places.EXPECT().Nearby(gomock.Any(), 0.0, 0.0, 100).Return(nil, nil)

	svc := NewVetService(places, NewLookupCache(newMemoryStore()))
	got, err := svc.Nearby(context.Background(), 0, 0, 100)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVetService_Details(t *testing.T) {
	ctx := context.Background()

	t.Run("cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		details := &models.VetDetails{PlaceID: "p1", Name: "Paws Clinic", OpeningHours: []string{"Monday: 9AM-5PM"}}
		places := NewMockPlacesFetcher(ctrl)
		places.EXPECT().Details(gomock.Any(), "p1").Return(details, nil).Times(1)

		svc := NewVetService(places, NewLookupCache(newMemoryStore()))
		for i := 0; i < 2; i++ {
			got, err := svc.Details(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, "Paws Clinic", got.Name)
			assert.Equal(t, []string{"Monday: 9AM-5PM"}, got.OpeningHours)
		}
	})

	t.Run("missing place id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewVetService(NewMockPlacesFetcher(ctrl), NewLookupCache(newMemoryStore()))
		_, err := svc.Details(ctx, " ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		places := NewMockPlacesFetcher(ctrl)
		places.EXPECT().Details(gomock.Any(), "p1").Return(nil, &UpstreamError{StatusCode: 502, Err: errors.New("bad gateway")})

		svc := NewVetService(places, NewLookupCache(newMemoryStore()))
		_, err := svc.Details(ctx, "p1")

		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, 502, upstream.StatusCode)
	})
}
