package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=vets.go -destination=mock_vets.go -package=services

// Search radius bounds, in meters.
const (
	DefaultSearchRadius = 5000
	MaxSearchRadius     = 50000
)

// PlacesFetcher queries the external places provider.
type PlacesFetcher interface {
	Nearby(ctx context.Context, lat, lng float64, radius int) ([]models.NearbyVet, error)
	Details(ctx context.Context, placeID string) (*models.VetDetails, error)
}

// VetService looks up veterinary clinics through the lookup cache.
type VetService struct {
	places PlacesFetcher
	cache  *LookupCache
}

// NewVetService creates a new VetService.
func NewVetService(places PlacesFetcher, cache *LookupCache) *VetService {
	return &VetService{places: places, cache: cache}
}

// NearbyKey is the cache key of a nearby search.
func NearbyKey(lat, lng float64, radius int) string {
	return fmt.Sprintf("nearby:%.4f:%.4f:%d", lat, lng, radius)
}

// DetailsKey is the cache key of a place details lookup.
func DetailsKey(placeID string) string {
	return "details:" + placeID
}

// Nearby returns veterinary clinics within radius meters of a point.
func (s *VetService) Nearby(ctx context.Context, lat, lng float64, radius int) ([]models.NearbyVet, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, invalidField("lat", "must be between -90 and 90")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return nil, invalidField("lng", "must be between -180 and 180")
	}
	if radius < 1 || radius > MaxSearchRadius {
		return nil, invalidField("radius", fmt.Sprintf("must be between 1 and %d", MaxSearchRadius))
	}

	payload, err := s.cache.GetOrFetch(ctx, NearbyKey(lat, lng, radius), fetchJSON(func(ctx context.Context) ([]models.NearbyVet, error) {
		return s.places.Nearby(ctx, lat, lng, radius)
	}))
	if err != nil {
		return nil, err
	}

	vets := []models.NearbyVet{}
	if err := json.Unmarshal(payload, &vets); err != nil {
		return nil, fmt.Errorf("decode cached nearby payload: %w", err)
	}
	if vets == nil {
		vets = []models.NearbyVet{}
	}
	return vets, nil
}

// Details returns the details of one place.
func (s *VetService) Details(ctx context.Context, placeID string) (*models.VetDetails, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, invalidField("place_id", "is required")
	}

	payload, err := s.cache.GetOrFetch(ctx, DetailsKey(placeID), fetchJSON(func(ctx context.Context) (*models.VetDetails, error) {
		return s.places.Details(ctx, placeID)
	}))
	if err != nil {
		return nil, err
	}

	var details models.VetDetails
	if err := json.Unmarshal(payload, &details); err != nil {
		return nil, fmt.Errorf("decode cached details payload: %w", err)
	}
	return &details, nil
}
