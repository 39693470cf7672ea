package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/sbilibin2017/petpal-api/internal/services"
)

//go:generate mockgen -source=vets.go -destination=mock_vets.go -package=handlers

// VetFinder defines the interface that the vet lookup service must implement.
type VetFinder interface {
	Nearby(ctx context.Context, lat, lng float64, radius int) ([]models.NearbyVet, error)
	Details(ctx context.Context, placeID string) (*models.VetDetails, error)
}

// NewNearbyVetsHandler returns an HTTP handler searching for veterinary clinics around a point.
// @Summary Nearby vets
// @Description Results are cached for one hour per location and radius.
// @Tags vets
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Search radius in metres (1..50000)" default(5000)
// @Success 200 {array} models.NearbyVet
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Error from Google Places API"
// @Router /vets/nearby [get]
func NewNearbyVetsHandler(svc VetFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		lat, err := parseFloatParam(q.Get("lat"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "lat: "+err.Error())
			return
		}
		lng, err := parseFloatParam(q.Get("lng"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "lng: "+err.Error())
			return
		}

		radius := services.DefaultSearchRadius
		if raw := q.Get("radius"); raw != "" {
			if radius, err = strconv.Atoi(raw); err != nil {
				writeError(w, http.StatusBadRequest, "radius: must be an integer")
				return
			}
		}

		vets, err := svc.Nearby(r.Context(), lat, lng, radius)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, vets)
	}
}

// NewVetDetailsHandler returns an HTTP handler for the details of one clinic.
// @Summary Vet details
// @Tags vets
// @Produce json
// @Param place_id query string true "Places id"
// @Success 200 {object} models.VetDetails
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /vets/details [get]
func NewVetDetailsHandler(svc VetFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := svc.Details(r.Context(), r.URL.Query().Get("place_id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}

type paramError string

func (e paramError) Error() string { return string(e) }

func parseFloatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, paramError("is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, paramError("must be a number")
	}
	return v, nil
}
