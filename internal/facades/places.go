package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/sbilibin2017/petpal-api/internal/services"
)

const (
	DefaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	DefaultPlacesTimeout = 10 * time.Second

	placeTypeVeterinary = "veterinary_care"
	detailsFields       = "place_id,name,formatted_address,formatted_phone_number,geometry/location,rating,reviews,opening_hours/weekday_text,website"
	maxBodySize         = 4 << 20
)

// Places API status values.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
	statusInvalid     = "INVALID_REQUEST"
)

// PlacesHTTPFacade queries the Google Places web service for veterinary clinics.
type PlacesHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewPlacesHTTPFacade creates a facade. The client is shared by all requests.
func NewPlacesHTTPFacade(client *http.Client, baseURL, apiKey string) *PlacesHTTPFacade {
	if client == nil {
		client = &http.Client{Timeout: DefaultPlacesTimeout}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultPlacesBaseURL
	}
	return &PlacesHTTPFacade{client: client, baseURL: baseURL, apiKey: apiKey}
}

type placeGeometry struct {
	Location *models.Location `json:"location"`
}

type nearbyResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string         `json:"place_id"`
		Name             string         `json:"name"`
		Vicinity         string         `json:"vicinity"`
		Geometry         *placeGeometry `json:"geometry"`
		Rating           *float64       `json:"rating"`
		UserRatingsTotal *int           `json:"user_ratings_total"`
		OpeningHours     *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		PlaceID              string          `json:"place_id"`
		Name                 string          `json:"name"`
		FormattedAddress     string          `json:"formatted_address"`
		FormattedPhoneNumber string          `json:"formatted_phone_number"`
		Geometry             *placeGeometry  `json:"geometry"`
		Rating               *float64        `json:"rating"`
		Reviews              json.RawMessage `json:"reviews"`
		OpeningHours         *struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Website string `json:"website"`
	} `json:"result"`
}

// Nearby lists veterinary clinics within radius meters of lat,lng.
func (f *PlacesHTTPFacade) Nearby(ctx context.Context, lat, lng float64, radius int) ([]models.NearbyVet, error) {
	params := url.Values{}
	params.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", placeTypeVeterinary)

	var resp nearbyResponse
	if err := f.get(ctx, "/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		logger.Log.Errorw("places nearby search rejected", "status", resp.Status, "error", err)
		return nil, err
	}

	vets := make([]models.NearbyVet, 0, len(resp.Results))
	for _, p := range resp.Results {
		vet := models.NearbyVet{
			PlaceID:          p.PlaceID,
			Name:             p.Name,
			Address:          p.Vicinity,
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
		}
		if p.Geometry != nil {
			vet.Location = p.Geometry.Location
		}
		if p.OpeningHours != nil {
			vet.IsOpenNow = p.OpeningHours.OpenNow
		}
		vets = append(vets, vet)
	}
	return vets, nil
}

// Details returns the curated details of one place.
func (f *PlacesHTTPFacade) Details(ctx context.Context, placeID string) (*models.VetDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var resp detailsResponse
	if err := f.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		logger.Log.Errorw("places details rejected", "place_id", placeID, "status", resp.Status, "error", err)
		return nil, err
	}

	r := resp.Result
	details := &models.VetDetails{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Phone:   r.FormattedPhoneNumber,
		Rating:  r.Rating,
		Reviews: r.Reviews,
		Website: r.Website,
	}
	if r.Geometry != nil {
		details.Location = r.Geometry.Location
	}
	if r.OpeningHours != nil {
		details.OpeningHours = r.OpeningHours.WeekdayText
	}
	return details, nil
}

func (f *PlacesHTTPFacade) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", f.apiKey)
	endpoint := f.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &services.UpstreamError{Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("places request failed", "path", path, "error", err)
		return &services.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	logger.Log.Infow("places request",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"size", len(raw),
	)
	if err != nil {
		return &services.UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &services.UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        errors.New("error from places API"),
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &services.UpstreamError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// checkStatus maps the in-body status of a 200 response.
func checkStatus(status, message string) error {
	switch status {
	case statusOK, statusZeroResults, "":
		return nil
	case statusNotFound:
		return &services.UpstreamError{StatusCode: http.StatusNotFound, Err: fmt.Errorf("places status %s", status)}
	case statusInvalid:
		return &services.UpstreamError{StatusCode: http.StatusBadRequest, Err: fmt.Errorf("places status %s: %s", status, message)}
	default:
		return &services.UpstreamError{StatusCode: http.StatusBadGateway, Err: fmt.Errorf("places status %s: %s", status, message)}
	}
}
