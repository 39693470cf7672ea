package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/services"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Pet not found
	Error string `json:"error" example:"Pet not found"`
}

// MessageResponse confirms a deletion
// swagger:model MessageResponse
type MessageResponse struct {
	// Always true
	Success bool `json:"success" example:"true"`
	// Human readable confirmation
	Message string `json:"message" example:"Pet deleted successfully"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		upstreamErr   *services.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, services.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, capitalize(notFoundErr.Error()))
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.As(err, &upstreamErr):
		logger.Log.Warnw("upstream failure", "status", upstreamErr.StatusCode, "err", upstreamErr.Err)
		status := upstreamErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		writeError(w, status, "Error from Google Places API")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
