package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/storage"
)

//go:generate mockgen -source=uploads.go -destination=mock_uploads.go -package=handlers

// MaxUploadSize caps the accepted multipart body.
const MaxUploadSize = 10 << 20

// AttachmentStorage defines the interface that the object store must implement.
type AttachmentStorage interface {
	Upload(ctx context.Context, ownerID uuid.UUID, filename, contentType string, r io.Reader, size int64) (string, error)
	DownloadURL(ctx context.Context, ownerID uuid.UUID, key string) (string, error)
}

// UploadResponse describes a stored attachment
// swagger:model UploadResponse
type UploadResponse struct {
	// Object key, also the path under /api/uploads/
	Key string `json:"key" example:"4f8a1c0e-8a4b-4a5e-9d7c-1c2b3d4e5f60/0b7e4c9a-1111-4d2e-a3b4-5c6d7e8f9a0b.pdf"`
	// Stable download location to store in photo_url or attachment_url
	URL string `json:"url" example:"/api/uploads/4f8a1c0e-8a4b-4a5e-9d7c-1c2b3d4e5f60/0b7e4c9a-1111-4d2e-a3b4-5c6d7e8f9a0b.pdf"`
}

// NewUploadHandler returns an HTTP handler storing a multipart file for the caller.
// @Summary Upload an attachment
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Success 201 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /uploads [post]
// @Security BearerAuth
func NewUploadHandler(store AttachmentStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "file: a multipart file up to 10MB is required")
			return
		}
		defer file.Close()

		key, err := store.Upload(r.Context(), user.ID, header.Filename, header.Header.Get("Content-Type"), file, header.Size)
		if err != nil {
			logger.Log.Errorw("upload failed", "owner", user.ID, "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		writeJSON(w, http.StatusCreated, UploadResponse{Key: key, URL: "/api/uploads/" + key})
	}
}

// NewDownloadHandler returns an HTTP handler redirecting to a short-lived link for one of the caller's files.
// @Summary Download an attachment
// @Tags uploads
// @Param owner path string true "Owner ID"
// @Param file path string true "File name"
// @Success 307 "Redirect to a presigned URL"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /uploads/{owner}/{file} [get]
// @Security BearerAuth
func NewDownloadHandler(store AttachmentStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		key := chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "file")
		url, err := store.DownloadURL(r.Context(), user.ID, key)
		if err != nil {
			if errors.Is(err, storage.ErrForeignObject) {
				writeError(w, http.StatusNotFound, "File not found")
				return
			}
			logger.Log.Errorw("presign failed", "key", key, "err", err)
			writeError(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		http.Redirect(w, r, url, http.StatusTemporaryRedirect)
	}
}
