package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/petpal-api/internal/middlewares"
	"github.com/sbilibin2017/petpal-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(middlewares.WithUser(req.Context(), testUser))
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := testUser.ID.String() + "/abc.pdf"

	tests := []struct {
		name         string
		req          func(t *testing.T) *http.Request
		mockSetup    func(m *MockAttachmentStorage)
		expectedCode int
	}{
		{
			name: "stored",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "file", "xray.pdf", []byte("%PDF-1.4"))
			},
			mockSetup: func(m *MockAttachmentStorage) {
				m.EXPECT().Upload(gomock.Any(), testUser.ID, "xray.pdf", "application/octet-stream", gomock.Any(), int64(8)).Return(key, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "wrong field name",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "attachment", "xray.pdf", []byte("%PDF-1.4"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "file", "xray.pdf", []byte("%PDF-1.4"))
			},
			mockSetup: func(m *MockAttachmentStorage) {
				m.EXPECT().Upload(gomock.Any(), testUser.ID, "xray.pdf", gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket gone"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockAttachmentStorage(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rr := httptest.NewRecorder()
			NewUploadHandler(m)(rr, tt.req(t))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, UploadResponse{Key: key, URL: "/api/uploads/" + key}, decodeBody[UploadResponse](t, rr))
			}
		})
	}
}

func TestDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := testUser.ID.String()
	params := map[string]string{"owner": owner, "file": "abc.pdf"}

	t.Run("redirects to presigned link", func(t *testing.T) {
		m := NewMockAttachmentStorage(ctrl)
		m.EXPECT().DownloadURL(gomock.Any(), testUser.ID, owner+"/abc.pdf").Return("https://minio.local/petpal/abc.pdf?sig=1", nil)

		rr := httptest.NewRecorder()
		NewDownloadHandler(m)(rr, newRequest(t, http.MethodGet, "/api/uploads/"+owner+"/abc.pdf", nil, params))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "https://minio.local/petpal/abc.pdf?sig=1", rr.Header().Get("Location"))
	})

	t.Run("foreign key is not found", func(t *testing.T) {
		m := NewMockAttachmentStorage(ctrl)
		m.EXPECT().DownloadURL(gomock.Any(), testUser.ID, gomock.Any()).Return("", storage.ErrForeignObject)

		rr := httptest.NewRecorder()
		NewDownloadHandler(m)(rr, newRequest(t, http.MethodGet, "/api/uploads/x/abc.pdf", nil, params))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
