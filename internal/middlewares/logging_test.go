package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	require.NoError(t, logger.Initialize("debug"))

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	LoggingMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_ReusesIncomingID(t *testing.T) {
	incoming := uuid.NewString()

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", incoming)
	rr := httptest.NewRecorder()

	LoggingMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, incoming, seenID)
	assert.Equal(t, incoming, rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_ReplacesMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "<script>")
	rr := httptest.NewRecorder()

	LoggingMiddleware(http.NotFoundHandler()).ServeHTTP(rr, req)

	_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rec.status())

	_, _ = rec.Write([]byte("abc"))
	rec.WriteHeader(http.StatusInternalServerError)
	_, _ = rec.Write([]byte("de"))

	assert.Equal(t, 5, rec.bytes)
	assert.Equal(t, http.StatusOK, rec.status())
}
