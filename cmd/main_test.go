package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/config"
	"github.com/sbilibin2017/petpal-api/internal/handlers"
	"github.com/sbilibin2017/petpal-api/internal/middlewares"
	"github.com/sbilibin2017/petpal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default", args: []string{"cmd"}, expected: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, expected: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.expected, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

type authMocks struct {
	*handlers.MockSignupper
	*handlers.MockLoginer
	*middlewares.MockAuthenticator
}

type testRouter struct {
	handler     http.Handler
	tokens      *middlewares.MockTokener
	auth        *middlewares.MockAuthenticator
	pets        *handlers.MockPetManager
	records     *handlers.MockHealthRecordManager
	reminders   *handlers.MockReminderManager
	vets        *handlers.MockVetFinder
	attachments *handlers.MockAttachmentStorage
	sql         sqlmock.Sqlmock
}

func newTestRouter(t *testing.T, withUploads bool) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tr := &testRouter{
		tokens:    middlewares.NewMockTokener(ctrl),
		auth:      middlewares.NewMockAuthenticator(ctrl),
		pets:      handlers.NewMockPetManager(ctrl),
		records:   handlers.NewMockHealthRecordManager(ctrl),
		reminders: handlers.NewMockReminderManager(ctrl),
		vets:      handlers.NewMockVetFinder(ctrl),
		sql:       mock,
	}

	api := routes{
		auth: authMocks{
			MockSignupper:     handlers.NewMockSignupper(ctrl),
			MockLoginer:       handlers.NewMockLoginer(ctrl),
			MockAuthenticator: tr.auth,
		},
		tokens:      tr.tokens,
		pets:        tr.pets,
		records:     tr.records,
		reminders:   tr.reminders,
		vets:        tr.vets,
		db:          sqlx.NewDb(db, "sqlmock"),
		corsOrigins: []string{"http://localhost:8100"},
		swaggerURL:  "http://localhost:8080/swagger/doc.json",
	}
	if withUploads {
		tr.attachments = handlers.NewMockAttachmentStorage(ctrl)
		api.attachments = tr.attachments
	}

	tr.handler = newRouter(api)
	return tr
}

func (tr *testRouter) login(user *models.User) {
	tr.tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
	tr.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(user, nil)
}

func (tr *testRouter) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	tr := newTestRouter(t, false)

	rr := tr.do(http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_ProtectedWithoutToken(t *testing.T) {
	tr := newTestRouter(t, false)
	tr.tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))

	rr := tr.do(http.MethodGet, "/api/pets/")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

func TestRouter_PublicVetsSkipAuth(t *testing.T) {
	tr := newTestRouter(t, false)
	tr.vets.EXPECT().Nearby(gomock.Any(), 1.5, 2.5, 5000).Return([]models.NearbyVet{}, nil)

	rr := tr.do(http.MethodGet, "/api/vets/nearby?lat=1.5&lng=2.5")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_RecordsServedUnderBothPrefixes(t *testing.T) {
	user := &models.User{ID: uuid.New()}

	for _, prefix := range []string{"/api/records", "/api/health"} {
		t.Run(prefix, func(t *testing.T) {
			tr := newTestRouter(t, false)
			tr.login(user)
			tr.records.EXPECT().ListAll(gomock.Any(), user).Return([]models.HealthRecord{}, nil)

			rr := tr.do(http.MethodGet, prefix+"/all")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `[]`, rr.Body.String())
		})
	}
}

func TestRouter_PetDeleteRunsInTransaction(t *testing.T) {
	user := &models.User{ID: uuid.New()}
	petID := uuid.NewString()

	tr := newTestRouter(t, false)
	tr.login(user)
	tr.sql.ExpectBegin()
	tr.sql.ExpectCommit()
	tr.pets.EXPECT().Delete(gomock.Any(), user, petID).DoAndReturn(func(ctx context.Context, _ *models.User, _ string) error {
		assert.NotNil(t, middlewares.GetTxFromContext(ctx))
		return nil
	})

	rr := tr.do(http.MethodDelete, "/api/pets/"+petID)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, tr.sql.ExpectationsWereMet())
}

func TestRouter_UploadsOnlyWhenConfigured(t *testing.T) {
	user := &models.User{ID: uuid.New()}

	t.Run("disabled", func(t *testing.T) {
		tr := newTestRouter(t, false)

		rr := tr.do(http.MethodGet, "/api/uploads/"+user.ID.String()+"/a.pdf")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		tr := newTestRouter(t, true)
		tr.login(user)
		tr.attachments.EXPECT().DownloadURL(gomock.Any(), user.ID, user.ID.String()+"/a.pdf").Return("http://minio/a.pdf", nil)

		rr := tr.do(http.MethodGet, "/api/uploads/"+user.ID.String()+"/a.pdf")

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	tr := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/pets/", nil)
	req.Header.Set("Origin", "http://localhost:8100")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	tr.handler.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:8100", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StartsAndStopsAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{
		AppHost:            "127.0.0.1",
		AppPort:            "0",
		LogLevel:           "error",
		DatabaseURL:        fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port()),
		PGMaxOpenConns:     4,
		PGMaxIdleConns:     2,
		JWTSecretKey:       "secret",
		JWTAlgorithm:       "HS256",
		JWTExp:             time.Hour,
		BcryptCost:         4,
		PlacesAPIKey:       "key",
		PlacesBaseURL:      "http://127.0.0.1:1",
		PlacesTimeout:      time.Second,
		CacheBackend:       config.CacheBackendPostgres,
		CacheSweepInterval: time.Minute,
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- run(runCtx, cfg) }()

	time.Sleep(3 * time.Second)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(20 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
}
