package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredEnv = map[string]string{
	"DATABASE_URL":          "postgres://u:p@localhost:5432/petpal?sslmode=disable",
	"JWT_SECRET_KEY":        "secret",
	"JWT_ALGORITHM":         "HS256",
	"JWT_EXP_MINUTES":       "30",
	"GOOGLE_PLACES_API_KEY": "places-key",
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, requiredEnv)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.JWTExp)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, CacheBackendPostgres, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.CacheSweepInterval)
	assert.Equal(t, 10*time.Second, cfg.PlacesTimeout)
	assert.Equal(t, []string{"http://localhost:8100", "http://localhost:8101", "http://localhost"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.MinioEndpoint)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_FromFile(t *testing.T) {
	fromFile := []string{"DATABASE_URL", "JWT_ALGORITHM", "JWT_EXP_MINUTES", "GOOGLE_PLACES_API_KEY", "CACHE_BACKEND", "KAFKA_BROKERS"}
	for _, k := range fromFile {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// godotenv does not override variables that are already set
	t.Setenv("JWT_SECRET_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.env")
	content := "DATABASE_URL=postgres://file\nJWT_SECRET_KEY=from-file\nJWT_ALGORITHM=hs512\nJWT_EXP_MINUTES=5\n" +
		"GOOGLE_PLACES_API_KEY=k\nCACHE_BACKEND=redis\nKAFKA_BROKERS=k1:9092, k2:9092\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file", cfg.DatabaseURL)
	assert.Equal(t, "from-env", cfg.JWTSecretKey)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 5*time.Minute, cfg.JWTExp)
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		env     map[string]string
		wantMsg string
	}{
		{name: "missing database url", unset: "DATABASE_URL", wantMsg: "DATABASE_URL is required"},
		{name: "missing secret", unset: "JWT_SECRET_KEY", wantMsg: "JWT_SECRET_KEY is required"},
		{name: "missing places key", unset: "GOOGLE_PLACES_API_KEY", wantMsg: "GOOGLE_PLACES_API_KEY is required"},
		{name: "unknown algorithm", env: map[string]string{"JWT_ALGORITHM": "RS256"}, wantMsg: "unsupported algorithm"},
		{name: "non-positive expiry", env: map[string]string{"JWT_EXP_MINUTES": "0"}, wantMsg: "must be positive"},
		{name: "malformed number", env: map[string]string{"APP_PORT": "8080", "REDIS_PORT": "abc"}, wantMsg: "REDIS_PORT"},
		{name: "unknown cache backend", env: map[string]string{"CACHE_BACKEND": "memcached"}, wantMsg: "CACHE_BACKEND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			for k, v := range requiredEnv {
				if k != tt.unset {
					env[k] = v
				}
			}
			for k, v := range tt.env {
				env[k] = v
			}
			setEnv(t, env)
			if tt.unset != "" {
				t.Setenv(tt.unset, "")
			}

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
