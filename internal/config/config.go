package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sbilibin2017/petpal-api/internal/jwt"
)

// Lookup cache backends.
const (
	CacheBackendPostgres = "postgres"
	CacheBackendRedis    = "redis"
)

// Config holds every setting of the service.
type Config struct {
	AppHost            string
	AppPort            string
	LogLevel           string
	CORSAllowedOrigins []string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey string
	JWTAlgorithm string
	JWTExp       time.Duration
	BcryptCost   int

	PlacesAPIKey  string
	PlacesBaseURL string
	PlacesTimeout time.Duration

	CacheBackend       string
	CacheSweepInterval time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads the optional .env file at path, then the environment.
// Missing required settings and malformed values are reported together.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
		return defaultValue
	}

	var errs []error
	required := func(key string) string {
		val := getEnv(key, "")
		if val == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
		return val
	}
	getInt := func(key, defaultValue string) int {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}
	getBool := func(key, defaultValue string) bool {
		b, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return b
	}

	cfg := &Config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8100,http://localhost:8101,http://localhost"))

	// PostgreSQL config
	cfg.DatabaseURL = required("DATABASE_URL")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// JWT config
	cfg.JWTSecretKey = required("JWT_SECRET_KEY")
	cfg.JWTAlgorithm = strings.ToUpper(required("JWT_ALGORITHM"))
	if cfg.JWTAlgorithm != "" && !jwt.IsSupportedAlgorithm(cfg.JWTAlgorithm) {
		errs = append(errs, fmt.Errorf("JWT_ALGORITHM: unsupported algorithm %q", cfg.JWTAlgorithm))
	}
	if raw := required("JWT_EXP_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("JWT_EXP_MINUTES: %w", err))
		case minutes <= 0:
			errs = append(errs, errors.New("JWT_EXP_MINUTES must be positive"))
		default:
			cfg.JWTExp = time.Duration(minutes) * time.Minute
		}
	}
	cfg.BcryptCost = getInt("BCRYPT_COST", "10")

	// Places config
	cfg.PlacesAPIKey = required("GOOGLE_PLACES_API_KEY")
	cfg.PlacesBaseURL = getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	cfg.PlacesTimeout = time.Duration(getInt("PLACES_TIMEOUT_SECOND", "10")) * time.Second

	// Lookup cache config
	cfg.CacheBackend = strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendPostgres))
	if cfg.CacheBackend != CacheBackendPostgres && cfg.CacheBackend != CacheBackendRedis {
		errs = append(errs, fmt.Errorf("CACHE_BACKEND: unknown backend %q", cfg.CacheBackend))
	}
	cfg.CacheSweepInterval = time.Duration(getInt("CACHE_SWEEP_INTERVAL_MINUTES", "60")) * time.Minute

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "petpal.events")

	// MinIO config
	cfg.MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	cfg.MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "")
	cfg.MinioSecretKey = getEnv("MINIO_SECRET_KEY", "")
	cfg.MinioBucket = getEnv("MINIO_BUCKET", "petpal-attachments")
	cfg.MinioUseSSL = getBool("MINIO_USE_SSL", "false")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// RedisAddr is the Redis server address.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
