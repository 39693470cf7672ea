package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/petpal-api/docs"
	"github.com/sbilibin2017/petpal-api/internal/config"
	"github.com/sbilibin2017/petpal-api/internal/facades"
	"github.com/sbilibin2017/petpal-api/internal/handlers"
	"github.com/sbilibin2017/petpal-api/internal/hasher"
	"github.com/sbilibin2017/petpal-api/internal/jobs"
	"github.com/sbilibin2017/petpal-api/internal/jwt"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/middlewares"
	"github.com/sbilibin2017/petpal-api/internal/repositories"
	"github.com/sbilibin2017/petpal-api/internal/services"
	"github.com/sbilibin2017/petpal-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title petpal-api API
// @version 1.0.0
// @description Pet care backend: pets, health records, reminders and nearby vet lookup
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the backing services, wires the HTTP API and blocks until a
// shutdown signal or a server failure.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return err
	}

	// Lookup cache backend
	var cacheStore services.LookupCacheStore
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()
		cacheStore = repositories.NewLookupCacheRedisRepository(rdb)
	default:
		pgCache := repositories.NewLookupCacheRepository(db)
		cacheStore = pgCache
		if cfg.CacheSweepInterval > 0 {
			sweeper, err := jobs.NewCacheSweeper(pgCache, cfg.CacheSweepInterval)
			if err != nil {
				return err
			}
			sweeper.Start()
			defer sweeper.Stop()
		}
	}

	// Domain events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	events := services.NewEventPublisher(kafkaWriter)

	// Attachments
	var attachments handlers.AttachmentStorage
	if cfg.MinioEndpoint != "" {
		mc, err := storage.NewMinioClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
		if err != nil {
			return err
		}
		store := storage.NewAttachmentStore(mc, cfg.MinioBucket)
		if err := store.EnsureBucket(ctx); err != nil {
			return err
		}
		attachments = store
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithAlgorithm(cfg.JWTAlgorithm),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	petRepo := repositories.NewPetRepository(db, middlewares.GetTxFromContext)
	recordRepo := repositories.NewHealthRecordRepository(db, middlewares.GetTxFromContext)
	reminderRepo := repositories.NewReminderRepository(db, middlewares.GetTxFromContext)

	// Services
	places := facades.NewPlacesHTTPFacade(&http.Client{Timeout: cfg.PlacesTimeout}, cfg.PlacesBaseURL, cfg.PlacesAPIKey)

	api := routes{
		auth:        services.NewAuthService(userReadRepo, userWriteRepo, hasher.New(cfg.BcryptCost), tokens, events),
		tokens:      tokens,
		pets:        services.NewPetService(petRepo, events),
		records:     services.NewHealthRecordService(recordRepo, petRepo, events),
		reminders:   services.NewReminderService(reminderRepo, petRepo, events),
		vets:        services.NewVetService(places, services.NewLookupCache(cacheStore)),
		attachments: attachments,
		db:          db,
		corsOrigins: cfg.CORSAllowedOrigins,
		swaggerURL:  fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr()),
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(api),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

type authService interface {
	handlers.Signupper
	handlers.Loginer
	middlewares.Authenticator
}

// routes collects what the router needs. A nil attachments store leaves the
// upload endpoints unregistered.
type routes struct {
	auth        authService
	tokens      middlewares.Tokener
	pets        handlers.PetManager
	records     handlers.HealthRecordManager
	reminders   handlers.ReminderManager
	vets        handlers.VetFinder
	attachments handlers.AttachmentStorage
	db          *sqlx.DB
	corsOrigins []string
	swaggerURL  string
}

func newRouter(api routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(api.corsOrigins))

	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(api.swaggerURL)))

	authMiddleware := middlewares.AuthMiddleware(api.tokens, api.auth)

	// Health records are served under both prefixes: /records is what clients
	// call, /health is the historical server prefix.
	recordRoutes := func(r chi.Router) {
		r.Post("/", handlers.NewCreateHealthRecordHandler(api.records))
		r.Get("/all", handlers.NewListHealthRecordsHandler(api.records))
		r.Get("/pet/{pet_id}", handlers.NewListPetHealthRecordsHandler(api.records))
		r.Get("/{id}", handlers.NewGetHealthRecordHandler(api.records))
		r.Put("/{id}", handlers.NewUpdateHealthRecordHandler(api.records))
		r.Delete("/{id}", handlers.NewDeleteHealthRecordHandler(api.records))
	}

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/signup", handlers.NewSignupHandler(api.auth))
		r.Post("/auth/login", handlers.NewLoginHandler(api.auth))
		r.Get("/vets/nearby", handlers.NewNearbyVetsHandler(api.vets))
		r.Get("/vets/details", handlers.NewVetDetailsHandler(api.vets))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/auth/me", handlers.NewMeHandler())

			r.Route("/pets", func(r chi.Router) {
				r.Post("/", handlers.NewCreatePetHandler(api.pets))
				r.Get("/", handlers.NewListPetsHandler(api.pets))
				r.Get("/{id}", handlers.NewGetPetHandler(api.pets))
				r.Put("/{id}", handlers.NewUpdatePetHandler(api.pets))
				r.With(middlewares.TxMiddleware(api.db)).Delete("/{id}", handlers.NewDeletePetHandler(api.pets))
			})

			r.Route("/records", recordRoutes)
			r.Route("/health", recordRoutes)

			r.Route("/reminders", func(r chi.Router) {
				r.Post("/", handlers.NewCreateReminderHandler(api.reminders))
				r.Get("/all", handlers.NewListRemindersHandler(api.reminders))
				r.Get("/pet/{pet_id}", handlers.NewListPetRemindersHandler(api.reminders))
				r.Get("/{id}", handlers.NewGetReminderHandler(api.reminders))
				r.Put("/{id}", handlers.NewUpdateReminderHandler(api.reminders))
				r.Delete("/{id}", handlers.NewDeleteReminderHandler(api.reminders))
			})

			if api.attachments != nil {
				r.Post("/uploads", handlers.NewUploadHandler(api.attachments))
				r.Get("/uploads/{owner}/{file}", handlers.NewDownloadHandler(api.attachments))
			}
		})
	})

	return r
}
