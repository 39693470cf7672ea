package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sbilibin2017/petpal-api/internal/logger"
)

//go:generate mockgen -source=cache_sweeper.go -destination=mock_cache_sweeper.go -package=jobs

const cacheSweepJobName = "lookup-cache-sweep"

// ExpiredEntryDeleter purges expired lookup cache rows.
type ExpiredEntryDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// CacheSweeper periodically removes expired lookup cache entries.
type CacheSweeper struct {
	scheduler gocron.Scheduler
	store     ExpiredEntryDeleter
	interval  time.Duration
	now       func() time.Time
}

// NewCacheSweeper creates a sweeper running every interval.
func NewCacheSweeper(store ExpiredEntryDeleter, interval time.Duration) (*CacheSweeper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %s", interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &CacheSweeper{
		scheduler: scheduler,
		store:     store,
		interval:  interval,
		now:       time.Now,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.Sweep, context.Background()),
		gocron.WithName(cacheSweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("register %s job: %w", cacheSweepJobName, err)
	}

	return s, nil
}

// Start starts the scheduler.
func (s *CacheSweeper) Start() {
	logger.Log.Infow("Starting cache sweeper", "interval", s.interval)
	s.scheduler.Start()
}

// Stop waits for a running sweep and stops the scheduler.
func (s *CacheSweeper) Stop() error {
	logger.Log.Infow("Stopping cache sweeper")
	return s.scheduler.Shutdown()
}

// Sweep deletes every entry that expired before now.
func (s *CacheSweeper) Sweep(ctx context.Context) error {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		logger.Log.Errorw("cache sweep failed", "error", err)
		return err
	}
	logger.Log.Infow("cache sweep finished", "deleted", n)
	return nil
}
