package services

import (
	"context"
	"time"

	"fitple/internal/metrics"
	"fitple/internal/repositories"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type CleanupServiceInterface interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type CleanupService struct {
	cleanupRepo repositories.CleanupRepository
}

func NewCleanupService(cleanupRepo repositories.CleanupRepository) CleanupServiceInterface {
	return &CleanupService{cleanupRepo: cleanupRepo}
}

// PurgeExpired hard-deletes withdrawn users and owners whose purge date is before now.
func (c *CleanupService) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	users, owners, err := c.cleanupRepo.PurgeScheduledBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	total := users + owners
	metrics.PurgedAccounts.Add(float64(total))
	log.Info().Int64("users", users).Int64("owners", owners).Msg("withdrawn accounts purged")
	return total, nil
}

// CleanupScheduler runs PurgeExpired on a cron schedule.
type CleanupScheduler struct {
	cron     *cron.Cron
	service  CleanupServiceInterface
	schedule string
}

func NewCleanupScheduler(service CleanupServiceInterface, schedule string) *CleanupScheduler {
	return &CleanupScheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		service:  service,
		schedule: schedule,
	}
}

func (s *CleanupScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("schedule", s.schedule).Msg("account cleanup scheduled")
	return nil
}

// Stop waits for a running sweep or for ctx to end.
func (s *CleanupScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CleanupScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	if _, err := s.service.PurgeExpired(ctx, time.Now()); err != nil {
		log.Error().Err(err).Msg("account cleanup failed")
	}
}
