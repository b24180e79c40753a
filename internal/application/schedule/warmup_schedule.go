package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/log"
	"zephyr/pkg/msg"
	"zephyr/pkg/redis"
)

const warmUpLockKey = "weather_warmup_scheduler"

// WarmUpSchedulerConfig holds configuration for the cache warm-up scheduler
type WarmUpSchedulerConfig struct {
	CronExpression string
	// Cities are always warmed, on top of the cities open in a dashboard
	Cities  []string
	LockTTL time.Duration
	// Timeout bounds one whole run
	Timeout time.Duration
}

// WarmUpScheduler refreshes the weather cache of popular cities. With a Redis client, a
// distributed lock keeps replicas from warming the same cities at the same time.
type WarmUpScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	openCities  func() []string
	config      *WarmUpSchedulerConfig
}

// NewWarmUpScheduler creates the scheduler; redisClient may be nil for a single instance
func NewWarmUpScheduler(useCase weather.UseCase, redisClient *redis.Client, openCities func() []string, config WarmUpSchedulerConfig) *WarmUpScheduler {
	return &WarmUpScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		openCities:  openCities,
		config:      &config,
	}
}

// InitWarmUpScheduleTasks registers the warm-up job and starts the cron
func (s *WarmUpScheduler) InitWarmUpScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid warm-up cron %q: %w", s.config.CronExpression, err)
	}
	s.cron.Start()
	log.Info(msg.GetMessage("schedule.warmup.started", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warm-up pass
func (s *WarmUpScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.getTimeout())
	defer cancel()

	log.Info(msg.GetMessage("schedule.warmup.start"), zap.String("request_id", requestID))

	var err error
	if s.redisClient != nil {
		err = s.runLocked(ctx, requestID)
	} else {
		err = s.warmUp(ctx, requestID)
	}

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info(msg.GetMessage("schedule.warmup.skipped"), zap.String("request_id", requestID))
	case err != nil:
		log.Error(msg.GetMessage("schedule.warmup.failed"), zap.String("request_id", requestID), zap.Error(err))
	default:
		log.Info(msg.GetMessage("schedule.warmup.end"), zap.String("request_id", requestID))
	}
}

// runLocked holds the warm-up lock for the duration of the run, refreshing it in the background
func (s *WarmUpScheduler) runLocked(ctx context.Context, requestID string) error {
	opts := redis.NewLockOptions().
		WithTTL(s.getLockTTL()).
		WithRefreshInterval(s.getLockTTL() / 3).
		WithLockNamespace("schedules")

	return redis.LockWithFunc(ctx, s.redisClient, warmUpLockKey, opts, func(ctx context.Context) error {
		return s.warmUp(ctx, requestID)
	})
}

func (s *WarmUpScheduler) warmUp(ctx context.Context, requestID string) error {
	var errs []error
	for _, city := range s.Targets() {
		if err := s.useCase.WarmUp(ctx, city); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
			continue
		}
		log.Debug(msg.GetMessage("schedule.warmup.city", city), zap.String("request_id", requestID))
	}
	return errors.Join(errs...)
}

// Targets returns the configured and open cities, without case-insensitive duplicates, sorted
func (s *WarmUpScheduler) Targets() []string {
	candidates := append([]string{}, s.config.Cities...)
	if s.openCities != nil {
		candidates = append(candidates, s.openCities()...)
	}

	seen := make(map[string]struct{})
	var targets []string
	for _, city := range candidates {
		city = strings.TrimSpace(city)
		key := strings.ToLower(city)
		if city == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		targets = append(targets, city)
	}
	sort.Strings(targets)
	return targets
}

// Stop gracefully stops the scheduler
func (s *WarmUpScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *WarmUpScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 5 * time.Minute
}

func (s *WarmUpScheduler) getTimeout() time.Duration {
	if s.config.Timeout > 0 {
		return s.config.Timeout
	}
	return 2 * time.Minute
}
