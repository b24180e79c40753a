package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"zephyr/internal/application/dashboard"
	"zephyr/pkg/log"
	"zephyr/pkg/msg"
)

// Purger drops expired entries from a cache
type Purger interface {
	Name() string
	Purge(ctx context.Context) (int, error)
}

type JanitorConfig struct {
	Interval       time.Duration
	SessionIdleTTL time.Duration
}

// JanitorScheduler evicts idle dashboard sessions and purges expired cache entries
type JanitorScheduler struct {
	scheduler gocron.Scheduler
	registry  *dashboard.Registry
	purgers   []Purger
	config    JanitorConfig
}

func NewJanitorScheduler(registry *dashboard.Registry, config JanitorConfig, purgers ...Purger) (*JanitorScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create janitor scheduler: %w", err)
	}
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.SessionIdleTTL <= 0 {
		config.SessionIdleTTL = 30 * time.Minute
	}
	return &JanitorScheduler{scheduler: scheduler, registry: registry, purgers: purgers, config: config}, nil
}

// InitJanitorScheduleTasks registers the janitor job and starts the scheduler
func (j *JanitorScheduler) InitJanitorScheduleTasks() error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(j.config.Interval),
		gocron.NewTask(j.ExecuteScheduledTask),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule janitor: %w", err)
	}
	j.scheduler.Start()
	log.Info(msg.GetMessage("schedule.janitor.started", j.config.Interval))
	return nil
}

func (j *JanitorScheduler) ExecuteScheduledTask(ctx context.Context) {
	evicted := j.registry.EvictIdle(j.config.SessionIdleTTL)

	purged := 0
	for _, p := range j.purgers {
		n, err := p.Purge(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("schedule.janitor.purge-failed", p.Name()), zap.Error(err))
			continue
		}
		purged += n
	}

	log.Debug(msg.GetMessage("schedule.janitor.end", evicted, purged),
		zap.Int("sessions", j.registry.Len()),
	)
}

func (j *JanitorScheduler) Stop() error {
	return j.scheduler.Shutdown()
}
