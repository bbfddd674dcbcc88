// Package jobs runs background work on a schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	dailyActionsJob = "daily-actions"
	dailyRunTimeout = 5 * time.Minute
)

// UserLister returns every user with at least one assessment.
type UserLister interface {
	ListUsers(ctx context.Context) ([]string, error)
}

// Config holds scheduler configuration
type Config struct {
	Location  *time.Location
	DailyHour int
}

// Scheduler pre-generates each assessed user's daily action batch.
type Scheduler struct {
	scheduler gocron.Scheduler
	users     UserLister
	actions   app.GenerateActionsUseCase
	logger    *zap.Logger
	dailyHour int
}

// RunSummary counts the outcome of one daily run.
type RunSummary struct {
	Generated int
	Existing  int
	Failed    int
}

func New(users UserLister, actions app.GenerateActionsUseCase, cfg Config, logger *zap.Logger) (*Scheduler, error) {
	if cfg.DailyHour < 0 || cfg.DailyHour > 23 {
		return nil, fmt.Errorf("daily hour %d is outside 0-23", cfg.DailyHour)
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		users:     users,
		actions:   actions,
		logger:    logger.Named("jobs"),
		dailyHour: cfg.DailyHour,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.dailyHour), 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), dailyRunTimeout)
			defer cancel()
			s.RunDaily(ctx)
		}),
		gocron.WithName(dailyActionsJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("registering %s: %w", dailyActionsJob, err)
	}

	s.scheduler.Start()
	s.logger.Info("scheduler started", zap.Int("daily_hour", s.dailyHour))
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// RunDaily generates today's batch for every assessed user. Users that
// already have a batch are left untouched; one user's failure does not stop
// the rest.
func (s *Scheduler) RunDaily(ctx context.Context) RunSummary {
	var sum RunSummary
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("listing users for daily actions", zap.Error(err))
		return sum
	}

	for _, userID := range users {
		if ctx.Err() != nil {
			s.logger.Warn("daily actions run cut short", zap.Error(ctx.Err()))
			break
		}
		res, err := s.actions.GenerateDaily(ctx, app.GenerateActionsRequest{UserID: userID})
		switch {
		case err != nil:
			sum.Failed++
			s.logger.Warn("generating daily actions", zap.String("user_id", userID), zap.Error(err))
		case res.Generated:
			sum.Generated++
		default:
			sum.Existing++
		}
	}

	s.logger.Info("daily actions run finished",
		zap.Int("users", len(users)),
		zap.Int("generated", sum.Generated),
		zap.Int("existing", sum.Existing),
		zap.Int("failed", sum.Failed),
	)
	return sum
}
