// Package stats keeps the account and dog-profile count gauges current.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jquinonez7/DogTracker/internal/metrics"
	"github.com/jquinonez7/DogTracker/internal/repository"
)

type Collector struct {
	repo     repository.StatsRepository
	logger   *slog.Logger
	schedule cron.Schedule
}

// NewCollector parses cronExpr (standard five-field cron or @every syntax)
// and returns a collector that refreshes on that schedule.
func NewCollector(repo repository.StatsRepository, logger *slog.Logger, cronExpr string) (*Collector, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse stats cron %q: %w", cronExpr, err)
	}
	return &Collector{
		repo:     repo,
		logger:   logger.With("component", "stats"),
		schedule: schedule,
	}, nil
}

// Start blocks until ctx is cancelled, refreshing the gauges at each
// scheduled tick. Run it in its own goroutine.
func (c *Collector) Start(ctx context.Context) {
	c.logger.Info("stats collector started")
	c.Refresh(ctx)

	for {
		next := c.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("stats collector shut down")
			return
		case <-timer.C:
			c.Refresh(ctx)
		}
	}
}

// Refresh reads the current counts and updates the gauges. Failures are
// logged and skipped; the previous gauge values stand until the next tick.
func (c *Collector) Refresh(ctx context.Context) {
	users, err := c.repo.CountUsers(ctx)
	if err != nil {
		c.logger.Error("count users", "error", err)
		return
	}
	dogs, err := c.repo.CountDogs(ctx)
	if err != nil {
		c.logger.Error("count dogs", "error", err)
		return
	}

	metrics.UsersTotal.Set(float64(users))
	metrics.DogsTotal.Set(float64(dogs))
}
