package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
)

// Scheduler runs jobs on cron schedules, standing in for the function
// platform's scheduled trigger. All schedules are evaluated in UTC.
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger
}

func New(logger *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		logger: logger,
	}
}

// Add registers a job under a standard 5-field cron spec.
func (s *Scheduler) Add(spec, name string, job func()) error {
	log := s.logger.WithComponent("scheduler")

	_, err := s.cron.AddFunc(spec, func() {
		log.Info("scheduled job starting", slog.String("job", name))
		job()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s (%q): %w", name, spec, err)
	}

	log.Info("job scheduled",
		slog.String("job", name),
		slog.String("spec", spec))
	return nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling new runs. The returned context is done once any
// in-flight job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
