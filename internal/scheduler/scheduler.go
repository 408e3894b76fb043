package scheduler

import (
	"context"
	"fmt"

	"tacticalalloc/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is work the scheduler runs on a cron schedule
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// AddJob registers job with a standard five field cron schedule, e.g.
// "0 14 1 * *" for 14:00 on the first of every month
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.RunNow(job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", job.Name(), schedule, err)
	}

	s.log.Infow("job registered", "schedule", schedule, "job", job.Name())
	return nil
}

// RunNow runs job outside its schedule. Failures are logged, not returned.
func (s *Scheduler) RunNow(job Job) {
	log := s.log.With("job", job.Name())
	ctx := logger.NewContext(context.Background(), log)

	log.Info("running job")
	if err := job.Run(ctx); err != nil {
		log.Errorf("job failed: %v", err)
		return
	}
	log.Info("job completed")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
