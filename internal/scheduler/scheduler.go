// Package scheduler runs store maintenance on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrBusy is returned by Trigger while the job is already running.
var ErrBusy = errors.New("maintenance already running")

// JobFunc is one maintenance run.
type JobFunc func(ctx context.Context) error

// Scheduler runs a single maintenance job on a cron expression. Runs never
// overlap: a tick that fires while the previous run is still going is skipped.
type Scheduler struct {
	cron   *cron.Cron
	name   string
	job    JobFunc
	logger *zap.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	running bool
	lastRun time.Time
	lastErr error

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler for job. expr is a five-field cron expression; an
// invalid expression is an error.
func New(name, expr string, job JobFunc, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(cron.WithParser(cron.NewParser(
			cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		))),
		name:   name,
		job:    job,
		logger: logger.With(zap.String("job", name)),
		ctx:    ctx,
		cancel: cancel,
	}
	entry, err := s.cron.AddFunc(expr, func() { _ = s.Trigger() })
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	s.entry = entry
	return s, nil
}

// Start begins executing the schedule.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("maintenance scheduled", zap.Time("next_run", s.cron.Entry(s.entry).Next))
}

// Stop halts the schedule, cancels a running job and waits for it.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.cancel()
	s.wg.Wait()
}

// Trigger runs the job now in the background. It returns ErrBusy if a run
// is in progress.
func (s *Scheduler) Trigger() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return fmt.Errorf("scheduler %s is stopped", s.name)
	}
	if s.running {
		s.logger.Debug("skipping maintenance, previous run still active")
		return ErrBusy
	}
	s.running = true
	s.wg.Add(1)
	go s.run()
	return nil
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	start := time.Now()
	err := s.job(s.ctx)

	s.mu.Lock()
	s.running = false
	s.lastRun = start
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("maintenance failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return
	}
	s.logger.Info("maintenance completed", zap.Duration("duration", time.Since(start)))
}

// LastRun returns when the job last started and how it ended.
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

// isRunning reports whether the job is running.
func (s *Scheduler) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
