package trainer

import (
	"context"
	"log"
	"time"
)

// JobSubmitter submits one remote training job. Fire-and-forget: no
// completion monitoring, no retry on failure.
type JobSubmitter interface {
	Submit(ctx context.Context) (string, error)
}

// Scheduler periodically submits a training job: it checks every interval
// whether the period since the last submission has elapsed. Next-run state
// lives in memory only and does not survive a restart.
type Scheduler struct {
	submitter JobSubmitter
	interval  time.Duration
	period    time.Duration
	logger    *log.Logger
	nextRun   time.Time
	stopCh    chan struct{}
}

// NewScheduler creates a scheduler that checks every interval and submits
// every period. The first due time is now, so a submission happens on the
// first tick.
func NewScheduler(submitter JobSubmitter, interval, period time.Duration, logger *log.Logger) *Scheduler {
	return &Scheduler{
		submitter: submitter,
		interval:  interval,
		period:    period,
		logger:    logger,
		nextRun:   time.Now(),
		stopCh:    make(chan struct{}),
	}
}

// Start runs the check loop until the context is cancelled or Stop is
// called. It runs one check immediately, then every interval.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Printf("trainer: starting (check every %s, submit every %s)", s.interval, s.period)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.logger.Println("trainer: stopping (context cancelled)")
			return
		case <-s.stopCh:
			s.logger.Println("trainer: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the scheduler to stop.
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

// tick submits a job when the target time has elapsed and reschedules the
// next one. A failed submission is logged, not retried; the next attempt
// waits for the full period.
func (s *Scheduler) tick(ctx context.Context) {
	if time.Now().Before(s.nextRun) {
		return
	}

	name, err := s.submitter.Submit(ctx)
	if err != nil {
		s.logger.Printf("trainer: job submission failed: %v", err)
	} else {
		s.logger.Printf("trainer: job created: %s", name)
	}

	s.nextRun = time.Now().Add(s.period)
}
