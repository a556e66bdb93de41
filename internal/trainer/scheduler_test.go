package trainer

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	count int
	err   error
}

func (f *fakeSubmitter) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	return "jobs/test", f.err
}

func (f *fakeSubmitter) submissions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSchedulerSubmitsWhenDue(t *testing.T) {
	sub := &fakeSubmitter{}
	s := NewScheduler(sub, time.Hour, 72*time.Hour, testLogger())

	// First tick: due immediately.
	s.tick(context.Background())
	if sub.submissions() != 1 {
		t.Fatalf("got %d submissions, want 1", sub.submissions())
	}

	// Second tick inside the period: not due.
	s.tick(context.Background())
	if sub.submissions() != 1 {
		t.Fatalf("submitted again before the period elapsed: %d", sub.submissions())
	}

	// Force the period to elapse.
	s.nextRun = time.Now().Add(-time.Minute)
	s.tick(context.Background())
	if sub.submissions() != 2 {
		t.Fatalf("got %d submissions, want 2", sub.submissions())
	}
}

func TestSchedulerReschedulesAfterFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("service unavailable")}
	s := NewScheduler(sub, time.Hour, 72*time.Hour, testLogger())

	s.tick(context.Background())
	if sub.submissions() != 1 {
		t.Fatalf("got %d submissions, want 1", sub.submissions())
	}

	// Failure is not retried on the next check; the full period applies.
	s.tick(context.Background())
	if sub.submissions() != 1 {
		t.Fatalf("retried a failed submission: %d", sub.submissions())
	}
	if !s.nextRun.After(time.Now().Add(71 * time.Hour)) {
		t.Errorf("nextRun not pushed a full period out: %v", s.nextRun)
	}
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	sub := &fakeSubmitter{}
	s := NewScheduler(sub, 10*time.Millisecond, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func TestSchedulerStopsOnStopSignal(t *testing.T) {
	sub := &fakeSubmitter{}
	s := NewScheduler(sub, 10*time.Millisecond, time.Hour, testLogger())

	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on stop signal")
	}
}
