package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestNewRejectsInvalidExpression(t *testing.T) {
	for _, expr := range []string{"", "every day", "* * * *", "61 * * * *"} {
		if _, err := New("optimize", expr, func(context.Context) error { return nil }, nil); err == nil {
			t.Errorf("New(%q) expected error", expr)
		}
	}
}

func TestTriggerRunsJob(t *testing.T) {
	var runs atomic.Int32
	s, err := New("optimize", "0 4 * * *", func(context.Context) error {
		runs.Add(1)
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	if err := s.Trigger(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return runs.Load() == 1 && !s.isRunning() })

	last, lastErr := s.LastRun()
	if last.IsZero() || lastErr != nil {
		t.Errorf("LastRun() = %v, %v", last, lastErr)
	}
}

func TestTriggerDoesNotOverlap(t *testing.T) {
	release := make(chan struct{})
	var runs atomic.Int32
	s, err := New("optimize", "0 4 * * *", func(context.Context) error {
		runs.Add(1)
		<-release
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	if err := s.Trigger(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return runs.Load() == 1 })

	if err := s.Trigger(); !errors.Is(err, ErrBusy) {
		t.Errorf("second Trigger() = %v, want ErrBusy", err)
	}
	close(release)
	waitFor(t, func() bool { return !s.isRunning() })

	if runs.Load() != 1 {
		t.Errorf("runs = %d, want 1", runs.Load())
	}
}

func TestJobErrorRecorded(t *testing.T) {
	boom := errors.New("disk full")
	s, err := New("optimize", "0 4 * * *", func(context.Context) error { return boom }, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	if err := s.Trigger(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		_, lastErr := s.LastRun()
		return lastErr != nil
	})
	if _, lastErr := s.LastRun(); !errors.Is(lastErr, boom) {
		t.Errorf("last error = %v, want %v", lastErr, boom)
	}
}

func TestStopCancelsRunningJob(t *testing.T) {
	started := make(chan struct{})
	s, err := New("optimize", "0 4 * * *", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Trigger(); err != nil {
		t.Fatal(err)
	}
	<-started

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	if err := s.Trigger(); err == nil {
		t.Error("Trigger after Stop should fail")
	}
}
