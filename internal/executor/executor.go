// Package executor runs background work one unit at a time, letting the
// newest submission replace anything that has not started yet.
package executor

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Task is a unit of work that can be asked to stop.
// Cancel must be safe to call from any goroutine, before, during or after Run.
type Task interface {
	Run()
	Cancel()
}

// Executor is a serial executor with a single running slot and a single
// pending slot. Submitting signals the running task to cancel and replaces
// the pending one; replaced tasks never run.
type Executor struct {
	name   string
	logger *zap.Logger

	mu      sync.Mutex
	running Task
	pending Task
	closed  bool

	dispatch chan Task
	done     chan struct{}
}

// New creates an executor and starts its worker goroutine.
func New(name string, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Executor{
		name:     name,
		logger:   logger.With(zap.String("executor", name)),
		dispatch: make(chan Task, 1),
		done:     make(chan struct{}),
	}
	go e.work()
	return e
}

// Submit schedules t. It never waits for the running task.
func (e *Executor) Submit(t Task) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		e.logger.Debug("executor closed, dropping task")
		return
	}
	if e.running != nil {
		e.running.Cancel()
	}
	if e.pending != nil {
		e.logger.Debug("replacing pending task")
	}
	e.pending = t
	if e.running == nil {
		e.promoteLocked()
	}
}

// CancelAll signals the running task and discards the pending one.
func (e *Executor) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running != nil {
		e.running.Cancel()
	}
	e.pending = nil
}

// Close cancels all work and stops the worker once the running task returns.
// Safe to call more than once.
func (e *Executor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.pending = nil
	if e.running != nil {
		e.running.Cancel()
		return
	}
	close(e.dispatch)
}

// Done is closed once the worker has exited after Close.
func (e *Executor) Done() <-chan struct{} {
	return e.done
}

// Busy reports whether a task is running or pending.
func (e *Executor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running != nil || e.pending != nil
}

// promoteLocked moves pending into the running slot and hands it to the worker.
// The dispatch buffer is always empty here because running was empty.
func (e *Executor) promoteLocked() {
	e.running = e.pending
	e.pending = nil
	e.dispatch <- e.running
}

func (e *Executor) work() {
	defer close(e.done)
	for t := range e.dispatch {
		e.runOne(t)
		e.finish()
	}
}

func (e *Executor) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = nil
	if e.closed {
		close(e.dispatch)
		return
	}
	if e.pending != nil {
		e.promoteLocked()
	}
}

func (e *Executor) runOne(t Task) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("task panicked", zap.String("panic", fmt.Sprint(r)))
		}
	}()
	t.Run()
}
