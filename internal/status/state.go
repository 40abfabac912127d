// Package status tracks the lifecycle of a unit of background work.
package status

import (
	"fmt"
	"slices"
	"sync"
)

// State is a task lifecycle state.
type State string

const (
	Queued    State = "QUEUED"
	Running   State = "RUNNING"
	Completed State = "COMPLETED"
	Cancelled State = "CANCELLED"
	Failed    State = "FAILED"
)

// validTransitions defines allowed state transitions. Terminal states have none.
var validTransitions = map[State][]State{
	Queued:  {Running},
	Running: {Completed, Cancelled, Failed},
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// Machine tracks and enforces task state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
}

// NewMachine creates a new state machine starting in Queued state.
func NewMachine() *Machine {
	return &Machine{current: Queued}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	m.current = to
	return nil
}
