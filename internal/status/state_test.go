package status

import (
	"sync"
	"testing"
)

func TestInitialState(t *testing.T) {
	m := NewMachine()
	if m.Current() != Queued {
		t.Errorf("initial state = %s, want QUEUED", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	for _, end := range []State{Completed, Cancelled, Failed} {
		t.Run(string(end), func(t *testing.T) {
			m := NewMachine()
			if err := m.Transition(Running); err != nil {
				t.Fatalf("Transition(QUEUED -> RUNNING) error = %v", err)
			}
			if err := m.Transition(end); err != nil {
				t.Fatalf("Transition(RUNNING -> %s) error = %v", end, err)
			}
			if m.Current() != end {
				t.Errorf("state = %s, want %s", m.Current(), end)
			}
			if !m.Current().Terminal() {
				t.Errorf("%s should be terminal", end)
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		walk []State
		to   State
	}{
		{"queued to completed", nil, Completed},
		{"queued to cancelled", nil, Cancelled},
		{"running to running", []State{Running}, Running},
		{"completed to failed", []State{Running, Completed}, Failed},
		{"cancelled to running", []State{Running, Cancelled}, Running},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, s := range tt.walk {
				if err := m.Transition(s); err != nil {
					t.Fatal(err)
				}
			}
			before := m.Current()
			if err := m.Transition(tt.to); err == nil {
				t.Errorf("Transition(%s -> %s) should fail", before, tt.to)
			}
			if m.Current() != before {
				t.Errorf("state changed to %s on invalid transition", m.Current())
			}
		})
	}
}

// TestSingleTerminalTransition verifies that concurrent attempts to finish a
// task let exactly one terminal transition through.
func TestSingleTerminalTransition(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Running); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for _, s := range []State{Completed, Cancelled, Failed, Completed} {
		wg.Add(1)
		go func(s State) {
			defer wg.Done()
			if m.Transition(s) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(s)
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("got %d terminal transitions, want 1", wins)
	}
}
