package tui

import (
	"sync"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/api"
)

// tracker remembers which request the screen is waiting for. Results can
// reach the stream before the Search call that produced them returns, so
// the newest event is kept until its request id is known.
type tracker struct {
	mu     sync.Mutex
	seq    uint64
	acked  uint64
	latest string
	early  *wppsearchv1.SearchEvent
}

// next numbers a query about to be submitted.
func (t *tracker) next() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	return t.seq
}

// expect records id, the request accepted for query seq, as the request to
// render. Acknowledgements older than one already seen are ignored. It
// returns the event for id if it already arrived.
func (t *tracker) expect(seq uint64, id string) *wppsearchv1.SearchEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq <= t.acked {
		return nil
	}
	t.acked = seq
	t.latest = id
	if t.early != nil && t.early.GetRequestId() == id {
		evt := t.early
		t.early = nil
		return evt
	}
	return nil
}

// deliver reports whether evt belongs to the awaited request.
func (t *tracker) deliver(evt *wppsearchv1.SearchEvent) bool {
	if evt.GetKind() != api.EventResults {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if evt.GetRequestId() == t.latest {
		return true
	}
	t.early = evt
	return false
}

// reset forgets the awaited request.
func (t *tracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.acked = t.seq
	t.latest = ""
	t.early = nil
}
