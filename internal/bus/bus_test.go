package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("search.", 10)
	defer unsub()

	b.Emit(KindSearchResults, "payload")

	select {
	case evt := <-ch:
		if evt.Kind != KindSearchResults {
			t.Errorf("got kind %q, want %s", evt.Kind, KindSearchResults)
		}
		if evt.Timestamp.IsZero() {
			t.Error("timestamp not set")
		}
		if evt.Payload != "payload" {
			t.Errorf("payload = %v, want payload", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("wa.", 10)
	defer unsub()

	b.Emit(KindSearchResults, nil)
	b.Emit(KindConnected, nil)

	select {
	case evt := <-ch:
		if evt.Kind != KindConnected {
			t.Errorf("got kind %q, want %s", evt.Kind, KindConnected)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("wa.", 10)
	unsub()
	unsub()

	b.Emit(KindMessage, nil)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("received event after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("wa.", 1)
	defer unsub()

	b.Emit(KindMessage, 1)
	b.Emit(KindMessage, 2)

	evt := <-ch
	if evt.Payload != 1 {
		t.Errorf("got %v, want 1", evt.Payload)
	}
	if b.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", b.Dropped())
	}
}
