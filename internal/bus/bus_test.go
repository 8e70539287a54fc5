package bus

import (
	"testing"
	"time"

	"github.com/joaovbs/wab/internal/domain"
)

func TestPublishSubscribe(t *testing.T) {
	b := New(nil)
	ch, unsub := b.Subscribe([]domain.EventKind{domain.KindMessageReceived}, 10)
	defer unsub()

	b.Publish(domain.Event{Kind: domain.KindMessageReceived, Timestamp: time.Now()})

	select {
	case evt := <-ch:
		if evt.Kind != domain.KindMessageReceived {
			t.Errorf("got kind %q, want message_received", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestKindFiltering(t *testing.T) {
	b := New(nil)
	ch, unsub := b.Subscribe([]domain.EventKind{domain.KindMessageReceived}, 10)
	defer unsub()

	b.Publish(domain.Event{Kind: domain.KindConnectionStatus})
	b.Publish(domain.Event{Kind: domain.KindMessageReceived})

	select {
	case evt := <-ch:
		if evt.Kind != domain.KindMessageReceived {
			t.Errorf("got kind %q, want message_received", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	// Ensure the connection event was not delivered.
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected: no more events.
	}
}

func TestEmptyKindSetMatchesAll(t *testing.T) {
	b := New(nil)
	ch, unsub := b.Subscribe(nil, 10)
	defer unsub()

	b.Publish(domain.Event{Kind: domain.KindConnectionStatus})
	b.Publish(domain.Event{Kind: domain.KindChatUpdated})

	for _, want := range []domain.EventKind{domain.KindConnectionStatus, domain.KindChatUpdated} {
		select {
		case evt := <-ch:
			if evt.Kind != want {
				t.Errorf("got kind %q, want %q", evt.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %q", want)
		}
	}
}

func TestExactlyOneDeliveryPerSubscriber(t *testing.T) {
	b := New(nil)
	ch1, unsub1 := b.Subscribe([]domain.EventKind{domain.KindMessageReceived}, 10)
	defer unsub1()
	ch2, unsub2 := b.Subscribe([]domain.EventKind{domain.KindMessageReceived}, 10)
	defer unsub2()

	b.Publish(domain.Event{Kind: domain.KindMessageReceived})

	for i, ch := range []<-chan domain.Event{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: timeout", i)
		}
		select {
		case evt := <-ch:
			t.Errorf("subscriber %d: duplicate delivery: %v", i, evt)
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	ch, unsub := b.Subscribe(nil, 10)
	unsub()

	b.Publish(domain.Event{Kind: domain.KindMessageReceived})

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected.
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New(nil)
	ch, unsub := b.Subscribe(nil, 1)
	defer unsub()

	b.Publish(domain.Event{Kind: domain.KindMessageReceived})
	// Buffer is full; this publish must not block and the event is dropped.
	done := make(chan struct{})
	go func() {
		b.Publish(domain.Event{Kind: domain.KindChatUpdated})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on full subscriber buffer")
	}

	evt := <-ch
	if evt.Kind != domain.KindMessageReceived {
		t.Errorf("got %q, want message_received", evt.Kind)
	}
}
