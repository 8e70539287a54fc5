// Package bus implements the in-process publish/subscribe fanout feeding the
// RPC event streams.
package bus

import (
	"sync"

	"github.com/joaovbs/wab/internal/domain"
	"go.uber.org/zap"
)

// Bus broadcasts domain events to subscribers filtered by event kind.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscription
	next   int
	logger *zap.Logger
}

type subscription struct {
	kinds map[domain.EventKind]struct{} // empty = match all
	ch    chan domain.Event
}

// New creates a new event bus.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		subs:   make(map[int]*subscription),
		logger: logger,
	}
}

// Publish delivers evt to every subscriber whose kind set matches. Delivery is
// non-blocking per subscriber: a full subscriber buffer drops the event for
// that subscriber (logged) so a slow stream never stalls the handler thread or
// other subscribers.
func (b *Bus) Publish(evt domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, sub := range b.subs {
		if !sub.matches(evt.Kind) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("kind", string(evt.Kind)))
		}
	}
}

// Subscribe returns a channel receiving events of the given kinds; an empty
// kind list subscribes to everything. bufSize bounds the channel. The returned
// function unsubscribes.
func (b *Bus) Subscribe(kinds []domain.EventKind, bufSize int) (<-chan domain.Event, func()) {
	sub := &subscription{
		kinds: make(map[domain.EventKind]struct{}, len(kinds)),
		ch:    make(chan domain.Event, bufSize),
	}
	for _, k := range kinds {
		sub.kinds[k] = struct{}{}
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	return sub.ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (s *subscription) matches(kind domain.EventKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[kind]
	return ok
}
