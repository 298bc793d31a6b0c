// Package events fans security notifications out to in-process subscribers.
package events

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/logging"
)

// DefaultBuffer is the per-subscriber channel size.
const DefaultBuffer = 64

// Bus is a non-blocking SecurityEvent publisher.
// A subscriber that falls behind loses events rather than slowing the request path.
type Bus struct {
	mu      sync.RWMutex
	subs    map[uint64]chan entity.SecurityEvent
	nextID  uint64
	closed  bool
	dropped atomic.Int64
	log     func(entity.SecurityEvent)
}

var _ port.SecurityEventPublisher = (*Bus)(nil)

// NewBus creates a bus. Every published event is also logged at info level
// through the logger carried by ctx.
func NewBus(ctx context.Context) *Bus {
	log := logging.FromContext(ctx)
	return &Bus{
		subs: make(map[uint64]chan entity.SecurityEvent),
		log: func(ev entity.SecurityEvent) {
			log.Info().
				Str("event", string(ev.Kind)).
				Str("partition", ev.Partition).
				Str("url", ev.URL).
				Interface("detail", ev.Detail).
				Msg("security event")
		},
	}
}

// Subscribe registers a receiver. The returned cancel func unsubscribes and
// closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(buffer int) (<-chan entity.SecurityEvent, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan entity.SecurityEvent, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Publish implements port.SecurityEventPublisher.
func (b *Bus) Publish(ev entity.SecurityEvent) {
	b.log(ev)

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Subscribers returns the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later Publish calls are no-ops for
// delivery; later Subscribe calls get a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
