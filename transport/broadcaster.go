package transport

import (
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber channel depth; a Publish that
// finds a subscriber's channel full drops the frame for that subscriber
// rather than blocking (Snapshots are idempotent, so a dropped frame is
// superseded by the next one).
const subscriberBuffer = 1

// Broadcaster fans Snapshots out to any number of subscribers, each
// identified by a uuid.UUID session id (bookkeeping only — never confused
// with an agent or vertex id, which are the simulator's stable insertion
// indices).
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]chan Snapshot
}

// NewBroadcaster returns a Broadcaster with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uuid.UUID]chan Snapshot)}
}

// Subscribe registers a new subscriber and returns its session id and the
// channel it will receive Snapshots on.
func (b *Broadcaster) Subscribe() (uuid.UUID, <-chan Snapshot) {
	id := uuid.New()
	ch := make(chan Snapshot, subscriberBuffer)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	return id, ch
}

// Unsubscribe removes and closes the subscriber's channel. Safe to call
// more than once for the same id.
func (b *Broadcaster) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[id]
	if !ok {
		return
	}
	delete(b.subs, id)
	close(ch)
}

// Publish fans snap out to every current subscriber, non-blocking.
func (b *Broadcaster) Publish(snap Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// SubscriberCount returns the number of currently registered subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
