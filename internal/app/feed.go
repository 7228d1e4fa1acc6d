package app

import (
	"slices"
	"sync"
	"time"

	"github.com/example/firmos/internal/observability"
)

// Collection names carried on change events. They match the keys of the
// local cache blob.
const (
	CollectionEmployees  = "employees"
	CollectionTaskLogs   = "taskLogs"
	CollectionClients    = "clients"
	CollectionCaseTypes  = "caseTypes"
	CollectionFinancials = "settings"
	CollectionCashbox    = "transactions"
	CollectionIncome     = "income"
	CollectionTickets    = "tickets"
)

// Change operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// DefaultFeedBuffer is the per-subscriber channel capacity.
const DefaultFeedBuffer = 32

// ChangeEvent announces a successful mutation. Consumers re-read the
// collection rather than apply the event.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

type subscription struct {
	ch          chan ChangeEvent
	collections []string
}

func (s *subscription) wants(collection string) bool {
	return len(s.collections) == 0 || slices.Contains(s.collections, collection)
}

// Feed fans change events out to subscribers. Publishing never blocks:
// a subscriber whose buffer is full misses the event.
type Feed struct {
	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	buffer int
	now    func() time.Time
}

// NewFeed creates a feed with the given per-subscriber buffer.
// A non-positive buffer uses DefaultFeedBuffer.
func NewFeed(buffer int) *Feed {
	if buffer <= 0 {
		buffer = DefaultFeedBuffer
	}
	return &Feed{
		subs:   make(map[*subscription]struct{}),
		buffer: buffer,
		now:    time.Now,
	}
}

// Subscribe registers a subscriber for the given collections, or for all
// collections when none are named. The returned func unsubscribes and
// closes the channel; it is safe to call more than once.
func (f *Feed) Subscribe(collections ...string) (<-chan ChangeEvent, func()) {
	sub := &subscription{
		ch:          make(chan ChangeEvent, f.buffer),
		collections: collections,
	}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	observability.FeedSubscribers.Inc()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, sub)
			close(sub.ch)
			f.mu.Unlock()
			observability.FeedSubscribers.Dec()
		})
	}
}

// Publish delivers an event to every interested subscriber.
// A nil feed discards the event.
func (f *Feed) Publish(collection, op, id string) {
	if f == nil {
		return
	}
	observability.Mutations.WithLabelValues(collection, op).Inc()

	event := ChangeEvent{Collection: collection, Op: op, ID: id, At: f.now()}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for sub := range f.subs {
		if !sub.wants(collection) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			observability.FeedDropped.Inc()
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
