// Package event provides the synchronous event bus wiring the tidying
// engine to its triggers. Saving a buffer publishes TopicBufferSaved; the
// mode controller subscribes and re-runs the tidy pass. Dispatch is
// synchronous and in subscription order, matching the single-threaded
// editing model: Publish returns only after every handler has run.
package event

import (
	"sync"
	"time"
)

// Topic is a hierarchical event type.
type Topic string

// Topics published by the editing surface and the mode controller.
const (
	TopicBufferSaved    Topic = "buffer.saved"
	TopicModeEnabled    Topic = "mode.enabled"
	TopicModeDisabled   Topic = "mode.disabled"
	TopicConfigReloaded Topic = "config.reloaded"
)

// Event is one occurrence on the bus.
type Event struct {
	// Topic is the event type.
	Topic Topic

	// Source identifies the publisher.
	Source string

	// Time is when the event was published.
	Time time.Time
}

// Handler receives published events.
type Handler func(Event)

// Subscription identifies one active subscription.
type Subscription struct {
	topic Topic
	id    uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribers.
// All methods are safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]subscriber
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Topic][]subscriber),
	}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, handler: handler})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a subscription. Returns false if it was not active.
func (b *Bus) Unsubscribe(sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers an event synchronously to every subscriber of its topic,
// in subscription order. The event's time is stamped here when unset.
func (b *Bus) Publish(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	b.mu.RLock()
	list := make([]subscriber, len(b.subs[ev.Topic]))
	copy(list, b.subs[ev.Topic])
	b.mu.RUnlock()

	for _, s := range list {
		s.handler(ev)
	}
}
