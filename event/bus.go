package event

import (
	"github.com/lixenwraith/gridcrawler/parameter"
)

// Handler receives events for the categories it declares
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during Drain, before systems update
	HandleEvent(ev GameEvent)

	// Categories returns the categories this handler subscribes to
	Categories() []Category
}

// HandlerFunc adapts a function to a single-category subscription
type HandlerFunc func(ev GameEvent)

// Bus is a single-threaded publish/subscribe broker with per-cycle duplicate suppression
//
// Delivery:
//   - Publish enqueues in arrival order, rejecting an event whose identity is already pending
//   - Drain delivers a snapshot of the queue; events published while draining wait for the next Drain
//   - Subscribers of a category are invoked in subscription order
//   - An event's identity is released after its subscribers ran
type Bus struct {
	pending     []GameEvent
	members     map[key]struct{}
	subscribers [categoryCount][]HandlerFunc

	draining  bool
	cycle     uint64
	delivered uint64
	rejected  uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		pending: make([]GameEvent, 0, parameter.EventQueueHint),
		members: make(map[key]struct{}, parameter.EventQueueHint),
	}
}

// Subscribe adds fn to the subscriber list of a category
func (b *Bus) Subscribe(c Category, fn HandlerFunc) {
	b.subscribers[c] = append(b.subscribers[c], fn)
}

// Register subscribes a handler to each category it declares
func (b *Bus) Register(h Handler) {
	for _, c := range h.Categories() {
		b.Subscribe(c, h.HandleEvent)
	}
}

// Publish enqueues an event, returns false if an identical event is already pending
func (b *Bus) Publish(ev GameEvent) bool {
	k := ev.key()
	if _, dup := b.members[k]; dup {
		b.rejected++
		return false
	}
	b.members[k] = struct{}{}
	b.pending = append(b.pending, ev)
	return true
}

// Drain delivers every event queued before the call in FIFO order
// Must be called once per frame, before systems update
// Returns the number of events delivered
func (b *Bus) Drain() int {
	if b.draining {
		panic("event: reentrant Drain")
	}
	if len(b.pending) == 0 {
		return 0
	}

	batch := b.pending
	b.pending = make([]GameEvent, 0, cap(batch))
	b.draining = true
	b.cycle++

	for _, ev := range batch {
		for _, fn := range b.subscribers[ev.Category] {
			fn(ev)
		}
		delete(b.members, ev.key())
	}

	b.draining = false
	b.delivered += uint64(len(batch))
	return len(batch)
}

// Len returns the number of events waiting for the next Drain
func (b *Bus) Len() int {
	return len(b.pending)
}

// Pending returns a copy of the queued events without consuming them
// Used by tests and diagnostics
func (b *Bus) Pending() []GameEvent {
	if len(b.pending) == 0 {
		return nil
	}
	result := make([]GameEvent, len(b.pending))
	copy(result, b.pending)
	return result
}

// Draining reports whether the bus is inside Drain
func (b *Bus) Draining() bool {
	return b.draining
}

// Stats returns counters for telemetry
func (b *Bus) Stats() (cycles, delivered, rejected uint64) {
	return b.cycle, b.delivered, b.rejected
}
