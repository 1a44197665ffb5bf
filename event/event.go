package event

import (
	"fmt"
	"hash/fnv"

	"github.com/lixenwraith/gridcrawler/core"
)

// GameEvent is a single bus message, consumed within one drain cycle and never persisted
type GameEvent struct {
	// ID distinguishes otherwise identical events from the same sender, zero when unused
	ID       uint64
	Type     EventType
	Category Category
	// Sender is the entity the event originates from or concerns, zero when none
	Sender  core.Entity
	Payload Payload
}

// New builds an event routed on the type's default category
func New(t EventType, sender core.Entity, payload Payload) GameEvent {
	return GameEvent{
		Type:     t,
		Category: CategoryOf(t),
		Sender:   sender,
		Payload:  payload,
	}
}

// WithID returns a copy carrying the given identity discriminator
func (e GameEvent) WithID(id uint64) GameEvent {
	e.ID = id
	return e
}

func (e GameEvent) String() string {
	return fmt.Sprintf("%s/%s(sender=%d id=%d)", e.Category, e.Type, e.Sender, e.ID)
}

// key is the duplicate-suppression identity, payload excluded
type key struct {
	id       uint64
	typ      EventType
	category Category
	sender   core.Entity
}

func (e GameEvent) key() key {
	return key{id: e.ID, typ: e.Type, category: e.Category, sender: e.Sender}
}

// TextID derives a stable event ID from text so distinct messages from one sender survive dedup
func TextID(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// MustPayload asserts a required payload type
// A mismatch is a programming error and panics
func MustPayload[T Payload](ev GameEvent) T {
	p, ok := ev.Payload.(T)
	if !ok {
		panic(fmt.Sprintf("event: %s carries %T, expected %T", ev.Type, ev.Payload, *new(T)))
	}
	return p
}
