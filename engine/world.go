package engine

import (
	"sort"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// World contains all entities, their components and the shared resources
// Passed by reference to every system, owned by the tick goroutine
type World struct {
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore

	systems []System
}

// NewWorld creates a world around a resource set
func NewWorld(res *Resource) *World {
	return &World{
		nextEntityID: 1,
		Resources:    res,
		Components:   newComponentStore(),
		systems:      make([]System, 0, 16),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Clear removes all entities and components, systems stay registered
// Entity IDs keep increasing so events queued before the clear never alias new entities
func (w *World) Clear() {
	w.Components.clear()
}

// AddSystem adds a system ordered by priority
// Event handlers are subscribed in add order, which fixes same-category delivery order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(event.Handler); ok {
		w.Resources.Event.Register(h)
	}
}

// Systems returns a copy of all registered systems in update order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
}

// PushEvent publishes an event on its default category
// Returns false when an identical event is already pending this cycle
func (w *World) PushEvent(t event.EventType, sender core.Entity, payload event.Payload) bool {
	return w.Resources.Event.Publish(event.New(t, sender, payload))
}

// PushEventID publishes an event carrying an identity discriminator
func (w *World) PushEventID(t event.EventType, sender core.Entity, id uint64, payload event.Payload) bool {
	return w.Resources.Event.Publish(event.New(t, sender, payload).WithID(id))
}

// PushMessage publishes a textbox line, identical lines from one sender collapse within a cycle
func (w *World) PushMessage(sender core.Entity, text string) bool {
	return w.PushEventID(event.EventMessage, sender, event.TextID(text), &event.MessagePayload{Text: text})
}

// PushSound publishes a 2D cue
func (w *World) PushSound(sender core.Entity, cue core.Cue) bool {
	return w.PushEventID(event.EventSound2D, sender, uint64(cue), &event.SoundPayload{Cue: cue})
}

// PushSound3D publishes a cue positioned at emitter
func (w *World) PushSound3D(sender core.Entity, cue core.Cue, emitter vmath.Vec3F) bool {
	return w.PushEventID(event.EventSound3D, sender, uint64(cue), &event.SoundPayload{Cue: cue, Emitter: emitter})
}

// KindOf returns the entity's actor kind, KindNone if it has no actor
func (w *World) KindOf(e core.Entity) core.Kind {
	if a, ok := w.Components.Actor.GetComponent(e); ok {
		return a.Kind
	}
	return core.KindNone
}

// PositionOf returns the live position of a character or the placement of a static actor
func (w *World) PositionOf(e core.Entity) (vmath.Vec3F, bool) {
	if c, ok := w.Components.Character.GetComponent(e); ok {
		return c.Position, true
	}
	if a, ok := w.Components.Actor.GetComponent(e); ok {
		return a.Position, true
	}
	return vmath.Vec3F{}, false
}
