package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/level"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/physics"
	"github.com/lixenwraith/gridcrawler/vmath"
)

const (
	frame = time.Second / 60
	cell  = parameter.CellLength
)

// harness wires the gameplay systems around a world and records every delivered event
type harness struct {
	t *testing.T

	world       *engine.World
	game        *engine.Game
	movement    *MovementSystem
	interaction *InteractionSystem
	actors      *ActorSystem

	delivered []event.GameEvent

	// levels backs the session loader, nil leaves completed levels in place
	levels map[string]string
}

func newHarness(t *testing.T, phys engine.Physics, inv engine.Inventory, withAI bool) *harness {
	t.Helper()
	res := engine.NewResource(nil, phys, inv, nil, 7)
	w := engine.NewWorld(res)

	var colliders Colliders
	if pw, ok := phys.(*physics.World); ok {
		colliders = pw
	}

	h := &harness{
		t:           t,
		world:       w,
		game:        engine.NewGame(w),
		movement:    NewMovementSystem(w),
		interaction: NewInteractionSystem(w),
		actors:      NewActorSystem(w, colliders),
	}

	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewTurnSystem(w, h.movement))
	w.AddSystem(h.interaction)
	w.AddSystem(NewCombatSystem(w))
	if withAI {
		w.AddSystem(NewEnemySystem(w))
	}
	w.AddSystem(h.movement)
	w.AddSystem(h.actors)
	w.AddSystem(NewSessionSystem(w, h.loadLevel))
	w.AddSystem(NewMessageSystem(w))

	for c := event.CategoryGame; c <= event.CategorySystemRemove; c++ {
		res.Event.Subscribe(c, func(ev event.GameEvent) {
			h.delivered = append(h.delivered, ev)
		})
	}
	return h
}

// load parses a level document, spawns it and runs the start tick
func (h *harness) load(doc string) {
	h.t.Helper()
	lvl, err := level.Parse([]byte(doc))
	if err != nil {
		h.t.Fatalf("Level parse failed: %v", err)
	}
	h.actors.Spawn(lvl)
	h.tick()
}

func (h *harness) loadLevel(name string) error {
	if h.levels == nil {
		return nil
	}
	doc, ok := h.levels[name]
	if !ok {
		return level.ErrLevelNotFound
	}
	lvl, err := level.Parse([]byte(doc))
	if err != nil {
		return err
	}
	h.actors.Spawn(lvl)
	return nil
}

func (h *harness) tick() {
	h.game.Tick(frame)
}

// settle ticks until the bus is quiet
func (h *harness) settle() {
	h.game.RunUntil(frame, 10, func() bool { return h.world.Resources.Event.Len() == 0 })
}

func (h *harness) command(cmd core.Command) {
	h.world.PushEvent(event.EventCommand, 0, &event.CommandPayload{Command: cmd})
	h.tick()
}

// runUntil ticks until cond holds, failing the test after max ticks
func (h *harness) runUntil(cond func() bool, max int) int {
	h.t.Helper()
	n := h.game.RunUntil(frame, max, cond)
	if !cond() {
		h.t.Fatalf("Condition not reached after %d ticks", max)
	}
	return n
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, ev := range h.delivered {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) pendingHas(t event.EventType) bool {
	for _, ev := range h.world.Resources.Event.Pending() {
		if ev.Type == t {
			return true
		}
	}
	return false
}

func (h *harness) player() core.Entity {
	h.t.Helper()
	p := firstPlayer(h.world)
	if p == 0 {
		h.t.Fatal("No player spawned")
	}
	return p
}

func (h *harness) first(kind core.Kind) core.Entity {
	for _, e := range h.world.Components.Actor.GetAllEntities() {
		if h.world.KindOf(e) == kind {
			return e
		}
	}
	return 0
}

func (h *harness) character(e core.Entity) component.CharacterComponent {
	h.t.Helper()
	c, ok := h.world.Components.Character.GetComponent(e)
	if !ok {
		h.t.Fatalf("Entity %d has no character", e)
	}
	return c
}

func (h *harness) turn() *engine.TurnState {
	return h.world.Resources.Turn
}

func (h *harness) hasMessage(text string) bool {
	for _, ev := range h.delivered {
		if ev.Type == event.EventMessage && event.MustPayload[*event.MessagePayload](ev).Text == text {
			return true
		}
	}
	return false
}

// spawnItem places an item outside of level loading
func (h *harness) spawnItem(pos vmath.Vec3F, item component.Item) core.Entity {
	e := h.world.CreateEntity()
	h.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindItem, Name: item.Name, Position: pos})
	h.world.Components.Item.SetComponent(e, component.ItemComponent{Item: item})
	h.world.PushEvent(event.EventActorSpawned, e, &event.ActorPayload{Kind: core.KindItem})
	return e
}

// ready reports whether the player may act and nothing is in flight
func (h *harness) ready() bool {
	res := h.world.Resources
	p := firstPlayer(h.world)
	if p == 0 || !res.Session.Playing() || !res.Turn.PlayerActs() || res.Event.Len() > 0 {
		return false
	}
	c, _ := h.world.Components.Character.GetComponent(p)
	return c.Idle()
}

func (h *harness) setHealth(e core.Entity, hp int) {
	c := h.character(e)
	c.Health = hp
	h.world.Components.Character.SetComponent(e, c)
}
