package system

import (
	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/level"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/physics"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// Colliders is the mutable side of the physics world
type Colliders interface {
	Add(e core.Entity, kind core.Kind, box physics.AABB)
	Remove(e core.Entity) bool
	Clear()
}

// ActorSystem owns entity lifecycle: level spawning and removal requests
type ActorSystem struct {
	world     *engine.World
	colliders Colliders
}

// NewActorSystem creates an ActorSystem
func NewActorSystem(world *engine.World, colliders Colliders) *ActorSystem {
	return &ActorSystem{world: world, colliders: colliders}
}

// Name returns the system's name
func (s *ActorSystem) Name() string {
	return "actor"
}

// Priority returns the system's priority
func (s *ActorSystem) Priority() int {
	return parameter.PriorityActor
}

// Update implements System interface (no tick-based logic)
func (s *ActorSystem) Update() {
	// No tick-based logic; all mutations via events
}

// Categories returns the event categories ActorSystem handles
func (s *ActorSystem) Categories() []event.Category {
	return []event.Category{event.CategorySystemRemove}
}

// HandleEvent processes actor events
func (s *ActorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventRemoveActor {
		return
	}
	if s.colliders != nil {
		s.colliders.Remove(ev.Sender)
	}
	s.world.DestroyEntity(ev.Sender)
	s.world.Resources.Log.Debug("actor removed", "entity", ev.Sender, "kind", event.MustPayload[*event.ActorPayload](ev).Kind)
}

// Spawn replaces the world contents with a level
// Player vitals carry over from the previous level
// Publishes Start, one ActorSpawned per interactive entity, then PlayerTurn
func (s *ActorSystem) Spawn(lvl *level.Level) {
	carried, hasCarried := s.carriedPlayer()

	s.world.Clear()
	if s.colliders != nil {
		s.colliders.Clear()
	}

	cfg := s.world.Resources.Config
	w := cfg.CellLength

	s.world.PushEvent(event.EventStart, 0, &event.LevelPayload{Name: lvl.Name})

	for _, cell := range lvl.Walls {
		e := s.world.CreateEntity()
		pos := cell.World(w)
		s.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindArchitecture, Glyph: level.GlyphWall, Position: pos})
		s.addCollider(e, core.KindArchitecture, pos)
	}

	player := s.world.CreateEntity()
	ppos := lvl.Player.World(w)
	pc := component.NewCharacter(ppos, lvl.Yaw, cfg.MoveSpeed, cfg.RotateSpeed,
		parameter.PlayerHealth, parameter.PlayerAttack, parameter.PlayerDefence)
	if hasCarried {
		pc.Health, pc.MaxHealth = carried.Health, carried.MaxHealth
		pc.Attack, pc.Defence = carried.Attack, carried.Defence
	}
	s.world.Components.Actor.SetComponent(player, component.ActorComponent{Kind: core.KindPlayer, Name: "you", Glyph: level.GlyphPlayer, Position: ppos})
	s.world.Components.Character.SetComponent(player, pc)
	s.spawned(player, core.KindPlayer)

	for _, g := range lvl.Gates {
		e := s.world.CreateEntity()
		pos := g.World(w)
		s.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindGate, Name: "gate", Glyph: level.GlyphGate, Position: pos})
		s.world.Components.Gate.SetComponent(e, component.GateComponent{KeyKind: component.ItemKey})
		s.addCollider(e, core.KindGate, pos)
		s.spawned(e, core.KindGate)
	}

	for _, en := range lvl.Enemies {
		e := s.world.CreateEntity()
		pos := en.Cell.World(w)
		s.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindEnemy, Name: en.Def.Name, Glyph: en.Glyph, Position: pos})
		s.world.Components.Character.SetComponent(e, component.NewCharacter(pos, 0, cfg.EnemyMoveSpeed, cfg.RotateSpeed,
			en.Def.Health, en.Def.Attack, en.Def.Defence))
		s.world.Components.Enemy.SetComponent(e, component.EnemyComponent{})
		s.spawned(e, core.KindEnemy)
	}

	for _, it := range lvl.Items {
		e := s.world.CreateEntity()
		pos := it.Cell.World(w)
		s.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindItem, Name: it.Item.Name, Glyph: it.Glyph, Position: pos})
		s.world.Components.Item.SetComponent(e, component.ItemComponent{Item: it.Item})
		s.spawned(e, core.KindItem)
	}

	for _, tr := range lvl.Triggers {
		e := s.world.CreateEntity()
		pos := tr.Cell.World(w)
		glyph := rune(level.GlyphExit)
		if tr.Action == component.TriggerWin {
			glyph = level.GlyphWin
		}
		s.world.Components.Actor.SetComponent(e, component.ActorComponent{Kind: core.KindTrigger, Glyph: glyph, Position: pos})
		s.world.Components.Trigger.SetComponent(e, component.TriggerComponent{Action: tr.Action, Next: tr.Next})
		s.spawned(e, core.KindTrigger)
	}

	s.world.PushEvent(event.EventPlayerTurn, player, &event.TurnPayload{})
	s.world.Resources.Log.Info("level spawned", "level", lvl.Name,
		"walls", len(lvl.Walls), "enemies", len(lvl.Enemies), "items", len(lvl.Items))
}

func (s *ActorSystem) spawned(e core.Entity, kind core.Kind) {
	s.world.PushEvent(event.EventActorSpawned, e, &event.ActorPayload{Kind: kind})
}

func (s *ActorSystem) addCollider(e core.Entity, kind core.Kind, pos vmath.Vec3F) {
	if s.colliders != nil {
		s.colliders.Add(e, kind, physics.CellBox(pos, s.world.Resources.Config.CellLength))
	}
}

func (s *ActorSystem) carriedPlayer() (component.CharacterComponent, bool) {
	p := firstPlayer(s.world)
	if p == 0 {
		return component.CharacterComponent{}, false
	}
	c, ok := s.world.Components.Character.GetComponent(p)
	if !ok || !c.Alive() {
		return component.CharacterComponent{}, false
	}
	return c, true
}
