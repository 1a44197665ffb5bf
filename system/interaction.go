package system

import (
	"math"

	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// InteractionSystem detects proximity interactions on every turn change
//
// Scan order per player: enemies, items, gates, triggers, then listener update
// Item, gate and trigger scans stop at the first match in insertion order
// Category sets change only from spawn and removal events, so scans never mutate what they iterate
type InteractionSystem struct {
	world *engine.World

	players  *engine.EntitySet
	enemies  *engine.EntitySet
	items    *engine.EntitySet
	gates    *engine.EntitySet
	triggers *engine.EntitySet
}

// NewInteractionSystem creates an InteractionSystem
func NewInteractionSystem(world *engine.World) *InteractionSystem {
	return &InteractionSystem{
		world:    world,
		players:  engine.NewEntitySet(),
		enemies:  engine.NewEntitySet(),
		items:    engine.NewEntitySet(),
		gates:    engine.NewEntitySet(),
		triggers: engine.NewEntitySet(),
	}
}

// Name returns the system's name
func (s *InteractionSystem) Name() string {
	return "interaction"
}

// Priority returns the system's priority
func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

// Update implements System interface (no tick-based logic)
func (s *InteractionSystem) Update() {
	// No tick-based logic; all mutations via events
}

// Categories returns the event categories InteractionSystem handles
func (s *InteractionSystem) Categories() []event.Category {
	return []event.Category{event.CategoryGame, event.CategorySystemRemove, event.CategoryMenu}
}

// HandleEvent processes interaction events
func (s *InteractionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStart:
		s.clear()

	case event.EventActorSpawned:
		p := event.MustPayload[*event.ActorPayload](ev)
		if set := s.setFor(p.Kind); set != nil {
			set.Add(ev.Sender)
		}

	case event.EventRemoveActor:
		p := event.MustPayload[*event.ActorPayload](ev)
		if set := s.setFor(p.Kind); set != nil {
			set.Remove(ev.Sender)
		}

	case event.EventPlayerTurn, event.EventEnemyTurn:
		s.scan()
	}
}

// Count returns the size of a category set
func (s *InteractionSystem) Count(kind core.Kind) int {
	if set := s.setFor(kind); set != nil {
		return set.Len()
	}
	return 0
}

func (s *InteractionSystem) setFor(kind core.Kind) *engine.EntitySet {
	switch kind {
	case core.KindPlayer:
		return s.players
	case core.KindEnemy:
		return s.enemies
	case core.KindItem:
		return s.items
	case core.KindGate:
		return s.gates
	case core.KindTrigger:
		return s.triggers
	}
	return nil
}

func (s *InteractionSystem) clear() {
	s.players.Clear()
	s.enemies.Clear()
	s.items.Clear()
	s.gates.Clear()
	s.triggers.Clear()
}

func (s *InteractionSystem) scan() {
	turn := s.world.Resources.Turn
	wasInCombat := turn.InCombat

	inCombat := false
	turn.NearItem, turn.NearGate, turn.NearTrigger = false, false, false

	for _, p := range s.players.All() {
		pos, ok := s.world.PositionOf(p)
		if !ok {
			continue
		}
		if s.scanEnemies(p, pos) {
			inCombat = true
		}
		s.scanItems(p, pos)
		s.scanGates(p, pos)
		s.scanTriggers(p, pos)
		s.updateListener(p)
	}

	turn.InCombat = inCombat
	if wasInCombat && !inCombat {
		turn.Opponent = 0
		turn.Dodged = false
		s.world.PushEvent(event.EventCombatEnded, 0, &event.CombatEndedPayload{Victor: core.SidePlayer, Escaped: true})
		s.world.PushMessage(0, "You escape")
	}
}

// scanEnemies returns whether any enemy is adjacent to player
// Combat stays bound to the current opponent while it remains adjacent, otherwise it rebinds to the first adjacent enemy
func (s *InteractionSystem) scanEnemies(player core.Entity, pos vmath.Vec3F) bool {
	cfg := s.world.Resources.Config
	turn := s.world.Resources.Turn
	var first core.Entity
	opponentAdjacent := false

	for _, e := range s.enemies.All() {
		epos, ok := s.world.PositionOf(e)
		if !ok {
			continue
		}
		d := vmath.V3FDistanceXZ(pos, epos)

		switch {
		case d <= cfg.ExactTolerance:
			s.world.Resources.Log.Debug("degenerate enemy overlap", "player", player, "enemy", e)

		case d <= cfg.CellLength+cfg.ExactTolerance:
			if first == 0 {
				first = e
			}
			if e == turn.Opponent {
				opponentAdjacent = true
			}
			s.block(player, vmath.DirOf(vmath.V3FSub(epos, pos)))

		case math.Abs(d-2*cfg.CellLength) <= cfg.ExactTolerance:
			s.world.PushSound3D(e, core.CueGrowl, epos)
		}
	}

	if first != 0 && !opponentAdjacent {
		s.initiate(player, first)
	}
	return first != 0
}

func (s *InteractionSystem) initiate(player, enemy core.Entity) {
	turn := s.world.Resources.Turn
	turn.Opponent = enemy
	id := ulid.Make()
	s.world.PushEvent(event.EventInitiateBattle, enemy, &event.BattlePayload{
		Encounter: id,
		Player:    player,
		Enemy:     enemy,
	})
	s.world.Resources.Log.Info("combat initiated", "encounter", id.String(), "player", player, "enemy", enemy)
}

// block adds a world direction to a character's blocked set
func (s *InteractionSystem) block(e core.Entity, d vmath.Dir) {
	if d.IsZero() {
		return
	}
	store := s.world.Components.Character
	c, ok := store.GetComponent(e)
	if !ok {
		return
	}
	c.Blocked.Put(d)
	store.SetComponent(e, c)
}

// unblock removes a world direction from a character's blocked set
func (s *InteractionSystem) unblock(e core.Entity, d vmath.Dir) {
	store := s.world.Components.Character
	c, ok := store.GetComponent(e)
	if !ok {
		return
	}
	c.Blocked.Remove(d)
	store.SetComponent(e, c)
}

func (s *InteractionSystem) scanItems(player core.Entity, pos vmath.Vec3F) {
	cfg := s.world.Resources.Config

	for _, e := range s.items.All() {
		it, ok := s.world.Components.Item.GetComponent(e)
		if !ok {
			continue
		}
		ipos, _ := s.world.PositionOf(e)
		d := vmath.V3FDistanceXZ(pos, ipos)

		if d <= cfg.ExactTolerance {
			s.pickup(player, e, it.Item)
			return
		}
		if d <= cfg.CellLength+cfg.ExactTolerance {
			s.world.Resources.Turn.NearItem = true
			s.world.PushSound3D(e, core.CueSparkle, ipos)
			return
		}
	}
}

func (s *InteractionSystem) pickup(player, e core.Entity, item component.Item) {
	if inv := s.world.Resources.Inventory; inv != nil {
		inv.AddItem(item)
	}
	s.world.PushEvent(event.EventItemAdded, e, &event.ItemPayload{Item: item})
	s.world.PushEvent(event.EventRemoveActor, e, &event.ActorPayload{Kind: core.KindItem})
	s.world.PushMessage(player, "You pick up the "+item.Name)
	s.world.PushSound(player, core.CuePickup)
}

func (s *InteractionSystem) scanGates(player core.Entity, pos vmath.Vec3F) {
	cfg := s.world.Resources.Config

	for _, e := range s.gates.All() {
		gate, ok := s.world.Components.Gate.GetComponent(e)
		if !ok {
			continue
		}
		gpos, _ := s.world.PositionOf(e)
		d := vmath.V3FDistanceXZ(pos, gpos)

		if d <= cfg.ExactTolerance {
			s.world.Resources.Log.Debug("degenerate gate overlap", "player", player, "gate", e)
			return
		}
		if d > cfg.CellLength+cfg.ExactTolerance {
			continue
		}

		inv := s.world.Resources.Inventory
		if inv != nil && inv.HasItem(gate.KeyKind) {
			key := inv.UseItem(gate.KeyKind)
			s.world.PushEvent(event.EventItemRemoved, player, &event.ItemPayload{Item: key})
			s.world.PushEvent(event.EventRemoveActor, e, &event.ActorPayload{Kind: core.KindGate})
			// The gate ray was cast before this scan
			s.unblock(player, vmath.DirOf(vmath.V3FSub(gpos, pos)))
			s.world.PushEvent(event.EventGateUnlocked, e, &event.GatePayload{Gate: e, Player: player})
			s.world.PushMessage(player, "The "+key.Name+" unlocks the gate")
			s.world.PushSound(player, core.CueUnlock)
			return
		}

		s.world.Resources.Turn.NearGate = true
		s.world.PushMessage(player, "You need a key")
		s.world.PushSound(player, core.CueLocked)
		return
	}
}

func (s *InteractionSystem) scanTriggers(player core.Entity, pos vmath.Vec3F) {
	cfg := s.world.Resources.Config

	for _, e := range s.triggers.All() {
		tr, ok := s.world.Components.Trigger.GetComponent(e)
		if !ok {
			continue
		}
		tpos, _ := s.world.PositionOf(e)
		d := vmath.V3FDistanceXZ(pos, tpos)
		if d <= cfg.CellLength+cfg.ExactTolerance {
			s.world.Resources.Turn.NearTrigger = true
		}
		if d > cfg.ExactTolerance {
			continue
		}

		switch tr.Action {
		case component.TriggerWin:
			s.world.PushEvent(event.EventGameWon, e, nil)
			s.world.PushSound(player, core.CueVictory)
		default:
			s.world.PushEvent(event.EventLevelComplete, e, &event.LevelPayload{Name: tr.Next})
		}
		return
	}
}

func (s *InteractionSystem) updateListener(player core.Entity) {
	c, ok := s.world.Components.Character.GetComponent(player)
	if !ok {
		return
	}
	s.world.PushEvent(event.EventListenerMoved, player, &event.ListenerPayload{Position: c.Position, Look: c.Look()})
}
