package system

import (
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// TurnSystem owns turn ownership and the per-turn collision refresh
// Must be registered before systems that read Owner on the same turn event
type TurnSystem struct {
	world    *engine.World
	movement *MovementSystem
}

// NewTurnSystem creates a TurnSystem
func NewTurnSystem(world *engine.World, movement *MovementSystem) *TurnSystem {
	return &TurnSystem{world: world, movement: movement}
}

// Name returns the system's name
func (s *TurnSystem) Name() string {
	return "turn"
}

// Priority returns the system's priority
func (s *TurnSystem) Priority() int {
	return parameter.PriorityTurn
}

// Update implements System interface (no tick-based logic)
func (s *TurnSystem) Update() {
	// No tick-based logic; all mutations via events
}

// Categories returns the event categories TurnSystem handles
func (s *TurnSystem) Categories() []event.Category {
	return []event.Category{event.CategoryGame, event.CategoryMenu}
}

// HandleEvent processes turn events
func (s *TurnSystem) HandleEvent(ev event.GameEvent) {
	turn := s.world.Resources.Turn

	switch ev.Type {
	case event.EventStart:
		turn.Reset()

	case event.EventPlayerTurn:
		turn.Owner = core.SidePlayer
		turn.Turn++
		s.refresh(core.KindPlayer)

	case event.EventEnemyTurn:
		turn.Owner = core.SideEnemy
		turn.Turn++
		turn.Dodged = false
		s.refresh(core.KindEnemy)
	}
}

// refresh recomputes blocked sets for the side starting its turn
func (s *TurnSystem) refresh(kind core.Kind) {
	for _, e := range charactersOf(s.world, kind) {
		s.movement.ResetCollision(e)
		s.movement.UpdateCollision(e)
	}
	s.world.Resources.Log.Debug("turn", "owner", s.world.Resources.Turn.Owner, "turn", s.world.Resources.Turn.Turn)
}
