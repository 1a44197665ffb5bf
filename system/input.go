package system

import (
	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// InputSystem maps Keybind commands to player intents
// Movement commands become the player's desired command, combat and item commands become events
type InputSystem struct {
	world *engine.World
}

// NewInputSystem creates an InputSystem
func NewInputSystem(world *engine.World) *InputSystem {
	return &InputSystem{world: world}
}

// Name returns the system's name
func (s *InputSystem) Name() string {
	return "input"
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update implements System interface (no tick-based logic)
func (s *InputSystem) Update() {
	// No tick-based logic; all mutations via events
}

// Categories returns the event categories InputSystem handles
func (s *InputSystem) Categories() []event.Category {
	return []event.Category{event.CategoryKeybind}
}

// HandleEvent processes input events
func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventCommand {
		return
	}
	cmd := event.MustPayload[*event.CommandPayload](ev).Command
	session := s.world.Resources.Session

	// Menu commands bypass turn ownership
	switch cmd {
	case core.CmdNone:
		return
	case core.CmdQuit:
		s.world.PushEvent(event.EventQuit, 0, nil)
		return
	case core.CmdPause:
		switch session.Phase {
		case engine.PhasePlaying:
			s.world.PushEvent(event.EventPause, 0, nil)
		case engine.PhasePaused:
			s.world.PushEvent(event.EventResume, 0, nil)
		}
		return
	}

	turn := s.world.Resources.Turn
	if !session.Playing() || !turn.PlayerActs() {
		s.world.Resources.Log.Debug("command ignored", "command", cmd, "owner", turn.Owner, "phase", session.Phase)
		return
	}

	player := firstPlayer(s.world)
	if player == 0 {
		return
	}
	store := s.world.Components.Character
	c, _ := store.GetComponent(player)

	switch {
	case cmd.IsTranslation() || cmd.IsRotation():
		c.Desired = cmd
		store.SetComponent(player, c)
		return
	case !c.Idle():
		return
	}

	switch cmd {
	case core.CmdAttack:
		if !turn.InCombat {
			s.world.PushMessage(player, "There is nothing to attack")
			return
		}
		s.world.PushEvent(event.EventPlayerAttack, player, nil)

	case core.CmdDodge:
		if !turn.InCombat {
			s.world.PushMessage(player, "There is nothing to dodge")
			return
		}
		s.world.PushEvent(event.EventPlayerDodge, player, nil)

	case core.CmdWait:
		s.world.PushMessage(player, "You wait")
		s.world.PushEvent(event.EventEnemyTurn, player, &event.TurnPayload{Turn: turn.Turn})

	case core.CmdDrink:
		s.drink(player, &c)
	}
}

// drink consumes a potion and ends the player's turn
func (s *InputSystem) drink(player core.Entity, c *component.CharacterComponent) {
	inv := s.world.Resources.Inventory
	if inv == nil || !inv.HasItem(component.ItemPotion) {
		s.world.PushMessage(player, "You have no potion")
		return
	}
	potion := inv.UseItem(component.ItemPotion)
	c.Health = min(c.MaxHealth, c.Health+potion.Value)
	s.world.Components.Character.SetComponent(player, *c)

	s.world.PushEvent(event.EventItemRemoved, player, &event.ItemPayload{Item: potion})
	s.world.PushMessage(player, "You drink the "+potion.Name)
	s.world.PushEvent(event.EventEnemyTurn, player, &event.TurnPayload{Turn: s.world.Resources.Turn.Turn})
}
