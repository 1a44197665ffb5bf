package system

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// CombatSystem resolves melee exchanges between the player and the engaged enemy
// Every resolved action hands the turn to the other side
type CombatSystem struct {
	world *engine.World

	encounter ulid.ULID
	player    core.Entity
}

// NewCombatSystem creates a CombatSystem
func NewCombatSystem(world *engine.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Name returns the system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// Update implements System interface (no tick-based logic)
func (s *CombatSystem) Update() {
	// No tick-based logic; all mutations via events
}

// Categories returns the event categories CombatSystem handles
func (s *CombatSystem) Categories() []event.Category {
	return []event.Category{event.CategoryCombat}
}

// HandleEvent processes combat events
func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventInitiateBattle:
		p := event.MustPayload[*event.BattlePayload](ev)
		s.encounter = p.Encounter
		s.player = p.Player
		s.world.PushMessage(p.Enemy, fmt.Sprintf("The %s attacks", actorName(s.world, p.Enemy)))
		s.world.PushSound(p.Enemy, core.CueBattle)

	case event.EventPlayerAttack:
		s.playerAttack(ev.Sender)

	case event.EventPlayerDodge:
		s.playerDodge(ev.Sender)

	case event.EventEnemyStrike:
		s.enemyStrike(ev.Sender)

	case event.EventCombatEnded:
		p := event.MustPayload[*event.CombatEndedPayload](ev)
		s.world.Resources.Log.Info("combat ended", "encounter", s.encounter.String(), "victor", p.Victor, "escaped", p.Escaped)
		s.encounter = ulid.ULID{}
	}
}

// Damage returns attack minus defence with a floor
func Damage(attack, defence int) int {
	return max(parameter.MinimumDamage, attack-defence)
}

func (s *CombatSystem) playerAttack(player core.Entity) {
	turn := s.world.Resources.Turn
	if !turn.InCombat || !turn.PlayerActs() {
		return
	}
	store := s.world.Components.Character
	pc, ok := store.GetComponent(player)
	if !ok {
		return
	}
	enemy := turn.Opponent
	ec, ok := store.GetComponent(enemy)
	if !ok || !adjacent(s.world, player, enemy) {
		s.world.Resources.Log.Debug("attack on non-adjacent opponent ignored", "player", player, "enemy", enemy)
		return
	}

	dmg := Damage(pc.Attack, ec.Defence)
	ec.Health -= dmg
	store.SetComponent(enemy, ec)

	name := actorName(s.world, enemy)
	s.world.PushEvent(event.EventDamage, player, &event.DamagePayload{Attacker: player, Target: enemy, Amount: dmg, Remaining: ec.Health})
	s.world.PushSound(player, core.CueHit)

	if !ec.Alive() {
		turn.InCombat = false
		turn.Opponent = 0
		turn.Dodged = false
		s.world.PushMessage(enemy, fmt.Sprintf("You slay the %s", name))
		s.world.PushEvent(event.EventRemoveActor, enemy, &event.ActorPayload{Kind: core.KindEnemy})
		s.world.PushEvent(event.EventCombatEnded, player, &event.CombatEndedPayload{Victor: core.SidePlayer})
	} else {
		s.world.PushMessage(enemy, fmt.Sprintf("You hit the %s for %d", name, dmg))
	}
	s.world.PushEvent(event.EventEnemyTurn, player, &event.TurnPayload{Turn: turn.Turn})
}

func (s *CombatSystem) playerDodge(player core.Entity) {
	turn := s.world.Resources.Turn
	if !turn.InCombat || !turn.PlayerActs() || turn.Dodged {
		return
	}
	if s.world.Resources.Rand.Float64() < s.world.Resources.Config.DodgeChance {
		turn.Dodged = true
		s.world.PushMessage(player, "You slip free, move away")
		s.world.PushSound(player, core.CueDodge)
		return
	}
	s.world.PushMessage(player, "You fail to dodge")
	s.world.PushSound(player, core.CueMiss)
	s.world.PushEvent(event.EventEnemyTurn, player, &event.TurnPayload{Turn: turn.Turn})
}

func (s *CombatSystem) enemyStrike(enemy core.Entity) {
	turn := s.world.Resources.Turn
	store := s.world.Components.Character
	ec, eok := store.GetComponent(enemy)
	pc, pok := store.GetComponent(s.player)
	if !turn.InCombat || enemy != turn.Opponent || !eok || !pok || !ec.Alive() || !adjacent(s.world, enemy, s.player) {
		s.world.PushEvent(event.EventPlayerTurn, enemy, &event.TurnPayload{Turn: turn.Turn})
		return
	}

	dmg := Damage(ec.Attack, pc.Defence)
	pc.Health -= dmg
	store.SetComponent(s.player, pc)

	s.world.PushEvent(event.EventDamage, enemy, &event.DamagePayload{Attacker: enemy, Target: s.player, Amount: dmg, Remaining: pc.Health})
	s.world.PushMessage(enemy, fmt.Sprintf("The %s hits you for %d", actorName(s.world, enemy), dmg))
	s.world.PushSound(enemy, core.CueHurt)

	if !pc.Alive() {
		s.world.PushMessage(s.player, "You die")
		s.world.PushSound(s.player, core.CueDefeat)
		s.world.PushEvent(event.EventGameOver, s.player, nil)
		return
	}
	s.world.PushEvent(event.EventPlayerTurn, enemy, &event.TurnPayload{Turn: turn.Turn})
}
