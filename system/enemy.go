package system

import (
	"math"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// EnemySystem plays the enemy side of each turn
//
// One enemy acts per enemy turn: the engaged opponent strikes during combat,
// otherwise the first aware enemy with a legal approach step moves one cell.
// Each enemy paces itself with its own think timer.
type EnemySystem struct {
	world *engine.World

	// pending is set when an enemy turn starts and cleared once an action is issued
	pending bool
	// mover is the enemy acting this turn
	mover core.Entity
}

// NewEnemySystem creates an EnemySystem
func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{world: world}
}

// Name returns the system's name
func (s *EnemySystem) Name() string {
	return "enemy"
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

// Categories returns the event categories EnemySystem handles
func (s *EnemySystem) Categories() []event.Category {
	return []event.Category{event.CategoryGame, event.CategoryMenu}
}

// HandleEvent processes enemy events
func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStart:
		s.pending = false
		s.release()

	case event.EventEnemyTurn:
		s.pending = true
		s.release()

	case event.EventPlayerTurn:
		s.pending = false
		s.release()

	case event.EventMoveRejected:
		// A rejected enemy step still ends the enemy turn
		if ev.Sender == s.mover && s.world.KindOf(ev.Sender) == core.KindEnemy {
			s.release()
			s.world.PushEvent(event.EventPlayerTurn, ev.Sender, &event.TurnPayload{Turn: s.world.Resources.Turn.Turn})
		}
	}
}

// release drops the current mover and its leftover think time
func (s *EnemySystem) release() {
	if s.mover == 0 {
		return
	}
	if ec, ok := s.world.Components.Enemy.GetComponent(s.mover); ok {
		ec.ThinkRemaining = 0
		s.world.Components.Enemy.SetComponent(s.mover, ec)
	}
	s.mover = 0
}

// Update runs the active mover's think timer and issues its action
func (s *EnemySystem) Update() {
	res := s.world.Resources
	if !s.pending || !res.Session.Playing() || res.Turn.Owner != core.SideEnemy {
		return
	}

	if s.mover == 0 {
		if res.Turn.InCombat {
			s.mover = res.Turn.Opponent
		} else {
			s.mover = s.chooseMover()
		}
		if s.mover == 0 || !s.world.Components.Enemy.HasEntity(s.mover) {
			s.mover = 0
			s.pending = false
			s.world.PushEvent(event.EventPlayerTurn, 0, &event.TurnPayload{Turn: res.Turn.Turn})
			return
		}
		ec, _ := s.world.Components.Enemy.GetComponent(s.mover)
		ec.ThinkRemaining = res.Config.EnemyThinkDelay
		s.world.Components.Enemy.SetComponent(s.mover, ec)
	}

	ec, ok := s.world.Components.Enemy.GetComponent(s.mover)
	if !ok {
		s.mover = 0
		return
	}
	ec.ThinkRemaining -= res.Time.DeltaTime
	s.world.Components.Enemy.SetComponent(s.mover, ec)
	if ec.ThinkRemaining > 0 {
		return
	}

	s.pending = false
	if res.Turn.InCombat {
		s.world.PushEvent(event.EventEnemyStrike, s.mover, nil)
		return
	}
	s.step(s.mover)
}

// chooseMover returns the first aware enemy that has a legal step, zero if none
func (s *EnemySystem) chooseMover() core.Entity {
	awareness := s.world.Resources.Config.Awareness() + s.world.Resources.Config.ExactTolerance

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		c, ok := s.world.Components.Character.GetComponent(e)
		if !ok || !c.Alive() {
			continue
		}
		target, dist := s.nearestPlayer(c.Position)
		if target == 0 {
			continue
		}

		ec, _ := s.world.Components.Enemy.GetComponent(e)
		if !ec.Aware && dist <= awareness {
			ec.Aware = true
			s.world.Components.Enemy.SetComponent(e, ec)
		}
		if !ec.Aware {
			continue
		}
		if !s.approach(e).IsZero() {
			return e
		}
	}
	return 0
}

// nearestPlayer returns the closest player and its xz distance
func (s *EnemySystem) nearestPlayer(from vmath.Vec3F) (core.Entity, float64) {
	best := core.Entity(0)
	bestDist := math.Inf(1)
	for _, p := range charactersOf(s.world, core.KindPlayer) {
		pos, _ := s.world.PositionOf(p)
		if d := vmath.V3FDistanceXZ(from, pos); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist
}

// approach picks a single-axis step toward the nearest player
// The dominant axis is tried first, the minor axis second, zero Dir if both are unavailable
func (s *EnemySystem) approach(e core.Entity) vmath.Dir {
	c, _ := s.world.Components.Character.GetComponent(e)
	target, _ := s.nearestPlayer(c.Position)
	if target == 0 {
		return vmath.Dir{}
	}
	tpos, _ := s.world.PositionOf(target)
	delta := vmath.V3FSub(tpos, c.Position)

	major := vmath.DirOf(delta)
	var minor vmath.Dir
	if major.X != 0 {
		minor = vmath.DirOf(vmath.Vec3F{Z: delta.Z})
	} else {
		minor = vmath.DirOf(vmath.Vec3F{X: delta.X})
	}

	cell := s.world.Resources.Config.CellLength
	for _, d := range [2]vmath.Dir{major, minor} {
		if d.IsZero() || c.Blocked.Has(d) {
			continue
		}
		dest := vmath.V3FAdd(c.Position, vmath.V3FScale(d.Vec(), cell))
		if occupied(s.world, dest, e) {
			continue
		}
		return d
	}
	return vmath.Dir{}
}

// step faces the approach direction and hands a forward command to movement
func (s *EnemySystem) step(e core.Entity) {
	d := s.approach(e)
	if d.IsZero() {
		s.release()
		s.world.PushEvent(event.EventPlayerTurn, e, &event.TurnPayload{Turn: s.world.Resources.Turn.Turn})
		return
	}
	store := s.world.Components.Character
	c, _ := store.GetComponent(e)
	c.Yaw = vmath.LookYaw(d.Vec())
	c.TargetYaw = c.Yaw
	c.Desired = core.CmdForward
	store.SetComponent(e, c)
	s.world.Resources.Log.Debug("enemy step", "entity", e, "dir", d.String())
}
