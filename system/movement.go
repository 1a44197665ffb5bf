package system

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// MovementSystem interpolates grid moves and turns for every character
// Rotation and translation never advance in the same frame, rotation first
type MovementSystem struct {
	world *engine.World
}

// NewMovementSystem creates a MovementSystem
func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Name returns the system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update interpolates pending moves and turns of every character
func (s *MovementSystem) Update() {
	res := s.world.Resources
	if !res.Session.Playing() {
		return
	}
	dt := res.Time.Seconds()
	store := s.world.Components.Character

	for _, e := range store.GetAllEntities() {
		ctl := ControllerFor(s.world.KindOf(e))
		if ctl == nil {
			continue
		}
		c, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		s.accept(e, &c, ctl)
		s.step(e, &c, ctl, dt)
		store.SetComponent(e, c)
	}
}

// accept turns a desired command into a target when the character is idle and owns the turn
func (s *MovementSystem) accept(e core.Entity, c *component.CharacterComponent, ctl Controller) {
	cmd := c.Desired
	if cmd == core.CmdNone {
		return
	}
	c.Desired = core.CmdNone

	if !c.Idle() {
		s.world.Resources.Log.Debug("command dropped while in motion", "entity", e, "command", cmd)
		return
	}
	if s.world.Resources.Turn.Owner != ctl.Side() {
		return
	}

	switch {
	case cmd.IsRotation():
		sign := 1.0
		if cmd == core.CmdTurnLeft {
			sign = -1.0
		}
		c.Rotation = sign
		c.TargetYaw = vmath.NormalizeYaw(c.Yaw + sign*parameter.TurnAngle)
	case cmd.IsTranslation():
		dir := c.Direction(cmd)
		if dir.IsZero() {
			return
		}
		c.Translation = dir.Vec()
		c.TargetPosition = vmath.V3FAdd(c.Position, vmath.V3FScale(c.Translation, s.world.Resources.Config.CellLength))
		c.Traveled = 0
	}
}

// step advances one frame of the pending rotation or translation
func (s *MovementSystem) step(e core.Entity, c *component.CharacterComponent, ctl Controller, dt float64) {
	cfg := s.world.Resources.Config

	if c.RotationPending() {
		delta := vmath.YawDelta(c.Yaw, c.TargetYaw)
		if math.Abs(delta) <= cfg.AngularEpsilon {
			c.Yaw = c.TargetYaw
			c.Rotation = 0
			c.InMotion = false
			return
		}
		turn := math.Min(dt*c.RotateSpeed, math.Abs(delta))
		c.Yaw = vmath.NormalizeYaw(c.Yaw + turn*c.Rotation)
		c.InMotion = true
		return
	}

	if !c.TranslationPending() {
		return
	}

	if ctl.CannotMove(s.world.Resources.Turn) {
		s.reject(e, c, ctl, event.RejectCombat)
		return
	}
	if c.Blocked.Has(vmath.DirOf(c.Translation)) {
		s.reject(e, c, ctl, event.RejectBlocked)
		return
	}

	remaining := vmath.V3FDistance(c.Position, c.TargetPosition)
	if remaining <= cfg.LinearEpsilon {
		s.arrive(e, c, ctl)
		return
	}

	advance := math.Min(dt*c.MoveSpeed, remaining)
	c.Position = vmath.V3FAdd(c.Position, vmath.V3FScale(c.Translation, advance))
	c.Traveled += advance
	c.InMotion = true

	if remaining-advance <= cfg.LinearEpsilon {
		s.arrive(e, c, ctl)
	}
}

// arrive snaps to target and hands the turn to the other side
func (s *MovementSystem) arrive(e core.Entity, c *component.CharacterComponent, ctl Controller) {
	c.Position = c.TargetPosition
	c.Translation = vmath.Zero3F
	c.InMotion = false
	s.world.PushEvent(ctl.Arrival(), e, &event.TurnPayload{Turn: s.world.Resources.Turn.Turn})
	s.world.Resources.Log.Debug("arrived", "entity", e, "side", ctl.Side(), "traveled", c.Traveled)
}

// reject cancels the pending translation in place
func (s *MovementSystem) reject(e core.Entity, c *component.CharacterComponent, ctl Controller, reason event.RejectReason) {
	dir := vmath.DirOf(c.Translation)
	c.Translation = vmath.Zero3F
	c.TargetPosition = c.Position
	c.InMotion = false

	s.world.PushEvent(event.EventMoveRejected, e, &event.MoveRejectedPayload{Reason: reason, Direction: dir})
	if ctl.Feedback() {
		switch reason {
		case event.RejectCombat:
			s.world.PushMessage(e, "You are locked in combat")
		default:
			s.world.PushMessage(e, "Something blocks the way")
		}
		s.world.PushSound(e, core.CueBump)
	}
}

// UpdateCollision casts one-cell rays forward, backward, right and left
// Directions hitting an impassable collider are added to the blocked set
func (s *MovementSystem) UpdateCollision(e core.Entity) {
	store := s.world.Components.Character
	c, ok := store.GetComponent(e)
	if !ok {
		return
	}
	physics := s.world.Resources.Physics
	if physics == nil {
		return
	}

	forward := c.Facing()
	right := vmath.DirOf(c.Right())
	length := s.world.Resources.Config.CellLength

	for _, d := range [4]vmath.Dir{forward, forward.Neg(), right, right.Neg()} {
		if d.IsZero() {
			continue
		}
		if hit, _, _ := physics.SegmentIntersect(c.Position, d.Vec(), length, core.Impassable); hit {
			c.Blocked.Put(d)
		}
	}
	store.SetComponent(e, c)
}

// ResetCollision empties the blocked set
func (s *MovementSystem) ResetCollision(e core.Entity) {
	store := s.world.Components.Character
	c, ok := store.GetComponent(e)
	if !ok {
		return
	}
	c.Blocked = mapset.New[vmath.Dir]()
	store.SetComponent(e, c)
}
