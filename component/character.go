package component

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// CharacterComponent is the composed record for anything that walks the grid
// Player and enemy behavior differ only by the controller selected from the actor kind
type CharacterComponent struct {
	// Position is the current world position, snapped to cell centers between moves
	Position vmath.Vec3F
	// Up is the character up vector, always +Y on flat levels
	Up vmath.Vec3F
	// Yaw is the current heading in degrees, see vmath.YawLook
	Yaw float64

	// TargetPosition is the destination of the pending translation
	TargetPosition vmath.Vec3F
	// TargetYaw is the destination of the pending rotation
	TargetYaw float64

	// Translation is the unit direction of the pending translation, zero when idle
	Translation vmath.Vec3F
	// Rotation is the sign of the pending rotation: -1 left, +1 right, 0 idle
	Rotation float64
	// Traveled accumulates distance covered by the current translation
	Traveled float64
	// InMotion is set while a translation or rotation is being interpolated
	InMotion bool

	// Blocked holds world directions a raycast found impassable this turn
	Blocked mapset.Set[vmath.Dir]

	// MoveSpeed in world units per second
	MoveSpeed float64
	// RotateSpeed in degrees per second
	RotateSpeed float64

	Health    int
	MaxHealth int
	Attack    int
	Defence   int

	// Desired is the command set by the input collaborator, consumed by movement
	Desired core.Command
}

// NewCharacter creates an idle character at position facing yaw
func NewCharacter(pos vmath.Vec3F, yaw, moveSpeed, rotateSpeed float64, health, attack, defence int) CharacterComponent {
	return CharacterComponent{
		Position:       pos,
		Up:             vmath.Up3F,
		Yaw:            vmath.NormalizeYaw(yaw),
		TargetPosition: pos,
		TargetYaw:      vmath.NormalizeYaw(yaw),
		Blocked:        mapset.New[vmath.Dir](),
		MoveSpeed:      moveSpeed,
		RotateSpeed:    rotateSpeed,
		Health:         health,
		MaxHealth:      health,
		Attack:         attack,
		Defence:        defence,
	}
}

// Look returns the heading unit vector
func (c CharacterComponent) Look() vmath.Vec3F {
	return vmath.YawLook(c.Yaw)
}

// Right returns the right unit vector derived from look and up
func (c CharacterComponent) Right() vmath.Vec3F {
	return vmath.V3FRight(c.Look(), c.Up)
}

// Facing returns the snapped grid direction of the heading
func (c CharacterComponent) Facing() vmath.Dir {
	return vmath.DirOf(c.Look())
}

// TranslationPending reports whether a move has been accepted but not completed
func (c CharacterComponent) TranslationPending() bool {
	return c.Translation != vmath.Zero3F
}

// RotationPending reports whether a turn has been accepted but not completed
func (c CharacterComponent) RotationPending() bool {
	return c.Rotation != 0
}

// Idle reports whether the character can accept a new command
func (c CharacterComponent) Idle() bool {
	return !c.InMotion && !c.TranslationPending() && !c.RotationPending()
}

// Alive reports positive health
func (c CharacterComponent) Alive() bool {
	return c.Health > 0
}

// Direction resolves a translation command to a world grid direction
// Non-translation commands yield the zero Dir
func (c CharacterComponent) Direction(cmd core.Command) vmath.Dir {
	switch cmd {
	case core.CmdForward:
		return vmath.DirOf(c.Look())
	case core.CmdBackward:
		return vmath.DirOf(c.Look()).Neg()
	case core.CmdStrafeRight:
		return vmath.DirOf(c.Right())
	case core.CmdStrafeLeft:
		return vmath.DirOf(c.Right()).Neg()
	}
	return vmath.Dir{}
}
