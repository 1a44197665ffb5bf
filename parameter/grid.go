package parameter

import "time"

// Grid geometry
const (
	// CellLength is the edge of one grid cell in world units
	// Used as movement target magnitude, raycast length and adjacency threshold
	CellLength = 254.0

	// AwarenessCells is the awareness radius in cells
	AwarenessCells = 2

	// LinearEpsilon is the arrival tolerance for translations (world units)
	LinearEpsilon = 10.0

	// AngularEpsilon is the arrival tolerance for rotations (degrees)
	AngularEpsilon = 5.0

	// ExactMatchTolerance treats two positions as overlapping
	ExactMatchTolerance = 1.0

	// TurnAngle is the yaw change of a single turn command (degrees)
	TurnAngle = 90.0
)

// Motion
const (
	// MoveSpeed is the default translation speed (world units/sec), four cells per second
	MoveSpeed = CellLength * 4

	// RotateSpeed is the default rotation speed (degrees/sec)
	RotateSpeed = 360.0

	// EnemyMoveSpeed is slower than the player so enemy steps remain readable
	EnemyMoveSpeed = CellLength * 3
)

// Timing
const (
	// FrameRate is the default simulation and render rate
	FrameRate = 60

	// EnemyThinkDelay is the per-enemy pause before acting in its turn
	EnemyThinkDelay = 250 * time.Millisecond
)
