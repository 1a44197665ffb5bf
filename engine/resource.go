package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	// World Resource
	Time    *TimeResource
	Config  *ConfigResource
	Turn    *TurnState
	Session *SessionState
	Event   *event.Bus

	// Collaborators
	Physics   Physics
	Inventory Inventory

	// Ambient
	Log      *slog.Logger
	Rand     *rand.Rand
	Messages *MessageLog
}

// === World Resources ===

// TimeResource wraps time data for systems, updated at the start of each tick
type TimeResource struct {
	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration
	// Elapsed is the accumulated simulated time
	Elapsed time.Duration
	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update advances the clock by dt
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// Seconds returns DeltaTime as float seconds for interpolation
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ConfigResource holds grid and pacing tunables resolved from config
type ConfigResource struct {
	CellLength float64
	// AwarenessCells is the enemy awareness radius in cells
	AwarenessCells int
	LinearEpsilon  float64
	AngularEpsilon float64
	// ExactTolerance is the distance under which two positions are the same cell
	ExactTolerance float64

	MoveSpeed       float64
	RotateSpeed     float64
	EnemyMoveSpeed  float64
	EnemyThinkDelay time.Duration

	DodgeChance float64
}

// DefaultConfigResource returns the compiled-in tunables
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		CellLength:      parameter.CellLength,
		AwarenessCells:  parameter.AwarenessCells,
		LinearEpsilon:   parameter.LinearEpsilon,
		AngularEpsilon:  parameter.AngularEpsilon,
		ExactTolerance:  parameter.ExactMatchTolerance,
		MoveSpeed:       parameter.MoveSpeed,
		RotateSpeed:     parameter.RotateSpeed,
		EnemyMoveSpeed:  parameter.EnemyMoveSpeed,
		EnemyThinkDelay: parameter.EnemyThinkDelay,
		DodgeChance:     parameter.DodgeChance,
	}
}

// Awareness returns the awareness radius in world units
func (c *ConfigResource) Awareness() float64 {
	return float64(c.AwarenessCells) * c.CellLength
}

// NewResource builds a resource set with fresh state around the given collaborators
// Nil logger discards, seed drives combat and AI rolls
func NewResource(cfg *ConfigResource, physics Physics, inventory Inventory, log *slog.Logger, seed uint64) *Resource {
	if cfg == nil {
		cfg = DefaultConfigResource()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Resource{
		Time:      &TimeResource{},
		Config:    cfg,
		Turn:      &TurnState{},
		Session:   &SessionState{},
		Event:     event.NewBus(),
		Physics:   physics,
		Inventory: inventory,
		Log:       log,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Messages:  NewMessageLog(parameter.MessageLogSize),
	}
}
