package event

import (
	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// Payload is the closed set of typed event bodies
// Only types in this package implement it
type Payload interface {
	payload()
}

// TurnPayload carries the turn counter at the time of the change
type TurnPayload struct {
	Turn int
}

// RejectReason explains a cancelled translation
type RejectReason uint8

const (
	RejectBlocked RejectReason = iota // Raycast or adjacent enemy
	RejectCombat                      // Combat lock without dodge
)

func (r RejectReason) String() string {
	if r == RejectCombat {
		return "combat"
	}
	return "blocked"
}

// MoveRejectedPayload describes a cancelled translation
type MoveRejectedPayload struct {
	Reason    RejectReason
	Direction vmath.Dir
}

// ActorPayload identifies an entity by kind for spawn and removal
// The entity itself is the event Sender
type ActorPayload struct {
	Kind core.Kind
}

// GatePayload identifies an unlocked gate and the player who opened it
type GatePayload struct {
	Gate   core.Entity
	Player core.Entity
}

// BattlePayload binds a combat encounter
type BattlePayload struct {
	Encounter ulid.ULID
	Player    core.Entity
	Enemy     core.Entity
}

// DamagePayload reports one resolved hit
type DamagePayload struct {
	Attacker  core.Entity
	Target    core.Entity
	Amount    int
	Remaining int
}

// CombatEndedPayload reports how combat ended
type CombatEndedPayload struct {
	Victor  core.Side
	Escaped bool
}

// MessagePayload is a single textbox line
type MessagePayload struct {
	Text string
}

// ItemPayload names an inventory change
type ItemPayload struct {
	Item component.Item
}

// SoundPayload selects a cue, Emitter is used only by positional events
type SoundPayload struct {
	Cue     core.Cue
	Emitter vmath.Vec3F
}

// ListenerPayload places the 3D audio listener
type ListenerPayload struct {
	Position vmath.Vec3F
	Look     vmath.Vec3F
}

// LevelPayload names a level for start and transition events
type LevelPayload struct {
	Name string
}

// CommandPayload carries one input command
type CommandPayload struct {
	Command core.Command
}

func (*TurnPayload) payload()         {}
func (*MoveRejectedPayload) payload() {}
func (*ActorPayload) payload()        {}
func (*GatePayload) payload()         {}
func (*BattlePayload) payload()       {}
func (*DamagePayload) payload()       {}
func (*CombatEndedPayload) payload()  {}
func (*MessagePayload) payload()      {}
func (*ItemPayload) payload()         {}
func (*SoundPayload) payload()        {}
func (*ListenerPayload) payload()     {}
func (*LevelPayload) payload()        {}
func (*CommandPayload) payload()      {}
