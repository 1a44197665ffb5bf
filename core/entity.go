package core

// Entity is a unique identifier for a game object, zero is never assigned
type Entity uint64

// Kind tags an entity with its gameplay role
// Selects movement strategy, collision filtering and interaction category
type Kind uint8

const (
	KindNone Kind = iota
	KindArchitecture
	KindGate
	KindPlayer
	KindEnemy
	KindItem
	KindTrigger
)

var kindNames = [...]string{
	KindNone:         "none",
	KindArchitecture: "architecture",
	KindGate:         "gate",
	KindPlayer:       "player",
	KindEnemy:        "enemy",
	KindItem:         "item",
	KindTrigger:      "trigger",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Impassable reports whether collision raycasts stop on this kind
// Used as the filter predicate for blocked-direction queries
func Impassable(k Kind) bool {
	return k == KindArchitecture || k == KindGate
}

// Side owns the right to act during a turn
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Opponent returns the side that acts after s
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}
