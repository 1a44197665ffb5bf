package engine

import (
	"github.com/lixenwraith/gridcrawler/core"
)

// TurnState is the shared turn and combat record
// Mutated only by event handlers, read by systems, render and audio
type TurnState struct {
	// Owner is the side allowed to act
	Owner core.Side
	// Turn counts ownership changes since the level started
	Turn int

	// InCombat is set while any player is adjacent to an enemy
	InCombat bool
	// Dodged is set by a successful dodge and frees the player for one move
	Dodged bool
	// Opponent is the enemy bound to the current encounter
	Opponent core.Entity

	// Proximity flags from the last interaction scan
	NearItem    bool
	NearGate    bool
	NearTrigger bool
}

// Reset restores the level-start state
func (t *TurnState) Reset() {
	*t = TurnState{}
}

// PlayerActs reports whether the player side owns the turn
func (t *TurnState) PlayerActs() bool {
	return t.Owner == core.SidePlayer
}
