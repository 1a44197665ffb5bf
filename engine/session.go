package engine

import (
	"github.com/oklog/ulid/v2"
)

// Phase is the menu-level state of a run
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseLevelComplete
	PhaseWon
	PhaseLost
	PhaseQuit
)

var phaseNames = [...]string{
	PhaseIdle:          "idle",
	PhasePlaying:       "playing",
	PhasePaused:        "paused",
	PhaseLevelComplete: "level_complete",
	PhaseWon:           "won",
	PhaseLost:          "lost",
	PhaseQuit:          "quit",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// SessionState tracks the run across levels
type SessionState struct {
	RunID ulid.ULID
	Phase Phase
	// Level is the name of the level being played
	Level string
	// NextLevel is set by an exit trigger and consumed by the level loader
	NextLevel string
	// Gold accumulates treasure value
	Gold int
	// Kills counts defeated enemies
	Kills int
}

// Playing reports whether simulation should advance
func (s *SessionState) Playing() bool {
	return s.Phase == PhasePlaying
}

// Over reports whether the run has ended
func (s *SessionState) Over() bool {
	return s.Phase == PhaseWon || s.Phase == PhaseLost || s.Phase == PhaseQuit
}
