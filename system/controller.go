package system

import (
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
)

// Controller is the per-kind movement strategy applied to a CharacterComponent
type Controller interface {
	// Side returns the turn side this character acts on
	Side() core.Side
	// CannotMove reports whether translations are locked this frame
	CannotMove(turn *engine.TurnState) bool
	// Arrival returns the event published when a translation completes
	Arrival() event.EventType
	// Feedback reports whether rejections surface as messages and cues
	Feedback() bool
}

type playerController struct{}

func (playerController) Side() core.Side { return core.SidePlayer }

// Combat locks the player unless a dodge succeeded this turn
func (playerController) CannotMove(turn *engine.TurnState) bool {
	return turn.InCombat && !turn.Dodged
}

func (playerController) Arrival() event.EventType { return event.EventEnemyTurn }
func (playerController) Feedback() bool           { return true }

type enemyController struct{}

func (enemyController) Side() core.Side { return core.SideEnemy }

func (enemyController) CannotMove(turn *engine.TurnState) bool {
	return turn.InCombat
}

func (enemyController) Arrival() event.EventType { return event.EventPlayerTurn }
func (enemyController) Feedback() bool           { return false }

var (
	playerCtl Controller = playerController{}
	enemyCtl  Controller = enemyController{}
)

// ControllerFor selects the strategy for an actor kind, nil for kinds that never move
func ControllerFor(k core.Kind) Controller {
	switch k {
	case core.KindPlayer:
		return playerCtl
	case core.KindEnemy:
		return enemyCtl
	}
	return nil
}
