package system

import (
	"github.com/lixenwraith/gridcrawler/component"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// LevelLoader spawns a named level into the world
type LevelLoader func(name string) error

// SessionSystem drives menu-level phase transitions and run statistics
type SessionSystem struct {
	world *engine.World
	load  LevelLoader
}

// NewSessionSystem creates a SessionSystem
func NewSessionSystem(world *engine.World, load LevelLoader) *SessionSystem {
	return &SessionSystem{world: world, load: load}
}

// Name returns the system's name
func (s *SessionSystem) Name() string {
	return "session"
}

// Priority returns the system's priority
func (s *SessionSystem) Priority() int {
	return parameter.PrioritySession
}

// Categories returns the event categories SessionSystem handles
func (s *SessionSystem) Categories() []event.Category {
	return []event.Category{event.CategoryMenu, event.CategoryUIMenu, event.CategoryCombat}
}

// HandleEvent processes session events
func (s *SessionSystem) HandleEvent(ev event.GameEvent) {
	session := s.world.Resources.Session
	log := s.world.Resources.Log

	switch ev.Type {
	case event.EventStart:
		session.Level = event.MustPayload[*event.LevelPayload](ev).Name
		session.NextLevel = ""
		session.Phase = engine.PhasePlaying
		log.Info("level started", "run", session.RunID.String(), "level", session.Level)

	case event.EventPause:
		if session.Phase == engine.PhasePlaying {
			session.Phase = engine.PhasePaused
		}

	case event.EventResume:
		if session.Phase == engine.PhasePaused {
			session.Phase = engine.PhasePlaying
		}

	case event.EventLevelComplete:
		if session.Over() {
			return
		}
		session.NextLevel = event.MustPayload[*event.LevelPayload](ev).Name
		session.Phase = engine.PhaseLevelComplete
		s.world.PushMessage(0, "You descend")

	case event.EventGameWon:
		if !session.Over() {
			session.Phase = engine.PhaseWon
			s.world.PushMessage(0, "You have won")
			log.Info("run won", "run", session.RunID.String(), "gold", session.Gold, "kills", session.Kills)
		}

	case event.EventGameOver:
		if !session.Over() {
			session.Phase = engine.PhaseLost
			log.Info("run lost", "run", session.RunID.String(), "level", session.Level, "kills", session.Kills)
		}

	case event.EventQuit:
		session.Phase = engine.PhaseQuit

	case event.EventItemAdded:
		item := event.MustPayload[*event.ItemPayload](ev).Item
		if item.Kind == component.ItemTreasure {
			session.Gold += item.Value
		}

	case event.EventCombatEnded:
		p := event.MustPayload[*event.CombatEndedPayload](ev)
		if p.Victor == core.SidePlayer && !p.Escaped {
			session.Kills++
		}
	}
}

// Update loads the next level once a level completes
func (s *SessionSystem) Update() {
	session := s.world.Resources.Session
	if session.Phase != engine.PhaseLevelComplete || s.load == nil {
		return
	}
	next := session.NextLevel
	if err := s.load(next); err != nil {
		s.world.Resources.Log.Error("level load failed", "level", next, "error", err)
		session.Phase = engine.PhaseQuit
	}
}
