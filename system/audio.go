package system

import (
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/vmath"
)

// CuePlayer is the audio collaborator
type CuePlayer interface {
	Play2D(cue core.Cue)
	Play3D(cue core.Cue, emitter vmath.Vec3F)
	SetListener(pos, look vmath.Vec3F)
}

// AudioSystem forwards sound events to the cue player
type AudioSystem struct {
	world  *engine.World
	player CuePlayer
}

// NewAudioSystem creates the bridge, nil player discards all cues
func NewAudioSystem(world *engine.World, player CuePlayer) *AudioSystem {
	return &AudioSystem{world: world, player: player}
}

// Name returns the system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

// Categories returns the event categories AudioSystem handles
func (s *AudioSystem) Categories() []event.Category {
	return []event.Category{event.CategorySound2D, event.CategorySound3D}
}

// HandleEvent processes audio events
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil || s.world.Resources.Session.Phase == engine.PhasePaused {
		return
	}
	switch ev.Type {
	case event.EventSound2D:
		s.player.Play2D(event.MustPayload[*event.SoundPayload](ev).Cue)
	case event.EventSound3D:
		p := event.MustPayload[*event.SoundPayload](ev)
		s.player.Play3D(p.Cue, p.Emitter)
	case event.EventListenerMoved:
		p := event.MustPayload[*event.ListenerPayload](ev)
		s.player.SetListener(p.Position, p.Look)
	}
}
