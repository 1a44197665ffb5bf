package system

import (
	"fmt"

	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// MessageSystem appends textbox lines to the message log, collapsing repeats
type MessageSystem struct {
	world *engine.World

	last   string
	repeat int
}

// NewMessageSystem creates a MessageSystem
func NewMessageSystem(world *engine.World) *MessageSystem {
	return &MessageSystem{world: world}
}

// Name returns the system's name
func (s *MessageSystem) Name() string {
	return "message"
}

// Priority returns the system's priority
func (s *MessageSystem) Priority() int {
	return parameter.PriorityMessage
}

// Update implements System interface (no tick-based logic)
func (s *MessageSystem) Update() {}

// Categories returns the event categories MessageSystem handles
func (s *MessageSystem) Categories() []event.Category {
	return []event.Category{event.CategoryTextbox, event.CategoryMenu}
}

// HandleEvent processes message events
func (s *MessageSystem) HandleEvent(ev event.GameEvent) {
	log := s.world.Resources.Messages

	switch ev.Type {
	case event.EventStart:
		s.last, s.repeat = "", 0
		log.Clear()

	case event.EventMessage:
		text := event.MustPayload[*event.MessagePayload](ev).Text
		if text == s.last && log.Len() > 0 {
			s.repeat++
			log.Replace(fmt.Sprintf("%s (x%d)", text, s.repeat))
			return
		}
		s.last, s.repeat = text, 1
		log.Append(text)
	}
}
