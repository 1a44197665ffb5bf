package engine

import (
	"time"
)

// Game drives the cooperative tick
type Game struct {
	World *World
}

// NewGame wraps a world
func NewGame(w *World) *Game {
	return &Game{World: w}
}

// Tick advances one frame: clock, event drain, then systems in priority order
func (g *Game) Tick(dt time.Duration) {
	res := g.World.Resources
	res.Time.Update(dt)
	res.Event.Drain()
	g.World.Update()
}

// RunUntil ticks until done reports true or max ticks elapse
// Returns the number of ticks run, headless drivers and tests use it to wait out multi-frame moves
func (g *Game) RunUntil(dt time.Duration, max int, done func() bool) int {
	for i := 1; i <= max; i++ {
		g.Tick(dt)
		if done() {
			return i
		}
	}
	return max
}
