// Package game assembles the world, systems and collaborators into a playable session
package game

import (
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/lixenwraith/gridcrawler/config"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/event"
	"github.com/lixenwraith/gridcrawler/inventory"
	"github.com/lixenwraith/gridcrawler/level"
	"github.com/lixenwraith/gridcrawler/physics"
	"github.com/lixenwraith/gridcrawler/system"
)

// Game is a running session
type Game struct {
	Engine    *engine.Game
	World     *engine.World
	Physics   *physics.World
	Inventory *inventory.Inventory
	Levels    *level.Source

	Movement    *system.MovementSystem
	Interaction *system.InteractionSystem
	Actors      *system.ActorSystem
}

// Options carries optional collaborators
type Options struct {
	Log    *slog.Logger
	Audio  system.CuePlayer
	Levels *level.Source
}

// New builds a session from configuration, no level is loaded yet
func New(cfg config.Config, opts Options) *Game {
	levels := opts.Levels
	if levels == nil {
		levels = level.Builtin()
		if cfg.LevelDir != "" {
			levels = level.Dir(cfg.LevelDir)
		}
	}

	phys := physics.NewWorld()
	inv := inventory.New()
	res := engine.NewResource(cfg.Resource(), phys, inv, opts.Log, cfg.Seed)
	res.Session.RunID = ulid.Make()

	w := engine.NewWorld(res)
	g := &Game{
		Engine:    engine.NewGame(w),
		World:     w,
		Physics:   phys,
		Inventory: inv,
		Levels:    levels,
	}

	g.Movement = system.NewMovementSystem(w)
	g.Interaction = system.NewInteractionSystem(w)
	g.Actors = system.NewActorSystem(w, phys)

	// Add order fixes same-category handler order: turn ownership before scans before enemy AI
	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewTurnSystem(w, g.Movement))
	w.AddSystem(g.Interaction)
	w.AddSystem(system.NewCombatSystem(w))
	w.AddSystem(system.NewEnemySystem(w))
	w.AddSystem(g.Movement)
	w.AddSystem(g.Actors)
	w.AddSystem(system.NewSessionSystem(w, g.Load))
	w.AddSystem(system.NewMessageSystem(w))
	w.AddSystem(system.NewAudioSystem(w, opts.Audio))

	return g
}

// Load spawns a level by name
func (g *Game) Load(name string) error {
	lvl, err := g.Levels.Load(name)
	if err != nil {
		return oops.In("game").With("level", name).Wrapf(err, "load level")
	}
	g.Spawn(lvl)
	return nil
}

// Generate spawns a procedurally generated maze
func (g *Game) Generate(gen level.GenConfig) error {
	lvl, err := level.Generate(gen)
	if err != nil {
		return oops.In("game").With("seed", gen.Seed).Wrapf(err, "generate level")
	}
	g.Spawn(lvl)
	return nil
}

// Spawn places an already parsed level
func (g *Game) Spawn(lvl *level.Level) {
	g.Actors.Spawn(lvl)
}

// Command queues an input command for the next tick
func (g *Game) Command(cmd core.Command) bool {
	return g.World.PushEvent(event.EventCommand, 0, &event.CommandPayload{Command: cmd})
}

// Tick advances one frame
func (g *Game) Tick(dt time.Duration) {
	g.Engine.Tick(dt)
}

// Player returns the player entity, zero if none is spawned
func (g *Game) Player() core.Entity {
	for _, e := range g.World.Components.Character.GetAllEntities() {
		if g.World.KindOf(e) == core.KindPlayer {
			return e
		}
	}
	return 0
}

// Ready reports whether the player can issue a command
func (g *Game) Ready() bool {
	res := g.World.Resources
	if !res.Session.Playing() || !res.Turn.PlayerActs() || res.Event.Len() > 0 {
		return false
	}
	c, ok := g.World.Components.Character.GetComponent(g.Player())
	return ok && c.Idle()
}

// Session returns the session state
func (g *Game) Session() *engine.SessionState {
	return g.World.Resources.Session
}

// Turn returns the turn state
func (g *Game) Turn() *engine.TurnState {
	return g.World.Resources.Turn
}

// Messages returns the message log lines oldest first
func (g *Game) Messages() []string {
	return g.World.Resources.Messages.Lines()
}
