package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gridcrawler/audio"
	"github.com/lixenwraith/gridcrawler/config"
	"github.com/lixenwraith/gridcrawler/core"
	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/game"
	"github.com/lixenwraith/gridcrawler/parameter"
	"github.com/lixenwraith/gridcrawler/render"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play in the terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "mute", Usage: "disable audio cues"},
		},
		Action: play,
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("mute") {
		cfg.Audio.Enabled = false
	}

	// Log lines on the terminal would corrupt the screen
	log, closeLog, err := openLog(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return oops.In("cmd").Wrapf(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return oops.In("cmd").Wrapf(err, "init screen")
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	var cues *audio.Player
	if cfg.Audio.Enabled {
		cues = audio.NewPlayer(cfg.Audio, cfg.Grid.CellLength, log)
		if err := cues.Start(); err != nil {
			// Non-fatal, the game runs silent
			log.Warn("audio unavailable", "error", err)
			cues = nil
		} else {
			defer cues.Close()
		}
	}

	opts := game.Options{Log: log, Levels: levelSource(cfg)}
	if cues != nil {
		opts.Audio = cues
	}
	g := game.New(cfg, opts)
	if err := start(cmd, cfg, g); err != nil {
		return err
	}
	log.Info("run started", "run", g.Session().RunID.String(), "level", cfg.Level, "seed", cfg.Seed)

	return runLoop(ctx, cfg, g, screen, log)
}

// runLoop drives ticks on this goroutine while a second goroutine forwards key presses
func runLoop(ctx context.Context, cfg config.Config, g *game.Game, screen tcell.Screen, log *slog.Logger) error {
	view := render.NewView(screen, g.World)
	commands := make(chan core.Command, parameter.EventQueueHint)

	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	eg.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		pumpInput(ctx, screen, commands)
		return nil
	})

	eg.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		// Fini unblocks PollEvent in the input pump
		defer screen.Fini()
		defer cancel()

		dt := cfg.FrameDuration()
		ticker := time.NewTicker(dt)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case cmd := <-commands:
				g.Command(cmd)
			case <-ticker.C:
				g.Tick(dt)
				view.Draw()
				if g.Session().Phase == engine.PhaseQuit {
					log.Info("run ended", "run", g.Session().RunID.String(),
						"level", g.Session().Level, "turn", g.Turn().Turn,
						"gold", g.Session().Gold, "kills", g.Session().Kills)
					return nil
				}
			}
		}
	})

	return eg.Wait()
}

// pumpInput polls terminal events until the screen is finalized
func pumpInput(ctx context.Context, screen tcell.Screen, out chan<- core.Command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := render.EventCommand(ev)
			if cmd == core.CmdNone {
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
