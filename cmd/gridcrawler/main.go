// Command gridcrawler runs the dungeon crawler in a terminal or headless from a command script
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/gridcrawler/config"
	"github.com/lixenwraith/gridcrawler/game"
	"github.com/lixenwraith/gridcrawler/level"
)

const version = "0.3.0"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gridcrawler: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "gridcrawler",
		Usage:   "turn-based grid dungeon crawler",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "first level to play"},
			&cli.StringFlag{Name: "level-dir", Usage: "read *.yaml levels from `DIR` instead of the builtin set"},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed for dodge rolls"},
			&cli.IntFlag{Name: "frame-rate", Usage: "ticks per second"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to `FILE`"},
			&cli.BoolFlag{Name: "maze", Usage: "play a generated maze instead of a level file"},
			&cli.IntFlag{Name: "maze-width", Value: 21, Usage: "generated maze width in cells"},
			&cli.IntFlag{Name: "maze-height", Value: 15, Usage: "generated maze height in cells"},
			&cli.IntFlag{Name: "maze-enemies", Value: 4, Usage: "enemies placed in a generated maze"},
		},
		Commands: []*cli.Command{
			playCommand(),
			simulateCommand(),
			levelsCommand(),
		},
		DefaultCommand: "play",
	}
}

// loadConfig reads GRIDCRAWLER_* variables and applies flag overrides
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.IsSet("level") {
		cfg.Level = cmd.String("level")
	}
	if cmd.IsSet("level-dir") {
		cfg.LevelDir = cmd.String("level-dir")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("frame-rate") {
		cfg.FrameRate = cmd.Int("frame-rate")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openLog returns the configured logger and a closer, fallback receives output when no file is set
func openLog(cfg config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return cfg.Log.Logger(fallback), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, oops.In("cmd").With("path", cfg.Log.File).Wrapf(err, "open log file")
	}
	return cfg.Log.Logger(f), func() { f.Close() }, nil
}

// start spawns the configured level or a generated maze
func start(cmd *cli.Command, cfg config.Config, g *game.Game) error {
	if !cmd.Bool("maze") {
		return g.Load(cfg.Level)
	}
	return g.Generate(level.GenConfig{
		Width:    cmd.Int("maze-width"),
		Height:   cmd.Int("maze-height"),
		Braiding: 0.25,
		Seed:     cfg.Seed,
		Enemies:  cmd.Int("maze-enemies"),
		Potions:  2,
		Gated:    true,
	})
}

func levelSource(cfg config.Config) *level.Source {
	if cfg.LevelDir != "" {
		return level.Dir(cfg.LevelDir)
	}
	return level.Builtin()
}
