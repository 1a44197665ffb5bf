package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/gridcrawler/game"
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "simulate",
		Usage:     "run a command script headless and print the outcome",
		ArgsUsage: "[SCRIPT]",
		Description: "Script letters: w forward, s backward, a/d strafe, q/e turn, f attack, g dodge, " +
			". wait, h drink. Whitespace is ignored.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the script from `FILE`"},
			&cli.IntFlag{Name: "max-ticks", Value: 600, Usage: "ticks to wait for the player's turn before giving up"},
		},
		Action: simulate,
	}
}

func simulate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Audio.Enabled = false

	script := strings.Join(cmd.Args().Slice(), " ")
	if path := cmd.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return oops.In("cmd").With("path", path).Wrapf(err, "read script")
		}
		script = string(data)
	}

	log, closeLog, err := openLog(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g := game.New(cfg, game.Options{Log: log, Levels: levelSource(cfg)})
	if err := start(cmd, cfg, g); err != nil {
		return err
	}

	issued, err := g.RunScript(script, cfg.FrameDuration(), cmd.Int("max-ticks"))
	w := cmd.Root().Writer
	fmt.Fprintf(w, "commands: %d\n", issued)
	fmt.Fprintf(w, "phase:    %s\n", g.Session().Phase)
	fmt.Fprintf(w, "level:    %s\n", g.Session().Level)
	fmt.Fprintf(w, "turn:     %d\n", g.Turn().Turn)
	fmt.Fprintf(w, "gold:     %d\n", g.Session().Gold)
	fmt.Fprintf(w, "kills:    %d\n", g.Session().Kills)
	if c, ok := g.World.Components.Character.GetComponent(g.Player()); ok {
		fmt.Fprintf(w, "health:   %d/%d\n", c.Health, c.MaxHealth)
	}
	for _, line := range g.Messages() {
		fmt.Fprintf(w, "> %s\n", line)
	}
	return err
}
