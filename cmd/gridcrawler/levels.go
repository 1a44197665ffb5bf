package main

import (
	"context"
	"fmt"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

func levelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "levels",
		Usage: "list available levels and validate them",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src := levelSource(cfg)
			names, err := src.Names()
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			failed := 0
			for _, name := range names {
				lvl, err := src.Load(name)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%-12s invalid: %v\n", name, err)
					continue
				}
				next := lvl.Next
				if next == "" {
					next = "-"
				}
				fmt.Fprintf(w, "%-12s %dx%d  enemies %d  items %d  gates %d  next %s\n",
					name, lvl.Width, lvl.Height, len(lvl.Enemies), len(lvl.Items), len(lvl.Gates), next)
			}
			if failed > 0 {
				return oops.In("cmd").With("invalid", failed).Errorf("%d invalid level(s)", failed)
			}
			return nil
		},
	}
}
