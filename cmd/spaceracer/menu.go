package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-racer/internal/platform/tui"
	"github.com/vovakirdan/space-racer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start from the title menu",
	Long: `Start Space Racer at the title menu.

Choose Start to play, How to Play for the controls, or Exit.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  spaceracer menu
  spaceracer menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer := fileLogger(cfg)
	defer closer.Close()

	rt := runtimeConfig(cfg)
	seeded := rt.Seed != 0

	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rt = result.Config
		if !result.Start {
			return nil
		}

		game, err := registry.Create(tui.GameID)
		if err != nil {
			return err
		}

		if !seeded {
			rt.Seed = time.Now().UnixNano()
		}
		backToMenu, err := tui.Run(game, rt, modelOptions(cfg, logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
