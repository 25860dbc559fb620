package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-racer/internal/platform/tui"
	"github.com/vovakirdan/space-racer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing immediately, skipping the title menu.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R            - Restart
  Esc          - Leave the game
  Q/Ctrl+C     - Quit

Examples:
  spaceracer play
  spaceracer play --seed 7
  spaceracer play --config ./my-spaceracer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tui.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'spaceracer list' to see available games)", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closer := fileLogger(cfg)
	defer closer.Close()

	if _, err := tui.Run(game, runtimeConfig(cfg), modelOptions(cfg, logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
