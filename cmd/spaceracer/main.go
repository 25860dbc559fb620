// spaceracer is a vertical arcade shooter for the terminal.
//
// Usage:
//
//	spaceracer list           - List registered games
//	spaceracer play           - Play Space Racer
//	spaceracer menu           - Start from the title menu
//	spaceracer serve          - Start SSH server for remote play
//	spaceracer waves          - Show the wave progression table
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific config file
//	--log-level <level>   - Override the log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-racer/internal/config"
	"github.com/vovakirdan/space-racer/internal/core"
	"github.com/vovakirdan/space-racer/internal/games/spaceracer"
	"github.com/vovakirdan/space-racer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceracer",
	Short: "Space Racer - an arcade shooter in your terminal",
	Long: `Space Racer is a vertical arcade shooter. Steer your ship, destroy the
descending enemies wave after wave, and collect power-ups before your three
lives run out.

Available commands:
  list     - Show registered games
  play     - Start a game directly
  menu     - Start from the title menu
  serve    - Start SSH server for remote play
  waves    - Show how waves scale

Examples:
  spaceracer play
  spaceracer play --seed 42 --log-level debug
  spaceracer menu --fps 30
  spaceracer serve --ssh :2222
  spaceracer waves --count 15`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wavesCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.SpaceRacerConfig, error) {
	spaceracer.SetConfigPath(flagConfig)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(cfg config.SpaceRacerConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.TickRate,
		Seed:     flagSeed,
	}
}

// fileLogger opens the log file for a full-screen session. Output is
// discarded when the file cannot be opened so the alternate screen stays clean.
func fileLogger(cfg config.SpaceRacerConfig) (*log.Logger, io.Closer) {
	f, err := tui.OpenLogFile(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return tui.NewLogger(cfg.Log, io.Discard), io.NopCloser(nil)
	}
	return tui.NewLogger(cfg.Log, f), f
}

// modelOptions builds the game model options from the config.
func modelOptions(cfg config.SpaceRacerConfig, logger *log.Logger) tui.ModelOptions {
	return tui.ModelOptions{
		HoldTicks: cfg.Input.HoldTicks,
		ShowHelp:  cfg.Render.ShowHelp,
		Logger:    logger,
	}
}
