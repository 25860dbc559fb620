package spaceracer

import (
	"os"

	"github.com/vovakirdan/space-racer/internal/config"
	"github.com/vovakirdan/space-racer/internal/core"
	"github.com/vovakirdan/space-racer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a World to the registry's Game interface.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	cfg     config.SpaceRacerConfig

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Space Racer game instance.
func New() *Game {
	return &Game{
		minScreenW: 40,
		minScreenH: 16,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "spaceracer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Racer"
}

// Reset builds a fresh world from the runtime and file configuration.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultSpaceRacerConfig()
	}
	g.cfg = cfg

	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.world = NewWorld(Options{
		Width:        cfg.Playfield.Width,
		Height:       cfg.Playfield.Height,
		Seed:         runtime.Seed,
		Clock:        runtime.Clock,
		FrameDeltaMs: runtime.FrameDeltaMs(),
		ShipVisual:   shipVisualExists(cfg.Render.ShipSprite),
	})
}

// Resize adapts to a new screen size without restarting the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// shipVisualExists reports whether the configured ship image is present.
func shipVisualExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Restart is honoured at any time, not only after game over
	if in.Has(core.ActionRestart) {
		g.world.Restart()
		return core.StepResult{State: g.State()}
	}

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	events := g.world.Tick(IntentsFromFrame(in))
	return core.StepResult{
		State:  g.State(),
		Events: toCoreEvents(events),
	}
}

func toCoreEvents(events []Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, len(events))
	for i, e := range events {
		out[i] = core.Event{Kind: string(e.Kind), Fields: e.Fields()}
	}
	return out
}

// Snapshot returns a copy of the current world state.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.world.Paused(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("spaceracer", func() registry.Game {
		return New()
	})
}
