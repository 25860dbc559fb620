package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/space-racer/internal/core"
	"github.com/vovakirdan/space-racer/internal/registry"
)

// ModelOptions configures the game model beyond the runtime config.
type ModelOptions struct {
	HoldTicks int         // Ticks a key press stays held
	ShowHelp  bool        // Show the key help footer
	Logger    *log.Logger // Nil discards log output
}

// resizer is implemented by games that adapt to a new screen size
// without restarting the match.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	latch      *InputLatch
	keys       KeyMap
	help       help.Model
	showHelp   bool
	logger     *log.Logger
	runID      string
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		latch:    NewInputLatch(opts.HoldTicks),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: opts.ShowHelp,
		logger:   logger,
		runID:    uuid.NewString(),
	}
	m.config = cfg
	m.config.ScreenH = m.playHeight(cfg.ScreenH)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// playHeight is the number of rows left for the game below the help footer.
func (m Model) playHeight(termH int) int {
	if m.showHelp {
		return max(0, termH-1)
	}
	return termH
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "run", m.runID, "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		m.logger.Info("restart", "run", m.runID, "score", m.gameState.Score)
		m.runID = uuid.NewString()
		m.latch.Reset()
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize keeps the match when the game can adapt, otherwise restarts it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = m.playHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	m.game.Reset(m.config)
	return m, nil
}

// handleTick runs one simulation step with the latched input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	for _, e := range result.Events {
		logEvent(m.logger, m.runID, e)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user left the game with Esc.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and returns once the player
// leaves it. backToMenu reports whether they left with Esc rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
