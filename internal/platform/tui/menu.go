package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-racer/internal/core"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceHowToPlay
	ChoiceExit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceStart:
		return "Start"
	case ChoiceHowToPlay:
		return "How to Play"
	case ChoiceExit:
		return "Exit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoiceStart, ChoiceHowToPlay, ChoiceExit}

var howToPlay = []string{
	"Arrow keys or WASD move the ship.",
	"Space fires. Destroy enemies before they reach the bottom.",
	"Every enemy that escapes or rams you costs a life.",
	"Power-ups: S doubles your speed for 45s,",
	"K destroys any enemy in one hit for 30s.",
	"P pauses, R restarts, Esc leaves the game.",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	showHelp bool // How to Play page is open
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := MapKeyToMenuAction(msg)

	if m.showHelp {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect, MenuActionBack:
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch choice := menuChoices[m.cursor]; choice {
		case ChoiceHowToPlay:
			m.showHelp = true
		case ChoiceExit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S P A C E   R A C E R"), m.width))
	b.WriteString("\n\n")

	if m.showHelp {
		for _, line := range howToPlay {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(hintStyle.Render("Enter/Esc: Back"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, choice := range menuChoices {
		line := "  " + choice.String()
		if i == m.cursor {
			line = cursorStyle.Render("> " + choice.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Start  bool
	Config core.RuntimeConfig
}

// RunMenu runs the title menu and reports whether the player chose Start.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg}, nil
	}
	return MenuResult{
		Start:  m.Selected() == ChoiceStart,
		Config: m.Config(),
	}, nil
}
