package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-racer/internal/core"
)

// palette maps core.Color to terminal colours.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorPink:          lipgloss.Color("218"),
	core.ColorGold:          lipgloss.Color("220"),
	core.ColorNavy:          lipgloss.Color("17"),
	core.ColorSlate:         lipgloss.Color("236"),
	core.ColorMaroon:        lipgloss.Color("52"),
	core.ColorPurple:        lipgloss.Color("54"),
	core.ColorBrown:         lipgloss.Color("94"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleFor returns the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own colour in place.
func styleFor(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing both colours are emitted as one styled run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		if plainRow(s, y) {
			sb.WriteString(s.Row(y))
			continue
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.Color, bg: cell.Background}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != pair.fg || cell.Background != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = styleFor(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// plainRow reports whether every cell in row y uses the terminal's colours.
func plainRow(s *core.Screen, y int) bool {
	for x := range s.Width() {
		c := s.GetCell(x, y)
		if c.Color != core.ColorDefault || c.Background != core.ColorDefault {
			return false
		}
	}
	return true
}
