package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-racer/internal/games/spaceracer"
)

// WaveRows returns one table row per wave from 1 to n.
func WaveRows(n int) []table.Row {
	rows := make([]table.Row, 0, max(n, 0))
	for w := 1; w <= n; w++ {
		healthLo, healthHi := spaceracer.EnemyHealthRange(w)
		speedLo, speedHi := spaceracer.EnemySpeedRange(w)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", w),
			fmt.Sprintf("%d", spaceracer.SpawnTarget(w)),
			fmt.Sprintf("%dms", spaceracer.SpawnIntervalMs(w)),
			fmt.Sprintf("%d-%d", healthLo, healthHi),
			fmt.Sprintf("%d-%d", speedLo, speedHi),
			fmt.Sprintf("%d", spaceracer.EnemyScore(w)),
		})
	}
	return rows
}

// WaveTable renders the progression of the first n waves as a table.
func WaveTable(n int) string {
	columns := []table.Column{
		{Title: "Wave", Width: 6},
		{Title: "Enemies", Width: 8},
		{Title: "Interval", Width: 9},
		{Title: "Health", Width: 7},
		{Title: "Speed", Width: 6},
		{Title: "Score", Width: 6},
	}

	rows := WaveRows(n)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive, so no row is highlighted
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
