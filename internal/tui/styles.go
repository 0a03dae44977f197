package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	PhaseTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusPlaying = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusIdle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	Mnemonic = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	trackOn  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	trackOff = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// PhaseTrack renders n segments with the current one lit, e.g. ──━━──────.
func PhaseTrack(current, n, segment int) string {
	if n <= 0 || segment <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i == current {
			b.WriteString(trackOn.Render(strings.Repeat("━", segment)))
		} else {
			b.WriteString(trackOff.Render(strings.Repeat("─", segment)))
		}
	}
	return b.String()
}
