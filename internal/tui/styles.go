package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	box      lipgloss.Style
	input    lipgloss.Style
	selected lipgloss.Style
	user     lipgloss.Style
	bot      lipgloss.Style
	errText  lipgloss.Style
	dialog   lipgloss.Style
}

func newStyles(theme string) styles {
	accent, text, muted, border := lipgloss.Color("#7D56F4"), lipgloss.Color("#FAFAFA"), lipgloss.Color("#626262"), lipgloss.Color("#874BFD")
	if theme == "light" {
		accent, text, muted, border = lipgloss.Color("#5A3FD1"), lipgloss.Color("#1B2636"), lipgloss.Color("#8A8A8A"), lipgloss.Color("#5A3FD1")
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accent).
			Padding(0, 1),
		subtle: lipgloss.NewStyle().Foreground(muted),
		box: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(border).
			Foreground(text).
			Padding(1, 2),
		input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		user:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		bot:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FF5F5F")).
			Padding(1, 2),
	}
}
