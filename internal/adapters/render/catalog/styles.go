package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	meeting lipgloss.Style
	path    lipgloss.Style
	variant lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		meeting: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		variant: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
