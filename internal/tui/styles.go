package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/keks/internal/colors"
	"github.com/thenoetrevino/keks/internal/config"
)

// styles holds the lipgloss styles derived from the color scheme
type styles struct {
	header   lipgloss.Style
	language lipgloss.Style
	active   lipgloss.Style
	box      lipgloss.Style
	fortune  lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	dialog   lipgloss.Style
}

func newStyles(scheme config.ColorScheme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)).
			Background(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
		language: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Padding(0, 1),
		active: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Border)).
			Padding(1, 2),
		fortune: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Normal)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Success)),
		failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Error)),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(1, 2),
	}
}

// fortuneStyle returns the fortune text style in the mascot color
func (s styles) fortuneStyle(mascotColor string) lipgloss.Style {
	hex, err := colors.Normalize(mascotColor)
	if err != nil {
		return s.fortune
	}
	return s.fortune.Foreground(lipgloss.Color(hex))
}
