package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/keks/internal/models"
)

const (
	defaultWidth = 80
	minBoxWidth  = 20
)

// View renders the current model state
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	if form := m.activeForm(); form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.styles.dialog.Render(form.View()),
			m.styles.language.Render("esc: cancel"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLanguages(),
		m.renderFortune(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	return m.styles.header.Render(m.displayName)
}

func (m Model) renderLanguages() string {
	tabs := make([]string, 0, 2)
	for _, lang := range []string{models.LanguageGerman, models.LanguageEnglish} {
		if lang == m.language {
			tabs = append(tabs, m.styles.active.Render(lang))
		} else {
			tabs = append(tabs, m.styles.language.Render(lang))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFortune() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	// Border and padding take six columns
	width = max(width-6, minBoxWidth)

	text := ""
	if m.fortune != nil {
		text = m.fortune.Display
	}
	body := m.styles.fortuneStyle(m.mascotColor).Width(width).Render(text)
	return m.styles.box.Render(body)
}

func (m Model) renderStatus() string {
	text := strings.TrimSpace(m.status.text)
	switch m.status.level {
	case statusSuccess:
		return m.styles.success.Render(text)
	case statusError:
		return m.styles.failure.Render(text)
	default:
		return ""
	}
}
