package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/keks/internal/services/fortune"
)

// confirmAddQuote stores the quote typed into d
func (m *Model) confirmAddQuote(d *addQuoteDialog) tea.Cmd {
	if d == nil {
		return nil
	}

	_, err := m.svc.AddQuote(m.ctx, fortune.AddQuoteRequest{
		Language: d.language,
		Text:     d.text,
	})
	switch {
	case fortune.IsValidationError(err):
		m.status = errorStatus("Please enter a language and a quote.")
	case err != nil:
		m.fail("Could not add quote", err)
	default:
		m.status = successStatus("Quote added!")
	}
	return nil
}

// confirmRename changes the display name and the window title
func (m *Model) confirmRename(d *renameDialog) tea.Cmd {
	if d == nil {
		return nil
	}

	err := m.svc.RenameApp(m.ctx, d.name)
	switch {
	case errors.Is(err, fortune.ErrEmptyName):
		m.status = errorStatus("Please enter a new name.")
		return nil
	case err != nil:
		m.fail("Could not rename", err)
		return nil
	}

	m.reloadSettings()
	m.status = successStatus("Name changed!")
	return tea.SetWindowTitle(m.displayName)
}

// confirmMascot applies the mascot edit. An invalid color leaves the stored
// mascot untouched.
func (m *Model) confirmMascot(d *mascotDialog) tea.Cmd {
	if d == nil {
		return nil
	}

	name := strings.TrimSpace(d.name)
	color := strings.TrimSpace(d.color)
	if name == "" && color == "" {
		m.status = errorStatus("Nothing to change.")
		return nil
	}

	_, err := m.svc.UpdateMascot(m.ctx, fortune.UpdateMascotRequest{
		Name:  &name,
		Color: &color,
	})
	switch {
	case errors.Is(err, fortune.ErrInvalidColor):
		// The name part of the edit is still stored
		m.reloadSettings()
		m.nextFortune()
		m.status = errorStatus("Invalid color!")
		return nil
	case err != nil:
		m.fail("Could not update mascot", err)
		return nil
	}

	m.reloadSettings()
	m.nextFortune()
	m.status = successStatus("Mascot name and/or color changed!")
	return nil
}
