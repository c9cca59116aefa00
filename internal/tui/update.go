package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
	}

	if m.mode != normalMode {
		return m.updateDialog(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleNormalMode(msg)
	}
	return m, nil
}

// handleNormalMode handles key presses on the fortune screen
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFortune):
		m.nextFortune()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLanguage):
		m.toggleLanguage()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.AddQuote):
		m.addQuote = newAddQuoteDialog(m.language, m.theme)
		m.mode = addQuoteMode
		return m, m.addQuote.form.Init()

	case key.Matches(msg, m.keys.RenameApp):
		m.rename = newRenameDialog(m.theme)
		m.mode = renameMode
		return m, m.rename.form.Init()

	case key.Matches(msg, m.keys.EditMascot):
		m.mascot = newMascotDialog(m.theme)
		m.mode = mascotMode
		return m, m.mascot.form.Init()
	}

	return m, nil
}

// updateDialog forwards msg to the open form and runs the matching confirm
// handler once the form completes
func (m Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeDialog()
		return m, nil
	}

	form := m.activeForm()
	if form == nil {
		m.closeDialog()
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		return m.confirmDialog()
	case huh.StateAborted:
		m.closeDialog()
		return m, nil
	}

	return m, cmd
}

// confirmDialog runs the confirm handler of the open dialog
func (m Model) confirmDialog() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case addQuoteMode:
		cmd = m.confirmAddQuote(m.addQuote)
	case renameMode:
		cmd = m.confirmRename(m.rename)
	case mascotMode:
		cmd = m.confirmMascot(m.mascot)
	}
	m.closeDialog()
	return m, cmd
}
