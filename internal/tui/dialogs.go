package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/keks/internal/tui/huhforms"
)

// mode is the screen the model currently shows
type mode int

const (
	normalMode mode = iota
	addQuoteMode
	renameMode
	mascotMode
)

// addQuoteDialog owns the values bound to the add-quote form. It lives only
// while the dialog is open.
type addQuoteDialog struct {
	form     *huh.Form
	text     string
	language string
}

func newAddQuoteDialog(language string, theme *huh.Theme) *addQuoteDialog {
	d := &addQuoteDialog{language: language}
	d.form = huhforms.CreateAddQuoteForm(&d.text, &d.language).WithTheme(theme)
	return d
}

// renameDialog owns the value bound to the rename form
type renameDialog struct {
	form *huh.Form
	name string
}

func newRenameDialog(theme *huh.Theme) *renameDialog {
	d := &renameDialog{}
	d.form = huhforms.CreateRenameForm(&d.name).WithTheme(theme)
	return d
}

// mascotDialog owns the values bound to the mascot form
type mascotDialog struct {
	form  *huh.Form
	name  string
	color string
}

func newMascotDialog(theme *huh.Theme) *mascotDialog {
	d := &mascotDialog{}
	d.form = huhforms.CreateMascotForm(&d.name, &d.color).WithTheme(theme)
	return d
}

// activeForm returns the form of the open dialog, or nil in normal mode
func (m Model) activeForm() *huh.Form {
	switch m.mode {
	case addQuoteMode:
		if m.addQuote != nil {
			return m.addQuote.form
		}
	case renameMode:
		if m.rename != nil {
			return m.rename.form
		}
	case mascotMode:
		if m.mascot != nil {
			return m.mascot.form
		}
	}
	return nil
}

// closeDialog drops every dialog and returns to the fortune screen
func (m *Model) closeDialog() {
	m.mode = normalMode
	m.addQuote = nil
	m.rename = nil
	m.mascot = nil
}
