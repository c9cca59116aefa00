package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// dialogKeyMap is shared by every keks dialog. Shift+enter also inserts a
// newline in the quote text, and esc is removed from the quit binding because
// the model closes the dialog on esc itself.
func dialogKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"))

	return km
}
