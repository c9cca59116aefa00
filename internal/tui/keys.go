package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/keks/internal/config"
)

// keyMap holds the bindings of the fortune screen. It implements help.KeyMap.
type keyMap struct {
	NextFortune    key.Binding
	ToggleLanguage key.Binding
	AddQuote       key.Binding
	RenameApp      key.Binding
	EditMascot     key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// newKeyMap builds bindings from the configured key mappings. Each action
// also keeps a fixed alternative so the defaults work with any config.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		NextFortune: key.NewBinding(
			key.WithKeys(km.NextFortune, " ", "space"),
			key.WithHelp(km.NextFortune+"/space", "new fortune"),
		),
		ToggleLanguage: key.NewBinding(
			key.WithKeys(km.ToggleLanguage, "l"),
			key.WithHelp(km.ToggleLanguage+"/l", "switch language"),
		),
		AddQuote: key.NewBinding(
			key.WithKeys(km.AddQuote),
			key.WithHelp(km.AddQuote, "add quote"),
		),
		RenameApp: key.NewBinding(
			key.WithKeys(km.RenameApp),
			key.WithHelp(km.RenameApp, "rename"),
		),
		EditMascot: key.NewBinding(
			key.WithKeys(km.EditMascot),
			key.WithHelp(km.EditMascot, "mascot"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFortune, k.ToggleLanguage, k.Help, k.Quit}
}

// FullHelp returns the bindings shown by the help toggle
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFortune, k.ToggleLanguage},
		{k.AddQuote, k.RenameApp, k.EditMascot},
		{k.Help, k.Quit},
	}
}
