package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Fortunes
	NextFortune    string `yaml:"next_fortune"`
	ToggleLanguage string `yaml:"toggle_language"`

	// Dialogs
	AddQuote   string `yaml:"add_quote"`
	RenameApp  string `yaml:"rename_app"`
	EditMascot string `yaml:"edit_mascot"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextFortune:    "n",
		ToggleLanguage: "tab",
		AddQuote:       "a",
		RenameApp:      "r",
		EditMascot:     "m",
		ShowHelp:       "?",
		Quit:           "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextFortune == "" {
		k.NextFortune = defaults.NextFortune
	}
	if k.ToggleLanguage == "" {
		k.ToggleLanguage = defaults.ToggleLanguage
	}
	if k.AddQuote == "" {
		k.AddQuote = defaults.AddQuote
	}
	if k.RenameApp == "" {
		k.RenameApp = defaults.RenameApp
	}
	if k.EditMascot == "" {
		k.EditMascot = defaults.EditMascot
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
