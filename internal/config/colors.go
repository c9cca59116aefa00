package config

import "github.com/thenoetrevino/keks/internal/config/colors"

// ColorScheme is re-exported so callers only import config
type ColorScheme = colors.ColorScheme

// DefaultColorScheme is the purple scheme used when no theme is configured
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// PresetColorScheme returns the named preset with every color filled in.
// Unknown names fall back to the default scheme.
func PresetColorScheme(name string) ColorScheme {
	return *colors.GetPreset(name)
}
