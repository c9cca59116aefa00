package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/keks/internal/colors"
)

// CreateRenameForm creates a huh form for changing the display name
func CreateRenameForm(name *string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("New name").
			Placeholder("Enter a new application name...").
			Value(name),
	))
	return form.WithKeyMap(dialogKeyMap())
}

// CreateMascotForm creates a huh form for changing the mascot name and color.
// Blank fields keep the current value.
func CreateMascotForm(name *string, color *string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("New mascot name").
			Placeholder("Leave empty to keep the current name").
			Value(name),

		huh.NewInput().
			Key("color").
			Title("New color").
			Description("e.g. red, blue, #FF0000 or an ANSI index").
			Placeholder("Leave empty to keep the current color").
			Validate(ValidateOptionalColor).
			Value(color),
	))
	return form.WithKeyMap(dialogKeyMap())
}

// ValidateOptionalColor accepts an empty string or a renderable color
func ValidateOptionalColor(color string) error {
	if strings.TrimSpace(color) == "" {
		return nil
	}
	return colors.Validate(color)
}
