package models

import "strings"

// Settings is the singleton application settings row
type Settings struct {
	DisplayName string `json:"displayName"`
}

// MascotSettings is the singleton mascot row
type MascotSettings struct {
	Name  string `json:"mascotName"`
	Color string `json:"mascotColor"`
}

// SettingField enumerates the columns of the settings row that may be read or
// written by name. The zero value is not a valid field.
type SettingField int

const (
	SettingDisplayName SettingField = iota + 1
)

// MascotField enumerates the columns of the mascot settings row.
type MascotField int

const (
	MascotName MascotField = iota + 1
	MascotColor
)

func (f SettingField) String() string {
	switch f {
	case SettingDisplayName:
		return "displayName"
	default:
		return "unknown"
	}
}

func (f MascotField) String() string {
	switch f {
	case MascotName:
		return "mascotName"
	case MascotColor:
		return "mascotColor"
	default:
		return "unknown"
	}
}

// SettingFields lists every valid SettingField
func SettingFields() []SettingField {
	return []SettingField{SettingDisplayName}
}

// MascotFields lists every valid MascotField
func MascotFields() []MascotField {
	return []MascotField{MascotName, MascotColor}
}

// ParseSettingField maps a user-facing field name ("displayName" or
// "display-name") to its SettingField
func ParseSettingField(name string) (SettingField, error) {
	switch normalizeFieldName(name) {
	case "displayname":
		return SettingDisplayName, nil
	default:
		return 0, &UnknownFieldError{Name: name}
	}
}

// ParseMascotField maps a user-facing field name to its MascotField.
// The "mascot" prefix is optional, so "name" and "mascot-name" both work.
func ParseMascotField(name string) (MascotField, error) {
	switch strings.TrimPrefix(normalizeFieldName(name), "mascot") {
	case "name":
		return MascotName, nil
	case "color":
		return MascotColor, nil
	default:
		return 0, &UnknownFieldError{Name: name}
	}
}

func normalizeFieldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}
