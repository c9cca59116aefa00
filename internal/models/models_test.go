package models

import (
	"errors"
	"testing"
)

func TestParseSettingField(t *testing.T) {
	for _, name := range []string{"displayName", "display-name", "display_name", " DisplayName "} {
		f, err := ParseSettingField(name)
		if err != nil {
			t.Fatalf("ParseSettingField(%q) failed: %v", name, err)
		}
		if f != SettingDisplayName {
			t.Errorf("ParseSettingField(%q) = %v, want displayName", name, f)
		}
	}

	_, err := ParseSettingField("gui_name; DROP TABLE quotes")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("Expected ErrUnknownField, got %v", err)
	}
}

func TestParseMascotField(t *testing.T) {
	tests := []struct {
		name string
		want MascotField
	}{
		{"mascotName", MascotName},
		{"mascot-name", MascotName},
		{"name", MascotName},
		{"mascotColor", MascotColor},
		{"color", MascotColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMascotField(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ParseMascotField("size"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Expected ErrUnknownField, got %v", err)
	}
}

func TestFieldStringRoundTrip(t *testing.T) {
	for _, f := range SettingFields() {
		parsed, err := ParseSettingField(f.String())
		if err != nil || parsed != f {
			t.Errorf("round trip of %v failed: %v, %v", f, parsed, err)
		}
	}
	for _, f := range MascotFields() {
		parsed, err := ParseMascotField(f.String())
		if err != nil || parsed != f {
			t.Errorf("round trip of %v failed: %v, %v", f, parsed, err)
		}
	}
	if SettingField(0).String() != "unknown" || MascotField(42).String() != "unknown" {
		t.Error("invalid fields should stringify as unknown")
	}
}

func TestIsPrimaryLanguage(t *testing.T) {
	for _, lang := range []string{"German", "english", "ENGLISH"} {
		if !IsPrimaryLanguage(lang) {
			t.Errorf("%q should be primary", lang)
		}
	}
	for _, lang := range []string{"French", "", "Deutsch"} {
		if IsPrimaryLanguage(lang) {
			t.Errorf("%q should not be primary", lang)
		}
	}
}
