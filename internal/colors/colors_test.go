package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	valid := []string{"black", "Red", "dark green", "#FF0000", "#f00", "#abcdef", "0", "255", " blue "}
	for _, color := range valid {
		t.Run(color, func(t *testing.T) {
			assert.NoError(t, Validate(color))
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	invalid := []string{"", "   ", "notacolor", "#GG0000", "#12345", "#1234567", "256", "-1", "red;"}
	for _, color := range invalid {
		t.Run(color, func(t *testing.T) {
			assert.ErrorIs(t, Validate(color), ErrInvalidColor)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Red", "#ff0000"},
		{"dark green", "#006400"},
		{"#FF0000", "#ff0000"},
		{"#f00", "#ff0000"},
		{"205", "205"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalize_ExtendedNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lavender", "#e6e6fa"},
		{"teal", "#008080"},
		{"DarkSlateGray", "#2f4f4f"},
		{"Slate Blue", "#6a5acd"},
		{"tan", "#d2b48c"},
		{"aquamarine", "#7fffd4"},
		{"LightYellow", "#ffffe0"},
		{"crimson", "#dc143c"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
