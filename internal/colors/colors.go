// Package colors validates user supplied mascot colors before they are stored
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for anything that is not a hex color, an ANSI
// 256 index or a known color name
var ErrInvalidColor = errors.New("invalid color (use a name like 'red', a hex color like '#FF0000' or an ANSI index 0-255)")

// Validate reports whether color can be rendered and stored as a mascot color
func Validate(color string) error {
	if _, err := Normalize(color); err != nil {
		return err
	}
	return nil
}

// Normalize returns the color in a form lipgloss understands: lowercase hex
// for hex and named colors, the decimal index for ANSI colors.
func Normalize(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return "", ErrInvalidColor
	}

	if strings.HasPrefix(color, "#") {
		if len(color) != 4 && len(color) != 7 {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		c, err := colorful.Hex(color)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		return c.Hex(), nil
	}

	if n, err := strconv.Atoi(color); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		return strconv.Itoa(n), nil
	}

	key := strings.ToLower(strings.ReplaceAll(color, " ", ""))
	if rgba, ok := colornames.Map[key]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c.Hex(), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
}
