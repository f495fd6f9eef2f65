package searchbar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLeftActionMode is returned when a left action mode outside the
// supported set is assigned or decoded.
var ErrInvalidLeftActionMode = errors.New("invalid left action mode")

// LeftActionMode selects the role played by the leading icon.
// The numeric values are part of the saved-state wire format.
type LeftActionMode int

// Left action modes.
const (
	LeftActionUnset     LeftActionMode = -1
	LeftActionHamburger LeftActionMode = 1
	LeftActionSearch    LeftActionMode = 2
	LeftActionHome      LeftActionMode = 3
	LeftActionNone      LeftActionMode = 4
)

// DefaultLeftActionMode is used when no mode is configured.
const DefaultLeftActionMode = LeftActionNone

// Valid reports whether m is one of the four assignable modes.
func (m LeftActionMode) Valid() bool {
	switch m {
	case LeftActionHamburger, LeftActionSearch, LeftActionHome, LeftActionNone:
		return true
	default:
		return false
	}
}

// String returns the configuration name of the mode.
func (m LeftActionMode) String() string {
	switch m {
	case LeftActionHamburger:
		return "hamburger"
	case LeftActionSearch:
		return "search"
	case LeftActionHome:
		return "home"
	case LeftActionNone:
		return "none"
	case LeftActionUnset:
		return "unset"
	default:
		return fmt.Sprintf("LeftActionMode(%d)", int(m))
	}
}

// ParseLeftActionMode converts a configuration name to a mode.
func ParseLeftActionMode(name string) (LeftActionMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hamburger", "menu":
		return LeftActionHamburger, nil
	case "search":
		return LeftActionSearch, nil
	case "home", "back":
		return LeftActionHome, nil
	case "none", "":
		return LeftActionNone, nil
	default:
		return LeftActionUnset, fmt.Errorf("%w: %q", ErrInvalidLeftActionMode, name)
	}
}

// LeftActionModeNames lists the accepted configuration names.
func LeftActionModeNames() []string {
	return []string{"hamburger", "search", "home", "none"}
}

// Visibility mirrors the three-way visibility of a host view.
// Invisible keeps the slot, Gone releases it.
type Visibility int

// Visibility values.
const (
	Visible Visibility = iota
	Invisible
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Color is a packed ARGB color.
type Color uint32

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB".
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		v |= 0xFF << 24
	}
	return Color(v), nil
}

// Hex returns the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}
