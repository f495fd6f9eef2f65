// Package screen provides the modal overlays drawn over the search bar: the
// overflow menu popup, the key help and informational messages.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen represents a modal overlay that can handle input and render itself.
type Screen interface {
	// Update processes a key message and returns the updated screen and any command.
	// Returning nil for the Screen signals that this screen should be closed.
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)

	// View renders the screen's content.
	View() string

	// Type returns the screen's type identifier.
	Type() Type
}

// Type identifies the kind of screen being displayed.
type Type int

// Screen type constants.
const (
	TypeNone Type = iota
	TypeOverflow
	TypeHelp
	TypeInfo
)

// String returns a human-readable name for the screen type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeOverflow:
		return "overflow"
	case TypeHelp:
		return "help"
	case TypeInfo:
		return "info"
	default:
		return "unknown"
	}
}

const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyQ     = "q"
	keyCtrlC = "ctrl+c"
	keyUp    = "up"
	keyDown  = "down"
	keyK     = "k"
	keyJ     = "j"
)
