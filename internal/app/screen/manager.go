package screen

import tea "github.com/charmbracelet/bubbletea"

// Manager keeps the stack of open overlays. Only the top one receives keys.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates an empty screen manager.
func NewManager() *Manager {
	return &Manager{}
}

// Push shows s above the current screen.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop closes the current screen and returns it, or nil if none was shown.
func (m *Manager) Pop() Screen {
	removed := m.current
	if n := len(m.stack); n > 0 {
		m.current = m.stack[n-1]
		m.stack = m.stack[:n-1]
	} else {
		m.current = nil
	}
	return removed
}

// Current returns the top screen, or nil.
func (m *Manager) Current() Screen { return m.current }

// IsActive reports whether any screen is shown.
func (m *Manager) IsActive() bool { return m.current != nil }

// Type returns the type of the top screen, or TypeNone.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Clear closes every screen.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// StackDepth returns the number of screens below the current one.
func (m *Manager) StackDepth() int { return len(m.stack) }

// Dispatch routes a key to the top screen. A nil result pops it; a different
// screen replaces it.
func (m *Manager) Dispatch(msg tea.KeyMsg) tea.Cmd {
	if m.current == nil {
		return nil
	}
	next, cmd := m.current.Update(msg)
	if next == nil {
		m.Pop()
	} else {
		m.current = next
	}
	return cmd
}
