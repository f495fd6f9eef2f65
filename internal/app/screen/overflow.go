package screen

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/floatbar/internal/menu"
	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

const overflowMaxWidth = 28

// OverflowScreen is the popup listing the items behind the overflow button.
// The highlighted row lives in the menu model.
type OverflowScreen struct {
	Menu *menu.Model
	Thm  *theme.Theme

	OnSelect func(item searchbar.MenuItem) tea.Cmd
}

// NewOverflowScreen opens the overflow popup of m. It returns nil when the
// menu has nothing to list.
func NewOverflowScreen(m *menu.Model, thm *theme.Theme) *OverflowScreen {
	if !m.OpenOverflow() {
		return nil
	}
	return &OverflowScreen{Menu: m, Thm: thm}
}

// Type returns the screen type.
func (s *OverflowScreen) Type() Type {
	return TypeOverflow
}

// Update moves the highlight, selects with enter and closes with esc.
func (s *OverflowScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyUp, keyK:
		s.Menu.MoveCursor(-1)
	case keyDown, keyJ:
		s.Menu.MoveCursor(1)
	case keyEnter:
		item, ok := s.Menu.Selected()
		if !ok {
			return nil, nil
		}
		if s.OnSelect != nil {
			return nil, s.OnSelect(item)
		}
		return nil, nil
	case keyEsc, keyQ, keyCtrlC:
		s.Menu.CloseOverflow()
		return nil, nil
	}
	if !s.Menu.OverflowOpen() {
		return nil, nil
	}
	return s, nil
}

// View renders the item list with the highlighted row.
func (s *OverflowScreen) View() string {
	items := s.Menu.OverflowItems()
	width := 0
	for _, it := range items {
		width = max(width, lipgloss.Width(it.Title))
	}
	width = min(width+4, overflowMaxWidth)

	row := lipgloss.NewStyle().Width(width).Foreground(s.Thm.TextFg)
	selected := row.
		Foreground(s.Thm.AccentFg).
		Background(s.Thm.Accent).
		Bold(true)

	lines := make([]string, 0, len(items))
	for i, it := range items {
		text := " " + truncate.StringWithTail(it.Title, uint(width-2), "…")
		if i == s.Menu.Cursor() {
			lines = append(lines, selected.Render(text))
		} else {
			lines = append(lines, row.Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Lip(s.Menu.OverflowColor())).
		Render(strings.Join(lines, "\n"))
}
