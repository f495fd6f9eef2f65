package screen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/floatbar/internal/theme"
)

// InfoScreen displays a modal message with an OK button.
type InfoScreen struct {
	Title   string
	Message string
	Thm     *theme.Theme

	OnClose func() tea.Cmd
}

// NewInfoScreen creates an informational modal.
func NewInfoScreen(title, message string, thm *theme.Theme) *InfoScreen {
	return &InfoScreen{
		Title:   title,
		Message: message,
		Thm:     thm,
	}
}

// Type returns the screen type.
func (s *InfoScreen) Type() Type {
	return TypeInfo
}

// Update closes the dialog on enter, esc or q.
func (s *InfoScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyQ, keyCtrlC:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// View renders the message box.
func (s *InfoScreen) View() string {
	width := max(40, min(72, lipgloss.Width(s.Message)+6))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(0, 2).
		Width(width)

	titleStyle := lipgloss.NewStyle().
		Foreground(s.Thm.Accent).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Width(width - 4).
		Foreground(s.Thm.TextFg)

	okStyle := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Center).
		Foreground(s.Thm.AccentFg).
		Background(s.Thm.Accent).
		Bold(true)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(s.Title),
		"",
		messageStyle.Render(s.Message),
		"",
		okStyle.Render("[OK]"),
	))
}
