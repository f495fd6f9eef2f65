package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/floatbar/internal/theme"
)

// HelpSection groups key bindings under a heading.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpScreen renders the full key reference in a scrollable viewport.
type HelpScreen struct {
	Viewport viewport.Model
	Thm      *theme.Theme
}

// NewHelpScreen lays out sections within maxWidth x maxHeight.
func NewHelpScreen(sections []HelpSection, maxWidth, maxHeight int, thm *theme.Theme) *HelpScreen {
	width := max(30, min(70, maxWidth-4))
	height := max(5, min(24, maxHeight-4))

	vp := viewport.New(width, height)
	vp.SetContent(renderHelp(sections, thm))
	return &HelpScreen{Viewport: vp, Thm: thm}
}

func renderHelp(sections []HelpSection, thm *theme.Theme) string {
	heading := lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(thm.IconFg).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(thm.TextFg)

	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(heading.Render(sec.Title))
		b.WriteString("\n")
		for _, kb := range sec.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(descStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Type returns the screen type.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// Update scrolls the reference and closes on esc, q or ?.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyQ, keyCtrlC, "?":
		return nil, nil
	}
	var cmd tea.Cmd
	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

// View renders the help box.
func (s *HelpScreen) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(0, 1).
		Render(s.Viewport.View())
}
