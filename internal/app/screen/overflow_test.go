package screen

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/floatbar/internal/menu"
	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

func newTestMenu() *menu.Model {
	m := menu.New(menu.Registry{
		1: {
			{ID: 1, Title: "Share", ShowAsAction: searchbar.ShowAlways},
			{ID: 2, Title: "Settings", ShowAsAction: searchbar.ShowNever},
			{ID: 3, Title: "About", ShowAsAction: searchbar.ShowNever},
		},
	}, 3, nil)
	m.Reset(1, 30)
	return m
}

func TestOverflowScreenSelects(t *testing.T) {
	m := newTestMenu()
	s := NewOverflowScreen(m, theme.Dracula())
	require.NotNil(t, s)
	assert.True(t, m.OverflowOpen())

	var got searchbar.MenuItem
	s.OnSelect = func(item searchbar.MenuItem) tea.Cmd {
		got = item
		return nil
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, next)
	assert.Contains(t, s.View(), "About")

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, next)
	assert.Equal(t, 3, got.ID)
	assert.False(t, m.OverflowOpen())
}

func TestOverflowScreenEscCloses(t *testing.T) {
	m := newTestMenu()
	s := NewOverflowScreen(m, theme.Dracula())
	require.NotNil(t, s)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, next)
	assert.False(t, m.OverflowOpen())
}

func TestOverflowScreenNothingToList(t *testing.T) {
	m := menu.New(menu.Registry{1: {{ID: 1, Title: "Share", ShowAsAction: searchbar.ShowAlways}}}, 3, nil)
	m.Reset(1, 30)
	assert.Nil(t, NewOverflowScreen(m, theme.Dracula()))
}

func TestHelpScreenRendersEnabledBindings(t *testing.T) {
	sections := []HelpSection{{
		Title: "Search",
		Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "focus the bar")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
		},
	}}
	s := NewHelpScreen(sections, 80, 30, theme.Nord())

	view := s.View()
	assert.Contains(t, view, "focus the bar")
	assert.NotContains(t, view, "hidden")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Nil(t, next)
}
