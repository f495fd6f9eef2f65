package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/chmouel/floatbar/internal/app/screen"
)

type keyMap struct {
	Focus      key.Binding
	Back       key.Binding
	Submit     key.Binding
	Clear      key.Binding
	LeftAction key.Binding
	Overflow   key.Binding
	Action     key.Binding
	Progress   key.Binding
	Title      key.Binding
	Mode       key.Binding
	Rotate     key.Binding
	Inspect    key.Binding
	DrawerIn   key.Binding
	DrawerOut  key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus:      key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide keyboard / leave")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear query")),
		LeftAction: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "left action")),
		Overflow:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "overflow menu")),
		Action: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "menu action"),
		),
		Progress:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle progress")),
		Title:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle title")),
		Mode:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "cycle left action")),
		Rotate:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "recreate (rotate)")),
		Inspect:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "saved state")),
		DrawerIn:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "drag drawer in")),
		DrawerOut: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "drag drawer out")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.LeftAction, k.Overflow, k.Rotate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, s := range k.sections() {
		out = append(out, s.Bindings)
	}
	return out
}

func (k keyMap) sections() []screen.HelpSection {
	return []screen.HelpSection{
		{Title: "Search", Bindings: []key.Binding{k.Focus, k.Submit, k.Clear, k.Back, k.Title}},
		{Title: "Bar", Bindings: []key.Binding{k.LeftAction, k.Overflow, k.Action, k.Progress, k.Mode}},
		{Title: "Drawer", Bindings: []key.Binding{k.DrawerOut, k.DrawerIn, k.Up, k.Down, k.Select}},
		{Title: "Lifecycle", Bindings: []key.Binding{k.Rotate, k.Inspect, k.Help, k.Quit}},
	}
}

// actionIndex returns the 0-based menu action addressed by an alt+digit key.
func actionIndex(k string) (int, bool) {
	if len(k) != 5 || k[:4] != "alt+" || k[4] < '1' || k[4] > '9' {
		return 0, false
	}
	return int(k[4] - '1'), true
}
