package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

const queryCharLimit = 256

var _ searchbar.EditableField = (*textField)(nil)

// textField adapts a textinput to the bar's editable field. Field focus and
// the soft keyboard are separate: the textinput only receives keys while the
// keyboard is shown.
type textField struct {
	input textinput.Model

	hasFocus      bool
	focusable     bool
	searchAction  bool
	longClickable bool
	textSize      int
	paddingRight  int
	textColor     searchbar.Color
	hintColor     searchbar.Color

	pending tea.Cmd
}

func newTextField() *textField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = queryCharLimit
	return &textField{
		input:        ti,
		focusable:    true,
		searchAction: true,
		textSize:     searchbar.DefaultQueryTextSize,
	}
}

func (f *textField) Text() string         { return f.input.Value() }
func (f *textField) SetText(text string)  { f.input.SetValue(text) }
func (f *textField) SetSelection(pos int) { f.input.SetCursor(pos) }
func (f *textField) SetHint(hint string)  { f.input.Placeholder = hint }

func (f *textField) SetTextColor(c searchbar.Color) {
	f.textColor = c
	f.restyle()
}

func (f *textField) SetHintColor(c searchbar.Color) {
	f.hintColor = c
	f.restyle()
}

// SetTextSize has no direct terminal equivalent; sizes above the default
// render bold.
func (f *textField) SetTextSize(size int) {
	f.textSize = size
	f.restyle()
}

func (f *textField) SetSearchAction(enabled bool)  { f.searchAction = enabled }
func (f *textField) SetLongClickable(enabled bool) { f.longClickable = enabled }
func (f *textField) SetPaddingRight(px int)        { f.paddingRight = px }

func (f *textField) SetFocusable(focusable bool) {
	f.focusable = focusable
	if !focusable {
		f.hasFocus = false
		f.input.Blur()
	}
}

func (f *textField) RequestFocus() {
	if f.focusable {
		f.hasFocus = true
	}
}

func (f *textField) ClearFocus() {
	f.hasFocus = false
}

func (f *textField) HasFocus() bool { return f.hasFocus }

func (f *textField) showKeyboard() {
	f.pending = f.input.Focus()
}

func (f *textField) hideKeyboard() {
	f.input.Blur()
}

func (f *textField) keyboardShown() bool { return f.input.Focused() }

// takeCmd returns the command queued by the last keyboard change.
func (f *textField) takeCmd() tea.Cmd {
	cmd := f.pending
	f.pending = nil
	return cmd
}

// update feeds a key to the input and reports whether the text changed.
func (f *textField) update(msg tea.Msg) (tea.Cmd, bool) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

func (f *textField) restyle() {
	text := lipgloss.NewStyle().Foreground(theme.Lip(f.textColor))
	if f.textSize > searchbar.DefaultQueryTextSize {
		text = text.Bold(true)
	}
	f.input.TextStyle = text
	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Lip(f.hintColor))
}

// view renders the input into exactly width columns.
func (f *textField) view(width int) string {
	if width <= 0 {
		return ""
	}
	f.input.Width = max(1, width-1)
	return fitWidth(f.input.View(), width)
}
