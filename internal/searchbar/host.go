package searchbar

// ShowAsAction controls where a menu item is placed.
type ShowAsAction int

// Menu item placement policies.
const (
	// ShowNever keeps the item in the overflow list.
	ShowNever ShowAsAction = iota
	// ShowIfRoom shows the item as an action while width allows and the bar
	// is not focused.
	ShowIfRoom
	// ShowAlways always shows the item as an action.
	ShowAlways
)

// MenuItem is an entry of the overflow menu.
type MenuItem struct {
	ID           int
	Title        string
	Icon         string
	ShowAsAction ShowAsAction
}

// EditableField is the host text input the bar drives.
// Setting text must not report back through HandleTextChanged; the
// controller runs its own text-change policy for programmatic edits.
// RequestFocus must eventually be reported through HandleFieldFocusChanged:
// the controller expects that echo after restoring a focused state.
type EditableField interface {
	Text() string
	SetText(text string)
	SetSelection(pos int)
	SetHint(hint string)
	SetTextColor(c Color)
	SetHintColor(c Color)
	SetTextSize(size int)
	SetSearchAction(enabled bool)
	SetLongClickable(enabled bool)
	SetFocusable(focusable bool)
	SetPaddingRight(px int)
	RequestFocus()
	ClearFocus()
}

// MenuWidget is the host overflow menu.
type MenuWidget interface {
	Reset(menuID int, availableWidth int)
	HideIfRoomItems(animated bool)
	ShowIfRoomItems(animated bool)
	SetActionIconColor(c Color)
	SetOverflowColor(c Color)
	CurrentItems() []MenuItem
	// SetOnVisibleWidthChanged registers the listener notified whenever the
	// width taken by visible action items changes.
	SetOnVisibleWidthChanged(fn func(width int))
}

// Host groups environment services: soft keyboard and unit conversion.
type Host interface {
	ShowKeyboard()
	HideKeyboard()
	DpToPx(dp int) int
}

// KeyboardModeConfigurer is optionally implemented by hosts that need to
// adjust their window for the soft keyboard once at construction.
type KeyboardModeConfigurer interface {
	ConfigureKeyboardMode()
}

// Drawer is a navigation drawer coupled to the hamburger icon.
type Drawer interface {
	Open()
	Close()
}

type noopMenu struct{}

func (noopMenu) Reset(int, int)                     {}
func (noopMenu) HideIfRoomItems(bool)               {}
func (noopMenu) ShowIfRoomItems(bool)               {}
func (noopMenu) SetActionIconColor(Color)           {}
func (noopMenu) SetOverflowColor(Color)             {}
func (noopMenu) CurrentItems() []MenuItem           { return nil }
func (noopMenu) SetOnVisibleWidthChanged(func(int)) {}

type noopHost struct{}

func (noopHost) ShowKeyboard()     {}
func (noopHost) HideKeyboard()     {}
func (noopHost) DpToPx(dp int) int { return dp }
