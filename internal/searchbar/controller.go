// Package searchbar implements the state machine behind a floating search
// bar: focus transitions, the left action icon, clear button and menu
// layout, and saved-state survival. It renders nothing; hosts adapt their
// widgets to EditableField, MenuWidget and Host and draw Visual.
package searchbar

import (
	"errors"
	"fmt"
)

// ErrNoField is returned by New when no editable field is supplied.
var ErrNoField = errors.New("searchbar: editable field is required")

// Options configure a Controller.
type Options struct {
	Field    EditableField
	Menu     MenuWidget
	Host     Host
	Animator Animator
	// Style defaults to DefaultStyle when left zero.
	Style Style
	// Mode defaults to DefaultLeftActionMode when left zero.
	Mode      LeftActionMode
	Listeners Listeners
	Logf      func(format string, args ...any)
}

// Visual is the logical end state of everything a host draws. Animated
// properties settle on these values once their sequences finish.
type Visual struct {
	Icon                    Icon
	MorphProgress           float64
	LeftAction              Visibility
	Progress                Visibility
	ClearButton             Visibility
	ClearButtonTranslationX int
	InputPaddingRight       int
	InputTranslationX       int
	LongClickable           bool
	KeyboardShown           bool
	MenuItemsHidden         bool
}

// State is a copy of the observable widget state.
type State struct {
	Focused               bool
	LeftActionMode        LeftActionMode
	MenuOpen              bool
	Query                 string
	Title                 string
	TitleMode             bool
	MenuItemsVisibleWidth int
	ProgressShown         bool
	Style                 Style
}

// Controller owns the widget state and is the only thing that mutates it.
// It is not safe for concurrent use; hosts call it from their event loop.
type Controller struct {
	field     EditableField
	menu      MenuWidget
	host      Host
	anim      Animator
	listeners Listeners
	leftClick func()
	drawer    Drawer
	logf      func(string, ...any)

	focused       bool
	mode          LeftActionMode
	menuOpen      bool
	query         string
	title         string
	titleMode     bool
	menuWidth     int
	width         int
	laidOut       bool
	progressShown bool
	style         Style
	visual        Visual

	textEdits   suppressor
	focusEvents suppressor
}

// New builds a controller in the unfocused state with the menu closed.
func New(opts Options) (*Controller, error) {
	if opts.Field == nil {
		return nil, ErrNoField
	}
	mode := opts.Mode
	if mode == 0 {
		mode = DefaultLeftActionMode
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLeftActionMode, int(mode))
	}
	style := opts.Style
	if style == (Style{}) {
		style = DefaultStyle()
	}

	c := &Controller{
		field:     opts.Field,
		menu:      opts.Menu,
		host:      opts.Host,
		anim:      opts.Animator,
		listeners: opts.Listeners,
		logf:      opts.Logf,
		mode:      LeftActionUnset,
	}
	if c.menu == nil {
		c.menu = noopMenu{}
	}
	if c.host == nil {
		c.host = noopHost{}
	}
	if c.anim == nil {
		c.anim = instantAnimator{}
	}
	if km, ok := c.host.(KeyboardModeConfigurer); ok {
		km.ConfigureKeyboardMode()
	}
	c.menu.SetOnVisibleWidthChanged(c.HandleMenuVisibleWidthChanged)

	c.applyStyle(style)
	c.mode = mode

	c.setClearButton(Invisible)
	c.setProgressVisibility(Gone)
	c.refreshLeftIcon()
	c.applyOffsets(0)
	return c, nil
}

func (c *Controller) debugf(format string, args ...any) {
	if c.logf != nil {
		c.logf(format, args...)
	}
}

// SetListeners replaces all registered listeners.
func (c *Controller) SetListeners(l Listeners) {
	c.listeners = l
}

// SetLeftMenuClickHandler registers a handler that takes over hamburger
// clicks. While set, a click does not open or close the menu.
func (c *Controller) SetLeftMenuClickHandler(fn func()) {
	c.leftClick = fn
}

// AttachDrawer couples a navigation drawer to the hamburger icon: opening
// the menu opens the drawer and closing it closes the drawer. The host
// feeds drawer slide offsets back through SetMenuIconProgress.
func (c *Controller) AttachDrawer(d Drawer) {
	c.drawer = d
}

// DetachDrawer removes the drawer coupling.
func (c *Controller) DetachDrawer() {
	c.drawer = nil
}

// State returns a copy of the widget state.
func (c *Controller) State() State {
	return State{
		Focused:               c.focused,
		LeftActionMode:        c.mode,
		MenuOpen:              c.menuOpen,
		Query:                 c.query,
		Title:                 c.title,
		TitleMode:             c.titleMode,
		MenuItemsVisibleWidth: c.menuWidth,
		ProgressShown:         c.progressShown,
		Style:                 c.style,
	}
}

// Visual returns the logical visual state.
func (c *Controller) Visual() Visual { return c.visual }

// Style returns the current style attributes.
func (c *Controller) Style() Style { return c.style }

// IsFocused reports whether query editing is active.
func (c *Controller) IsFocused() bool { return c.focused }

// Query returns the last committed query.
func (c *Controller) Query() string { return c.query }

// Title returns the title set by SetTitle.
func (c *Controller) Title() string { return c.title }

// TitleMode reports whether the idle text is a title.
func (c *Controller) TitleMode() bool { return c.titleMode }

// LeftActionMode returns the current left action mode.
func (c *Controller) LeftActionMode() LeftActionMode { return c.mode }

// IsMenuOpen reports the hamburger menu state.
func (c *Controller) IsMenuOpen() bool { return c.menuOpen }

// CurrentMenuItems returns the items of the inflated menu.
func (c *Controller) CurrentMenuItems() []MenuItem { return c.menu.CurrentItems() }

// RequestFocus moves the bar into or out of the focused state. It returns
// true only when the call took the bar from focused to unfocused, which
// hosts use to decide whether a back action was consumed.
func (c *Controller) RequestFocus(focused bool) bool {
	changedToUnfocused := !focused && c.focused
	if focused != c.focused {
		c.setFocused(focused)
	}
	return changedToUnfocused
}

// ClearFocus leaves the focused state if active.
func (c *Controller) ClearFocus() {
	c.RequestFocus(false)
}

func (c *Controller) setFocused(focused bool) {
	c.focusEvents.Reset()
	if focused {
		c.enterFocused()
	} else {
		c.exitFocused()
	}
}

func (c *Controller) enterFocused() {
	c.debugf("searchbar: enter focused (mode=%s title=%t)", c.mode, c.titleMode)
	c.focused = true
	c.field.RequestFocus()

	// Offsets go first: hiding the items reports a new width and the input
	// must not jump in between.
	c.applyOffsets(0)
	c.menu.HideIfRoomItems(true)
	c.visual.MenuItemsHidden = true

	c.transitionInLeftSection(true)
	c.showKeyboard()

	if c.menuOpen && c.mode == LeftActionHamburger {
		c.CloseMenu(false)
	}

	if c.titleMode {
		c.textEdits.Add()
		c.field.SetText("")
		c.onTextChanged("", false)
	} else {
		c.field.SetSelection(runeLen(c.field.Text()))
	}

	c.field.SetLongClickable(true)
	c.visual.LongClickable = true
	if c.field.Text() == "" {
		c.setClearButton(Invisible)
	} else {
		c.setClearButton(Visible)
	}
	c.listeners.focus()
}

func (c *Controller) exitFocused() {
	c.debugf("searchbar: exit focused (mode=%s title=%t)", c.mode, c.titleMode)
	c.focused = false
	c.field.ClearFocus()

	c.applyOffsets(0)
	c.menu.ShowIfRoomItems(true)
	c.visual.MenuItemsHidden = false

	c.transitionOutLeftSection(true)
	c.setClearButton(Gone)
	c.hideKeyboard()

	if c.titleMode {
		c.applyText(c.title, true)
	}

	c.field.SetLongClickable(false)
	c.visual.LongClickable = false
	c.listeners.focusCleared()
}

func (c *Controller) showKeyboard() {
	c.visual.KeyboardShown = true
	c.host.ShowKeyboard()
}

func (c *Controller) hideKeyboard() {
	c.visual.KeyboardShown = false
	c.host.HideKeyboard()
}

// SetSearchText replaces the query and leaves title mode. While focused the
// change is reported to OnQueryChange like a user edit.
func (c *Controller) SetSearchText(text string) {
	c.titleMode = false
	c.applyText(text, false)
}

// SetTitle shows text as the idle label. When the bar gains focus the label
// is cleared for editing and it comes back when focus is lost.
func (c *Controller) SetTitle(text string) {
	c.title = text
	c.titleMode = true
	c.applyText(text, false)
}

// ClearQuery empties the field.
func (c *Controller) ClearQuery() {
	c.field.SetText("")
	c.onTextChanged("", true)
}

// applyText writes text into the field and runs the text-change policy.
// Programmatic writes are not reported to listeners.
func (c *Controller) applyText(text string, programmatic bool) {
	if programmatic {
		c.textEdits.Add()
	}
	c.field.SetText(text)
	c.field.SetSelection(runeLen(text))
	c.onTextChanged(text, true)
}

// HandleTextChanged is called by the host for every edit of the field.
func (c *Controller) HandleTextChanged(text string) {
	c.onTextChanged(text, true)
}

func (c *Controller) onTextChanged(text string, commit bool) {
	suppressed := c.textEdits.Consume()
	if !suppressed && c.focused {
		switch {
		case text != "" && c.visual.ClearButton != Visible:
			c.visual.ClearButton = Visible
			c.anim.Set(TargetClearButton, PropVisibility, float64(Visible))
			c.anim.Start(Sequence{
				Name: "clear-fade-in",
				Steps: []Step{
					tween(TargetClearButton, PropAlpha, from(0), 1, ClearButtonFadeDuration, 0),
				},
			})
		case text == "":
			c.setClearButton(Invisible)
		}
		if text != c.query {
			c.listeners.queryChanged(c.query, text)
		}
	}
	if commit {
		c.query = text
	}
}

// HandleFieldFocusChanged is called when the field gains or loses focus.
// After RestoreState brings back a focused record, the host must report the
// focus it was asked for exactly once; that first report is skipped. A host
// that never reports it would have its next real focus change swallowed.
func (c *Controller) HandleFieldFocusChanged(hasFocus bool) {
	if c.focusEvents.Consume() {
		return
	}
	if hasFocus != c.focused {
		c.setFocused(hasFocus)
	}
}

// HandleKeyboardDismissed is called when the soft keyboard was closed by the
// user.
func (c *Controller) HandleKeyboardDismissed() {
	c.visual.KeyboardShown = false
	if c.style.CloseOnKeyboardDismiss && c.focused {
		c.setFocused(false)
	}
}

// HandleFieldTapped is called when the user taps the field. A focused bar
// whose keyboard was dismissed asks the host to show it again.
func (c *Controller) HandleFieldTapped() {
	if c.focused && !c.visual.KeyboardShown {
		c.showKeyboard()
	}
}

// HandleSearchKey is called when the keyboard search action fires.
func (c *Controller) HandleSearchKey() {
	query := c.Query()
	c.listeners.search(query)
	if c.titleMode {
		c.title = query
	}
	c.applyText(query, true)
	if c.focused {
		c.setFocused(false)
	}
}

// HandleClearClicked is called when the clear button is pressed.
func (c *Controller) HandleClearClicked() {
	c.ClearQuery()
	c.listeners.clearSearch()
}

// HandleLeftActionClicked dispatches a click on the left icon.
func (c *Controller) HandleLeftActionClicked() {
	if c.focused {
		c.setFocused(false)
		return
	}
	switch c.mode {
	case LeftActionHamburger:
		if c.leftClick != nil {
			c.leftClick()
			return
		}
		c.ToggleMenu()
	case LeftActionSearch:
		c.setFocused(true)
	case LeftActionHome:
		c.listeners.homeClicked()
	case LeftActionNone:
	}
}

// HandleMenuItemSelected is called when an action or overflow item is
// chosen.
func (c *Controller) HandleMenuItemSelected(item MenuItem) {
	c.listeners.menuItemSelected(item)
}

// HandleMenuVisibleWidthChanged is the menu widget's width listener.
func (c *Controller) HandleMenuVisibleWidthChanged(width int) {
	if width < 0 {
		width = 0
	}
	c.menuWidth = width
	c.applyOffsets(width)
}

func (c *Controller) applyOffsets(menuWidth int) {
	off := ComputeOffsets(menuWidth, c.focused, c.host.DpToPx)
	c.visual.ClearButtonTranslationX = off.ClearButtonTranslationX
	c.visual.InputPaddingRight = off.InputPaddingRight
	c.anim.Set(TargetClearButton, PropTranslationX, float64(off.ClearButtonTranslationX))
	c.field.SetPaddingRight(off.InputPaddingRight)
}

// SetWidth records the width given to the bar by the host layout. The first
// pass and every later change re-inflate the configured menu.
func (c *Controller) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	if c.laidOut && width == c.width {
		return
	}
	c.width = width
	c.laidOut = true
	c.InflateOverflowMenu(c.style.MenuID)
}

// InflateOverflowMenu loads the menu with the given id. Negative ids clear
// the menu.
func (c *Controller) InflateOverflowMenu(menuID int) {
	if menuID < 0 {
		menuID = NoMenu
	}
	c.style.MenuID = menuID
	c.menu.Reset(menuID, c.width/2)
	if c.focused {
		c.menu.HideIfRoomItems(false)
	}
}

// ShowProgress swaps the left icon for a busy indicator.
func (c *Controller) ShowProgress() {
	c.progressShown = true
	c.setLeftActionVisibility(Gone)
	c.setProgressVisibility(Visible)
	c.anim.Start(Sequence{
		Name: "progress-in",
		Steps: []Step{
			tween(TargetProgress, PropAlpha, from(0), 1, ProgressFadeDuration, 0),
		},
	})
}

// HideProgress restores the left icon after ShowProgress.
func (c *Controller) HideProgress() {
	c.progressShown = false
	c.setProgressVisibility(Gone)
	if IconFor(c.mode, c.focused, c.menuOpen).Visible {
		c.setLeftActionVisibility(Visible)
	} else {
		c.setLeftActionVisibility(Invisible)
	}
	c.anim.Start(Sequence{
		Name: "left-action-in",
		Steps: []Step{
			tween(TargetLeftAction, PropAlpha, from(0), 1, ProgressFadeDuration, 0),
		},
	})
}

func (c *Controller) setClearButton(v Visibility) {
	c.visual.ClearButton = v
	c.anim.Set(TargetClearButton, PropVisibility, float64(v))
	c.anim.Set(TargetClearButton, PropAlpha, 1)
}

func (c *Controller) setLeftActionVisibility(v Visibility) {
	c.visual.LeftAction = v
	c.anim.Set(TargetLeftAction, PropVisibility, float64(v))
}

func (c *Controller) setProgressVisibility(v Visibility) {
	c.visual.Progress = v
	c.anim.Set(TargetProgress, PropVisibility, float64(v))
}

func (c *Controller) setInputTranslation(px int) {
	c.visual.InputTranslationX = px
	c.anim.Set(TargetInputSection, PropTranslationX, float64(px))
}

func runeLen(s string) int {
	return len([]rune(s))
}
