package searchbar

import "fmt"

// SetLeftActionMode switches the left action. Any running left section
// animation is superseded and the icon is redrawn for the current focus
// and menu state.
func (c *Controller) SetLeftActionMode(mode LeftActionMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLeftActionMode, int(mode))
	}
	if mode == c.mode {
		return nil
	}
	c.mode = mode
	c.refreshLeftIcon()
	return nil
}

// refreshLeftIcon draws the left section for the current state without
// animation.
func (c *Controller) refreshLeftIcon() {
	ic := IconFor(c.mode, c.focused, c.menuOpen)
	c.setIcon(ic.Icon, ic.Progress)
	c.resetLeftActionTransform()

	switch {
	case c.progressShown:
		c.setLeftActionVisibility(Gone)
	case ic.Visible:
		c.setLeftActionVisibility(Visible)
	default:
		c.setLeftActionVisibility(Invisible)
	}

	if c.mode == LeftActionNone && !c.focused {
		c.setInputTranslation(-c.host.DpToPx(LeftActionWidthAndMarginDp))
	} else {
		c.setInputTranslation(0)
	}
}

func (c *Controller) setIcon(icon Icon, progress float64) {
	c.visual.Icon = icon
	c.visual.MorphProgress = progress
	c.anim.Set(TargetLeftAction, PropProgress, progress)
}

func (c *Controller) resetLeftActionTransform() {
	c.anim.Set(TargetLeftAction, PropAlpha, 1)
	c.anim.Set(TargetLeftAction, PropScale, 1)
	c.anim.Set(TargetLeftAction, PropRotation, 0)
	c.anim.Set(TargetLeftAction, PropTranslationX, 0)
}

// transitionInLeftSection runs when focus is gained.
func (c *Controller) transitionInLeftSection(withAnim bool) {
	if c.progressShown {
		c.setLeftActionVisibility(Invisible)
	} else {
		c.setLeftActionVisibility(Visible)
	}

	switch c.mode {
	case LeftActionSearch, LeftActionNone:
		c.setIcon(IconBackArrow, 0)
		c.visual.InputTranslationX = 0
		seq, ok := enterSequence(c.mode, c.host.DpToPx(LeftActionEntranceOffsetDp))
		if withAnim && ok {
			c.anim.Start(seq)
			return
		}
		c.resetLeftActionTransform()
		c.setInputTranslation(0)
	case LeftActionHamburger, LeftActionHome:
	}
}

// transitionOutLeftSection runs when focus is lost.
func (c *Controller) transitionOutLeftSection(withAnim bool) {
	switch c.mode {
	case LeftActionSearch:
		c.setIcon(IconSearch, 0)
		c.anim.Set(TargetLeftAction, PropRotation, 0)
		if seq, ok := exitSequence(c.mode, 0); withAnim && ok {
			c.anim.Start(seq)
		} else {
			c.anim.Set(TargetLeftAction, PropAlpha, 1)
		}
	case LeftActionNone:
		shift := c.host.DpToPx(LeftActionWidthAndMarginDp)
		c.setIcon(IconBackArrow, 0)
		c.visual.InputTranslationX = -shift
		c.visual.LeftAction = Invisible
		if seq, ok := exitSequence(c.mode, shift); withAnim && ok {
			c.anim.Start(seq)
			return
		}
		c.resetLeftActionTransform()
		c.setLeftActionVisibility(Invisible)
		c.setInputTranslation(-shift)
	case LeftActionHamburger, LeftActionHome:
	}
}

// ToggleMenu opens a closed menu and closes an open one. It only acts in
// hamburger mode.
func (c *Controller) ToggleMenu() {
	if c.menuOpen {
		c.CloseMenu(true)
	} else {
		c.OpenMenu(true)
	}
}

// OpenMenu morphs the hamburger into an arrow and notifies OnMenuOpened.
func (c *Controller) OpenMenu(withAnim bool) {
	if c.mode != LeftActionHamburger {
		c.debugf("searchbar: open menu ignored in mode %s", c.mode)
		return
	}
	c.menuOpen = true
	c.morphTo(ProgressHamburger, ProgressArrow, withAnim)
	c.listeners.menuOpened()
	if c.drawer != nil {
		c.drawer.Open()
	}
}

// CloseMenu morphs the arrow back into a hamburger and notifies
// OnMenuClosed.
func (c *Controller) CloseMenu(withAnim bool) {
	if c.mode != LeftActionHamburger {
		c.debugf("searchbar: close menu ignored in mode %s", c.mode)
		return
	}
	c.menuOpen = false
	c.morphTo(ProgressArrow, ProgressHamburger, withAnim)
	c.listeners.menuClosed()
	if c.drawer != nil {
		c.drawer.Close()
	}
}

func (c *Controller) morphTo(start, end float64, withAnim bool) {
	c.visual.Icon = IconMenuArrow
	c.visual.MorphProgress = end
	if withAnim {
		name := "menu-open"
		if end == ProgressHamburger {
			name = "menu-close"
		}
		c.anim.Start(morphSequence(name, start, end))
		return
	}
	c.anim.Set(TargetLeftAction, PropProgress, end)
}

// SetMenuIconProgress drives the hamburger morph directly, typically from a
// drawer slide offset. Values are clamped to [0,1]. Reaching 0 or 1 closes
// or opens the menu if it is not already in that state.
func (c *Controller) SetMenuIconProgress(progress float64) {
	if c.mode != LeftActionHamburger {
		return
	}
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	c.visual.MorphProgress = progress
	c.anim.Set(TargetLeftAction, PropProgress, progress)

	switch {
	case progress == ProgressHamburger && c.menuOpen:
		c.CloseMenu(false)
	case progress == ProgressArrow && !c.menuOpen:
		c.OpenMenu(false)
	}
}

// SetMenuOpen records the menu state without callbacks or animation.
func (c *Controller) SetMenuOpen(open bool) {
	c.menuOpen = open
	if c.mode == LeftActionHamburger {
		c.setIcon(IconMenuArrow, menuProgress(open))
	}
}
