package searchbar

func (c *Controller) applyStyle(s Style) {
	c.style.MenuID = s.MenuID
	c.SetQueryTextSize(s.QueryTextSize)
	c.SetSearchHint(s.SearchHint)
	c.SetShowSearchKey(s.ShowSearchKey)
	c.SetCloseOnKeyboardDismiss(s.CloseOnKeyboardDismiss)
	c.SetBackgroundColor(s.BackgroundColor)
	c.SetLeftActionIconColor(s.LeftActionColor)
	c.SetClearButtonColor(s.ClearButtonColor)
	c.SetActionMenuOverflowColor(s.OverflowIconColor)
	c.SetMenuItemIconColor(s.MenuItemIconColor)
	c.SetQueryTextColor(s.QueryTextColor)
	c.SetHintTextColor(s.HintTextColor)
}

// SetQueryTextColor sets the color of the query text.
func (c *Controller) SetQueryTextColor(color Color) {
	c.style.QueryTextColor = color
	c.field.SetTextColor(color)
}

// SetViewTextColor sets query and hint text to one color.
func (c *Controller) SetViewTextColor(color Color) {
	c.SetQueryTextColor(color)
	c.SetHintTextColor(color)
}

// SetHintTextColor sets the color of the hint.
func (c *Controller) SetHintTextColor(color Color) {
	c.style.HintTextColor = color
	c.field.SetHintColor(color)
}

// SetQueryTextSize sets the query text size. Non-positive sizes fall back
// to DefaultQueryTextSize.
func (c *Controller) SetQueryTextSize(size int) {
	if size <= 0 {
		size = DefaultQueryTextSize
	}
	c.style.QueryTextSize = size
	c.field.SetTextSize(size)
}

func (c *Controller) SetClearButtonColor(color Color) {
	c.style.ClearButtonColor = color
}

func (c *Controller) SetLeftActionIconColor(color Color) {
	c.style.LeftActionColor = color
}

func (c *Controller) SetActionMenuOverflowColor(color Color) {
	c.style.OverflowIconColor = color
	c.menu.SetOverflowColor(color)
}

func (c *Controller) SetMenuItemIconColor(color Color) {
	c.style.MenuItemIconColor = color
	c.menu.SetActionIconColor(color)
}

func (c *Controller) SetBackgroundColor(color Color) {
	c.style.BackgroundColor = color
}

// SetSearchHint sets the hint shown while the field is empty. An empty hint
// restores DefaultSearchHint.
func (c *Controller) SetSearchHint(hint string) {
	if hint == "" {
		hint = DefaultSearchHint
	}
	c.style.SearchHint = hint
	c.field.SetHint(hint)
}

// SetShowSearchKey toggles the keyboard search action.
func (c *Controller) SetShowSearchKey(show bool) {
	c.style.ShowSearchKey = show
	c.field.SetSearchAction(show)
}

// SetCloseOnKeyboardDismiss makes a user keyboard dismissal also leave the
// focused state.
func (c *Controller) SetCloseOnKeyboardDismiss(closeOnDismiss bool) {
	c.style.CloseOnKeyboardDismiss = closeOnDismiss
}

// SetSearchFocusable controls whether the field can take focus from the
// user.
func (c *Controller) SetSearchFocusable(focusable bool) {
	c.field.SetFocusable(focusable)
}
