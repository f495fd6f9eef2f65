package searchbar

import (
	"fmt"

	"github.com/chmouel/floatbar/internal/searchbar/savedstate"
)

// SaveState snapshots everything needed to rebuild the bar after the host
// is recreated.
func (c *Controller) SaveState() savedstate.Record {
	s := c.style
	return savedstate.Record{
		Focused:                c.focused,
		Query:                  c.query,
		QueryTextSize:          s.QueryTextSize,
		SearchHint:             s.SearchHint,
		ShowSearchKey:          s.ShowSearchKey,
		TitleMode:              c.titleMode,
		QueryTextColor:         uint32(s.QueryTextColor),
		HintTextColor:          uint32(s.HintTextColor),
		OverflowColor:          uint32(s.OverflowIconColor),
		MenuItemIconColor:      uint32(s.MenuItemIconColor),
		LeftActionColor:        uint32(s.LeftActionColor),
		ClearButtonColor:       uint32(s.ClearButtonColor),
		MenuID:                 s.MenuID,
		LeftActionMode:         int(c.mode),
		CloseOnKeyboardDismiss: s.CloseOnKeyboardDismiss,
		Title:                  c.title,
	}
}

// RestoreState applies a snapshot taken by SaveState. No query or focus
// callbacks fire and no animation runs; a focused record rebuilds the
// focused layout directly.
func (c *Controller) RestoreState(r savedstate.Record) error {
	mode := LeftActionMode(r.LeftActionMode)
	if !mode.Valid() {
		return fmt.Errorf("restore state: %w: %d", ErrInvalidLeftActionMode, r.LeftActionMode)
	}

	c.focusEvents.Reset()
	c.focused = r.Focused
	c.titleMode = r.TitleMode
	c.title = r.Title
	if c.titleMode && c.title == "" && !c.focused {
		c.title = r.Query
	}

	c.applyText(r.Query, true)

	c.applyStyle(Style{
		QueryTextColor:         Color(r.QueryTextColor),
		HintTextColor:          Color(r.HintTextColor),
		QueryTextSize:          r.QueryTextSize,
		ClearButtonColor:       Color(r.ClearButtonColor),
		LeftActionColor:        Color(r.LeftActionColor),
		OverflowIconColor:      Color(r.OverflowColor),
		MenuItemIconColor:      Color(r.MenuItemIconColor),
		BackgroundColor:        c.style.BackgroundColor,
		MenuID:                 r.MenuID,
		SearchHint:             r.SearchHint,
		ShowSearchKey:          r.ShowSearchKey,
		CloseOnKeyboardDismiss: r.CloseOnKeyboardDismiss,
	})
	c.mode = mode
	c.refreshLeftIcon()
	if c.laidOut {
		c.InflateOverflowMenu(r.MenuID)
	}

	if !c.focused {
		// The instance may be focused from earlier use, so undo everything
		// enterFocused set up.
		c.field.ClearFocus()
		c.menu.ShowIfRoomItems(false)
		c.visual.MenuItemsHidden = false
		c.applyOffsets(c.menuWidth)
		c.transitionOutLeftSection(false)
		c.setClearButton(Gone)
		c.hideKeyboard()
		c.field.SetLongClickable(false)
		c.visual.LongClickable = false
		return nil
	}

	// The field may report the focus change caused by this request once
	// the host delivers it.
	c.focusEvents.Add()
	c.field.RequestFocus()
	c.applyOffsets(0)
	c.menu.HideIfRoomItems(false)
	c.visual.MenuItemsHidden = true
	c.transitionInLeftSection(false)
	if r.Query == "" {
		c.setClearButton(Invisible)
	} else {
		c.setClearButton(Visible)
	}
	c.field.SetLongClickable(true)
	c.visual.LongClickable = true
	c.showKeyboard()
	return nil
}

// MarshalState encodes SaveState.
func (c *Controller) MarshalState() ([]byte, error) {
	return savedstate.Encode(c.SaveState()), nil
}

// UnmarshalState decodes b and applies it with RestoreState.
func (c *Controller) UnmarshalState(b []byte) error {
	r, err := savedstate.Decode(b)
	if err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	return c.RestoreState(r)
}
