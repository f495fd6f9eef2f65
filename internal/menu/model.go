// Package menu lays out the action items and overflow list of the search
// bar menu within the width the bar gives it.
package menu

import (
	"time"

	"github.com/chmouel/floatbar/internal/searchbar"
)

// TargetActions is the animation target for the row of action items.
const TargetActions searchbar.Target = "menu-actions"

// ActionFadeDuration is the fade used when ifRoom items come back.
const ActionFadeDuration = 250 * time.Millisecond

// Registry maps menu ids to their items in declaration order.
type Registry map[int][]searchbar.MenuItem

var _ searchbar.MenuWidget = (*Model)(nil)

// Model implements searchbar.MenuWidget.
type Model struct {
	registry  Registry
	cellWidth int
	anim      searchbar.Animator

	menuID    int
	items     []searchbar.MenuItem
	fitIfRoom int
	ifRoomOff bool
	onWidth   func(int)

	iconColor     searchbar.Color
	overflowColor searchbar.Color

	popupOpen bool
	cursor    int
}

// New returns an empty menu. cellWidth is the width of one action slot in
// host pixels; anim may be nil.
func New(registry Registry, cellWidth int, anim searchbar.Animator) *Model {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return &Model{
		registry:  registry,
		cellWidth: cellWidth,
		anim:      anim,
		menuID:    searchbar.NoMenu,
	}
}

// SetRegistry swaps the menu definitions. The current menu is not
// re-inflated until the next Reset.
func (m *Model) SetRegistry(r Registry) {
	m.registry = r
}

// Reset inflates menuID and lays out its items within availableWidth.
func (m *Model) Reset(menuID, availableWidth int) {
	m.menuID = menuID
	m.items = m.registry[menuID]
	m.ifRoomOff = false
	m.popupOpen = false
	m.cursor = 0
	m.fitIfRoom = fitIfRoom(m.items, availableWidth/m.cellWidth)
	m.notify()
}

// fitIfRoom returns how many ifRoom items get an action slot out of slots.
// Always items take their slots first and the overflow button reserves one
// when anything is left over.
func fitIfRoom(items []searchbar.MenuItem, slots int) int {
	var always, ifRoom, never int
	for _, it := range items {
		switch it.ShowAsAction {
		case searchbar.ShowAlways:
			always++
		case searchbar.ShowIfRoom:
			ifRoom++
		case searchbar.ShowNever:
			never++
		}
	}
	free := slots - always
	if never > 0 || ifRoom > free {
		free--
	}
	return max(0, min(free, ifRoom))
}

// HideIfRoomItems moves ifRoom items into the overflow list.
func (m *Model) HideIfRoomItems(animated bool) {
	m.ifRoomOff = true
	if m.anim != nil {
		m.anim.Set(TargetActions, searchbar.PropAlpha, 1)
	}
	m.notify()
}

// ShowIfRoomItems brings ifRoom items back as actions where they fit.
func (m *Model) ShowIfRoomItems(animated bool) {
	m.ifRoomOff = false
	if m.anim != nil {
		if animated {
			start := 0.0
			m.anim.Start(searchbar.Sequence{
				Name: "menu-actions-in",
				Steps: []searchbar.Step{{
					Target:   TargetActions,
					Property: searchbar.PropAlpha,
					From:     &start,
					To:       1,
					Duration: ActionFadeDuration,
				}},
			})
		} else {
			m.anim.Set(TargetActions, searchbar.PropAlpha, 1)
		}
	}
	m.notify()
}

func (m *Model) SetActionIconColor(c searchbar.Color) { m.iconColor = c }
func (m *Model) SetOverflowColor(c searchbar.Color)   { m.overflowColor = c }

// ActionIconColor returns the action icon tint.
func (m *Model) ActionIconColor() searchbar.Color { return m.iconColor }

// OverflowColor returns the overflow button tint.
func (m *Model) OverflowColor() searchbar.Color { return m.overflowColor }

// CurrentItems returns every item of the inflated menu.
func (m *Model) CurrentItems() []searchbar.MenuItem { return m.items }

// MenuID returns the inflated menu id.
func (m *Model) MenuID() int { return m.menuID }

func (m *Model) SetOnVisibleWidthChanged(fn func(width int)) {
	m.onWidth = fn
}

func (m *Model) notify() {
	if m.popupOpen && len(m.OverflowItems()) == 0 {
		m.popupOpen = false
	}
	m.clampCursor()
	if m.onWidth != nil {
		m.onWidth(m.VisibleWidth())
	}
}

// Actions returns the items currently shown as actions, in menu order.
func (m *Model) Actions() []searchbar.MenuItem {
	var out []searchbar.MenuItem
	shown := 0
	for _, it := range m.items {
		switch it.ShowAsAction {
		case searchbar.ShowAlways:
			out = append(out, it)
		case searchbar.ShowIfRoom:
			if !m.ifRoomOff && shown < m.fitIfRoom {
				out = append(out, it)
			}
			shown++
		case searchbar.ShowNever:
		}
	}
	return out
}

// OverflowItems returns the items listed behind the overflow button:
// ifRoom items that did not fit or are hidden, then never items.
func (m *Model) OverflowItems() []searchbar.MenuItem {
	var ifRoom, never []searchbar.MenuItem
	shown := 0
	for _, it := range m.items {
		switch it.ShowAsAction {
		case searchbar.ShowIfRoom:
			if m.ifRoomOff || shown >= m.fitIfRoom {
				ifRoom = append(ifRoom, it)
			}
			shown++
		case searchbar.ShowNever:
			never = append(never, it)
		case searchbar.ShowAlways:
		}
	}
	return append(ifRoom, never...)
}

// HasOverflow reports whether the overflow button is shown.
func (m *Model) HasOverflow() bool { return len(m.OverflowItems()) > 0 }

// VisibleWidth is the width taken by visible actions and the overflow
// button.
func (m *Model) VisibleWidth() int {
	slots := len(m.Actions())
	if m.HasOverflow() {
		slots++
	}
	return slots * m.cellWidth
}

// OpenOverflow shows the overflow popup. It returns false when there is
// nothing to list.
func (m *Model) OpenOverflow() bool {
	if !m.HasOverflow() {
		return false
	}
	m.popupOpen = true
	m.cursor = 0
	return true
}

// CloseOverflow hides the overflow popup.
func (m *Model) CloseOverflow() { m.popupOpen = false }

// OverflowOpen reports whether the popup is shown.
func (m *Model) OverflowOpen() bool { return m.popupOpen }

// Cursor returns the highlighted overflow row.
func (m *Model) Cursor() int { return m.cursor }

// MoveCursor moves the popup highlight by delta, wrapping around.
func (m *Model) MoveCursor(delta int) {
	n := len(m.OverflowItems())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) clampCursor() {
	n := len(m.OverflowItems())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// Selected returns the highlighted overflow item and closes the popup.
func (m *Model) Selected() (searchbar.MenuItem, bool) {
	items := m.OverflowItems()
	if !m.popupOpen || len(items) == 0 {
		return searchbar.MenuItem{}, false
	}
	m.popupOpen = false
	return items[m.cursor], true
}

// Action returns the n-th visible action (0-based).
func (m *Model) Action(n int) (searchbar.MenuItem, bool) {
	actions := m.Actions()
	if n < 0 || n >= len(actions) {
		return searchbar.MenuItem{}, false
	}
	return actions[n], true
}
