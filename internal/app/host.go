package app

import (
	"time"

	"github.com/chmouel/floatbar/internal/anim"
	"github.com/chmouel/floatbar/internal/searchbar"
)

// dpPerColumn is how many density-independent pixels one terminal column
// stands for.
const dpPerColumn = 12

func dpToColumns(dp int) int {
	if dp >= 0 {
		return (dp + dpPerColumn - 1) / dpPerColumn
	}
	return -((-dp + dpPerColumn - 1) / dpPerColumn)
}

var (
	_ searchbar.Host                   = (*termHost)(nil)
	_ searchbar.KeyboardModeConfigurer = (*termHost)(nil)
)

// termHost is the environment of the bar: the soft keyboard is the text
// input's key focus.
type termHost struct {
	field *textField
	logf  func(string, ...any)
}

func (h *termHost) ShowKeyboard()     { h.field.showKeyboard() }
func (h *termHost) HideKeyboard()     { h.field.hideKeyboard() }
func (h *termHost) DpToPx(dp int) int { return dpToColumns(dp) }

func (h *termHost) ConfigureKeyboardMode() {
	if h.logf != nil {
		h.logf("keyboard mode: input keeps its row")
	}
}

const (
	targetDrawer        searchbar.Target = "drawer"
	drawerSlideDuration                  = 250 * time.Millisecond
	drawerDragStep                       = 0.25
)

var _ searchbar.Drawer = (*drawer)(nil)

// drawer is the navigation panel opened by the hamburger icon. Its slide
// offset lives in the animation driver so the icon can follow it.
type drawer struct {
	anim    *anim.Driver
	items   []string
	cursor  int
	open    bool
	lastFed float64
}

func (d *drawer) Open() {
	d.open = true
	d.slide("drawer-open", 1)
}

func (d *drawer) Close() {
	d.open = false
	d.slide("drawer-close", 0)
}

func (d *drawer) slide(name string, to float64) {
	d.anim.Start(searchbar.Sequence{
		Name: name,
		Steps: []searchbar.Step{{
			Target:   targetDrawer,
			Property: searchbar.PropProgress,
			To:       to,
			Duration: drawerSlideDuration,
		}},
	})
}

// Offset is 0 when closed and 1 when fully open.
func (d *drawer) Offset() float64 {
	return d.anim.ValueOr(targetDrawer, searchbar.PropProgress, 0)
}

// Drag moves the panel by delta as a user swipe would and returns the new
// offset.
func (d *drawer) Drag(delta float64) float64 {
	v := min(1, max(0, d.Offset()+delta))
	d.anim.Set(targetDrawer, searchbar.PropProgress, v)
	return v
}

// takeOffset returns the offset and whether it moved since the last call.
func (d *drawer) takeOffset() (float64, bool) {
	v := d.Offset()
	if v == d.lastFed {
		return v, false
	}
	d.lastFed = v
	return v, true
}

func (d *drawer) MoveCursor(delta int) {
	n := len(d.items)
	if n == 0 {
		return
	}
	d.cursor = ((d.cursor+delta)%n + n) % n
}

func (d *drawer) Selected() (string, bool) {
	if len(d.items) == 0 {
		return "", false
	}
	return d.items[min(d.cursor, len(d.items)-1)], true
}

func (d *drawer) SetItems(items []string) {
	d.items = items
	if d.cursor >= len(items) {
		d.cursor = 0
	}
}
