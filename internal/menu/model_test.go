package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/floatbar/internal/searchbar"
)

const cell = 3

func testRegistry() Registry {
	return Registry{
		1: {
			{ID: 10, Title: "Share", ShowAsAction: searchbar.ShowAlways},
			{ID: 11, Title: "Sort", ShowAsAction: searchbar.ShowIfRoom},
			{ID: 12, Title: "Filter", ShowAsAction: searchbar.ShowIfRoom},
			{ID: 13, Title: "Settings", ShowAsAction: searchbar.ShowNever},
		},
		2: {
			{ID: 20, Title: "Voice", ShowAsAction: searchbar.ShowIfRoom},
		},
	}
}

func ids(items []searchbar.MenuItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestResetLaysOutWithinWidth(t *testing.T) {
	tests := []struct {
		name     string
		menu     int
		width    int
		actions  []int
		overflow []int
	}{
		{name: "room for everything", menu: 1, width: 4 * cell, actions: []int{10, 11, 12}, overflow: []int{13}},
		{name: "one ifRoom squeezed out", menu: 1, width: 3 * cell, actions: []int{10, 11}, overflow: []int{12, 13}},
		{name: "only always fits", menu: 1, width: 1 * cell, actions: []int{10}, overflow: []int{11, 12, 13}},
		{name: "single ifRoom without overflow", menu: 2, width: 1 * cell, actions: []int{20}, overflow: []int{}},
		{name: "unknown menu", menu: 99, width: 10 * cell, actions: []int{}, overflow: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(testRegistry(), cell, nil)
			m.Reset(tt.menu, tt.width)
			assert.Equal(t, tt.actions, ids(m.Actions()))
			assert.Equal(t, tt.overflow, ids(m.OverflowItems()))
		})
	}
}

func TestVisibleWidthListener(t *testing.T) {
	m := New(testRegistry(), cell, nil)
	var widths []int
	m.SetOnVisibleWidthChanged(func(w int) { widths = append(widths, w) })

	m.Reset(1, 10*cell)
	m.HideIfRoomItems(true)
	m.ShowIfRoomItems(false)

	// Three actions plus overflow, then one action plus overflow.
	assert.Equal(t, []int{4 * cell, 2 * cell, 4 * cell}, widths)
}

func TestHideIfRoomMovesItemsToOverflow(t *testing.T) {
	m := New(testRegistry(), cell, nil)
	m.Reset(1, 10*cell)

	m.HideIfRoomItems(false)

	assert.Equal(t, []int{10}, ids(m.Actions()))
	assert.Equal(t, []int{11, 12, 13}, ids(m.OverflowItems()))
}

func TestShowIfRoomAnimates(t *testing.T) {
	a := &recorder{}
	m := New(testRegistry(), cell, a)
	m.Reset(1, 10*cell)

	m.ShowIfRoomItems(true)
	require.Len(t, a.started, 1)
	assert.Equal(t, "menu-actions-in", a.started[0].Name)

	m.ShowIfRoomItems(false)
	assert.Len(t, a.started, 1)
}

func TestOverflowPopup(t *testing.T) {
	m := New(testRegistry(), cell, nil)
	m.Reset(2, 10*cell)
	assert.False(t, m.OpenOverflow(), "nothing to list")

	m.Reset(1, 2*cell)
	require.True(t, m.OpenOverflow())
	assert.True(t, m.OverflowOpen())

	m.MoveCursor(-1)
	assert.Equal(t, 2, m.Cursor())
	m.MoveCursor(1)
	assert.Equal(t, 0, m.Cursor())
	m.MoveCursor(1)

	item, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 12, item.ID)
	assert.False(t, m.OverflowOpen())

	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestActionByIndex(t *testing.T) {
	m := New(testRegistry(), cell, nil)
	m.Reset(1, 10*cell)

	item, ok := m.Action(1)
	require.True(t, ok)
	assert.Equal(t, 11, item.ID)

	_, ok = m.Action(5)
	assert.False(t, ok)
}

func TestColors(t *testing.T) {
	m := New(nil, 0, nil)
	m.SetActionIconColor(searchbar.RGB(1, 2, 3))
	m.SetOverflowColor(searchbar.RGB(4, 5, 6))

	assert.Equal(t, searchbar.RGB(1, 2, 3), m.ActionIconColor())
	assert.Equal(t, searchbar.RGB(4, 5, 6), m.OverflowColor())
	assert.Equal(t, searchbar.NoMenu, m.MenuID())
}

type recorder struct {
	started []searchbar.Sequence
}

func (r *recorder) Start(seq searchbar.Sequence)                      { r.started = append(r.started, seq) }
func (r *recorder) Set(searchbar.Target, searchbar.Property, float64) {}
