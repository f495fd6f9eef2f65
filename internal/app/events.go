package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chmouel/floatbar/internal/log"
	"github.com/chmouel/floatbar/internal/searchbar"
)

const eventLogSize = 50

// eventLog keeps the most recent bar callbacks for display.
type eventLog struct {
	entries []string
}

func (e *eventLog) add(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	e.entries = append(e.entries, entry)
	if len(e.entries) > eventLogSize {
		e.entries = e.entries[len(e.entries)-eventLogSize:]
	}
}

// last returns up to n entries, oldest first.
func (e *eventLog) last(n int) []string {
	if n <= 0 || len(e.entries) == 0 {
		return nil
	}
	if n > len(e.entries) {
		n = len(e.entries)
	}
	return e.entries[len(e.entries)-n:]
}

// listeners wires the bar callbacks to the event log and the status line.
func (m *Model) listeners() searchbar.Listeners {
	return searchbar.Listeners{
		OnQueryChange: func(oldQuery, newQuery string) {
			m.events.add("query %q -> %q", oldQuery, newQuery)
			log.Debug("query changed", zap.String("old", oldQuery), zap.String("new", newQuery))
		},
		OnSearch: func(query string) {
			m.events.add("search %q", query)
			m.status = fmt.Sprintf("Searched for %q", query)
			log.Info("search", zap.String("query", query))
		},
		OnFocus: func() {
			m.events.add("focus")
			log.Debug("focus")
		},
		OnFocusCleared: func() {
			m.events.add("focus cleared")
			log.Debug("focus cleared")
		},
		OnMenuOpened: func() {
			m.events.add("menu opened")
			log.Debug("menu opened")
		},
		OnMenuClosed: func() {
			m.events.add("menu closed")
			log.Debug("menu closed")
		},
		OnHomeClicked: func() {
			m.events.add("home")
			m.status = "Home"
			log.Debug("home clicked")
		},
		OnMenuItemSelected: func(item searchbar.MenuItem) {
			m.events.add("item %d %q", item.ID, item.Title)
			m.status = fmt.Sprintf("Selected %s", item.Title)
			log.Info("menu item selected", zap.Int("id", item.ID), zap.String("title", item.Title))
		},
		OnClearSearch: func() {
			m.events.add("clear")
			log.Debug("search cleared")
		},
	}
}
