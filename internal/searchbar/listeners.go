package searchbar

// Listeners are the callbacks a host can register. Any field may be nil.
type Listeners struct {
	// OnQueryChange fires for every user edit that changes the query while
	// the bar is focused.
	OnQueryChange func(oldQuery, newQuery string)
	// OnSearch fires when the search key is pressed.
	OnSearch       func(query string)
	OnFocus        func()
	OnFocusCleared func()
	// OnMenuOpened and OnMenuClosed only fire in hamburger mode.
	OnMenuOpened       func()
	OnMenuClosed       func()
	OnHomeClicked      func()
	OnMenuItemSelected func(item MenuItem)
	OnClearSearch      func()
}

func (l *Listeners) queryChanged(oldQuery, newQuery string) {
	if l.OnQueryChange != nil {
		l.OnQueryChange(oldQuery, newQuery)
	}
}

func (l *Listeners) search(query string) {
	if l.OnSearch != nil {
		l.OnSearch(query)
	}
}

func (l *Listeners) focus() {
	if l.OnFocus != nil {
		l.OnFocus()
	}
}

func (l *Listeners) focusCleared() {
	if l.OnFocusCleared != nil {
		l.OnFocusCleared()
	}
}

func (l *Listeners) menuOpened() {
	if l.OnMenuOpened != nil {
		l.OnMenuOpened()
	}
}

func (l *Listeners) menuClosed() {
	if l.OnMenuClosed != nil {
		l.OnMenuClosed()
	}
}

func (l *Listeners) homeClicked() {
	if l.OnHomeClicked != nil {
		l.OnHomeClicked()
	}
}

func (l *Listeners) menuItemSelected(item MenuItem) {
	if l.OnMenuItemSelected != nil {
		l.OnMenuItemSelected(item)
	}
}

func (l *Listeners) clearSearch() {
	if l.OnClearSearch != nil {
		l.OnClearSearch()
	}
}
