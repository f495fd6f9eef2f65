package searchbar

import "fmt"

// trace is shared by the fakes so tests can assert call order across
// collaborators.
type trace struct {
	calls []string
}

func (t *trace) add(format string, args ...any) {
	t.calls = append(t.calls, fmt.Sprintf(format, args...))
}

func (t *trace) reset() { t.calls = nil }

type fakeField struct {
	tr            *trace
	text          string
	selection     int
	hint          string
	textColor     Color
	hintColor     Color
	textSize      int
	searchAction  bool
	longClickable bool
	focusable     bool
	paddingRight  int
	focused       bool
}

func (f *fakeField) Text() string           { return f.text }
func (f *fakeField) SetText(text string)    { f.text = text; f.tr.add("field.text %q", text) }
func (f *fakeField) SetSelection(pos int)   { f.selection = pos }
func (f *fakeField) SetHint(hint string)    { f.hint = hint }
func (f *fakeField) SetTextColor(c Color)   { f.textColor = c }
func (f *fakeField) SetHintColor(c Color)   { f.hintColor = c }
func (f *fakeField) SetTextSize(size int)   { f.textSize = size }
func (f *fakeField) SetSearchAction(b bool) { f.searchAction = b }
func (f *fakeField) SetLongClickable(b bool) {
	f.longClickable = b
}
func (f *fakeField) SetFocusable(b bool) { f.focusable = b }
func (f *fakeField) SetPaddingRight(px int) {
	f.paddingRight = px
	f.tr.add("field.padding %d", px)
}
func (f *fakeField) RequestFocus() { f.focused = true; f.tr.add("field.focus") }
func (f *fakeField) ClearFocus()   { f.focused = false; f.tr.add("field.blur") }

// fakeMenu gives every action item a width of 10 and reports width changes
// to the registered listener like a real menu view would after layout.
type fakeMenu struct {
	tr            *trace
	items         map[int][]MenuItem
	current       []MenuItem
	resets        [][2]int
	ifRoomHidden  bool
	iconColor     Color
	overflowColor Color
	onWidth       func(int)
}

func (m *fakeMenu) Reset(menuID, availableWidth int) {
	m.resets = append(m.resets, [2]int{menuID, availableWidth})
	m.current = m.items[menuID]
	m.ifRoomHidden = false
	m.tr.add("menu.reset %d %d", menuID, availableWidth)
	m.notify()
}

func (m *fakeMenu) HideIfRoomItems(animated bool) {
	m.ifRoomHidden = true
	m.tr.add("menu.hide animated=%t", animated)
	m.notify()
}

func (m *fakeMenu) ShowIfRoomItems(animated bool) {
	m.ifRoomHidden = false
	m.tr.add("menu.show animated=%t", animated)
	m.notify()
}

func (m *fakeMenu) SetActionIconColor(c Color) { m.iconColor = c }
func (m *fakeMenu) SetOverflowColor(c Color)   { m.overflowColor = c }
func (m *fakeMenu) CurrentItems() []MenuItem   { return m.current }
func (m *fakeMenu) SetOnVisibleWidthChanged(fn func(int)) {
	m.onWidth = fn
}

func (m *fakeMenu) visibleWidth() int {
	w := 0
	for _, it := range m.current {
		switch it.ShowAsAction {
		case ShowAlways:
			w += 10
		case ShowIfRoom:
			if !m.ifRoomHidden {
				w += 10
			}
		case ShowNever:
		}
	}
	return w
}

func (m *fakeMenu) notify() {
	if m.onWidth != nil {
		m.onWidth(m.visibleWidth())
	}
}

type fakeHost struct {
	tr            *trace
	keyboardShown bool
	configured    int
}

func (h *fakeHost) ShowKeyboard()          { h.keyboardShown = true; h.tr.add("keyboard.show") }
func (h *fakeHost) HideKeyboard()          { h.keyboardShown = false; h.tr.add("keyboard.hide") }
func (h *fakeHost) DpToPx(dp int) int      { return dp * 2 }
func (h *fakeHost) ConfigureKeyboardMode() { h.configured++ }

// recordingAnimator keeps the last value per key and the sequences started.
type recordingAnimator struct {
	values    map[string]float64
	sequences []Sequence
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{values: map[string]float64{}}
}

func (a *recordingAnimator) Start(seq Sequence) {
	a.sequences = append(a.sequences, seq)
	for _, st := range seq.Steps {
		a.values[key(st.Target, st.Property)] = st.To
	}
}

func (a *recordingAnimator) Set(target Target, prop Property, value float64) {
	a.values[key(target, prop)] = value
}

func (a *recordingAnimator) names() []string {
	out := make([]string, 0, len(a.sequences))
	for _, s := range a.sequences {
		out = append(out, s.Name)
	}
	return out
}

func key(t Target, p Property) string { return string(t) + "/" + string(p) }

type fakeDrawer struct {
	opened, closed int
}

func (d *fakeDrawer) Open()  { d.opened++ }
func (d *fakeDrawer) Close() { d.closed++ }

// events records listener callbacks in order.
type events struct {
	log []string
}

func (e *events) listeners() Listeners {
	return Listeners{
		OnQueryChange:      func(o, n string) { e.log = append(e.log, fmt.Sprintf("query %q->%q", o, n)) },
		OnSearch:           func(q string) { e.log = append(e.log, fmt.Sprintf("search %q", q)) },
		OnFocus:            func() { e.log = append(e.log, "focus") },
		OnFocusCleared:     func() { e.log = append(e.log, "focus-cleared") },
		OnMenuOpened:       func() { e.log = append(e.log, "menu-opened") },
		OnMenuClosed:       func() { e.log = append(e.log, "menu-closed") },
		OnHomeClicked:      func() { e.log = append(e.log, "home") },
		OnMenuItemSelected: func(it MenuItem) { e.log = append(e.log, fmt.Sprintf("item %d", it.ID)) },
		OnClearSearch:      func() { e.log = append(e.log, "clear") },
	}
}

func (e *events) count(name string) int {
	n := 0
	for _, l := range e.log {
		if l == name {
			n++
		}
	}
	return n
}

type harness struct {
	c      *Controller
	tr     *trace
	field  *fakeField
	menu   *fakeMenu
	host   *fakeHost
	anim   *recordingAnimator
	events *events
}

const testMenu = 7

func newHarness(mode LeftActionMode) *harness {
	tr := &trace{}
	h := &harness{
		tr:    tr,
		field: &fakeField{tr: tr, focusable: true},
		menu: &fakeMenu{tr: tr, items: map[int][]MenuItem{
			testMenu: {
				{ID: 1, Title: "Share", ShowAsAction: ShowAlways},
				{ID: 2, Title: "Sort", ShowAsAction: ShowIfRoom},
				{ID: 3, Title: "Settings", ShowAsAction: ShowNever},
			},
		}},
		host:   &fakeHost{tr: tr},
		anim:   newRecordingAnimator(),
		events: &events{},
	}
	style := DefaultStyle()
	style.MenuID = testMenu
	c, err := New(Options{
		Field:     h.field,
		Menu:      h.menu,
		Host:      h.host,
		Animator:  h.anim,
		Style:     style,
		Mode:      mode,
		Listeners: h.events.listeners(),
	})
	if err != nil {
		panic(err)
	}
	h.c = c
	c.SetWidth(200)
	tr.reset()
	h.anim.sequences = nil
	return h
}

// typeText simulates a user edit.
func (h *harness) typeText(text string) {
	h.field.text = text
	h.c.HandleTextChanged(text)
}
