// Package app hosts the floating search bar in a Bubble Tea program: a text
// input stands in for the editable field, the terminal for the host window
// and a side panel for the navigation drawer.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/chmouel/floatbar/internal/anim"
	"github.com/chmouel/floatbar/internal/app/screen"
	"github.com/chmouel/floatbar/internal/app/services"
	"github.com/chmouel/floatbar/internal/config"
	"github.com/chmouel/floatbar/internal/log"
	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/searchbar/savedstate"
	"github.com/chmouel/floatbar/internal/theme"
)

// barMargin is the number of columns around the bar card, border included.
const barMargin = 4

// Model is the Bubble Tea model of the demo host.
type Model struct {
	cfg     *config.AppConfig
	thm     *theme.Theme
	clock   anim.Clock
	s       *session
	screens *screen.Manager
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	events  *eventLog
	watcher *services.ConfigWatchService
	reload  func(path string) (*config.AppConfig, error)
	restore []byte

	width     int
	height    int
	ticking   bool
	rotations int
	status    string
	quitting  bool
	err       error
}

// Option customises a Model.
type Option func(*Model)

// WithClock drives animations from c instead of the wall clock.
func WithClock(c anim.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithInitialState restores a blob written by a previous run.
func WithInitialState(blob []byte) Option {
	return func(m *Model) { m.restore = blob }
}

// WithReloader replaces the function used to reread the config file when it
// changes on disk.
func WithReloader(fn func(path string) (*config.AppConfig, error)) Option {
	return func(m *Model) { m.reload = fn }
}

// NewModel builds the bar from cfg.
func NewModel(cfg *config.AppConfig, opts ...Option) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		cfg:     cfg,
		thm:     theme.GetTheme(cfg.Theme),
		screens: screen.NewManager(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		events:  &eventLog{},
		reload:  config.LoadConfig,
	}
	for _, o := range opts {
		o(m)
	}

	s, err := newSession(cfg, m.clock, m.listeners())
	if err != nil {
		return nil, err
	}
	m.s = s

	if len(m.restore) > 0 {
		if err := m.s.ctrl.UnmarshalState(m.restore); err != nil {
			log.Warn("saved state ignored", zap.Error(err))
			m.status = fmt.Sprintf("Saved state ignored: %v", err)
		} else {
			m.deliverRestoredFocus()
			m.events.add("restored (%d bytes)", len(m.restore))
		}
	}
	if cfg.Path != "" {
		m.watcher = services.NewConfigWatchService(cfg.Path, log.Printf)
	}
	return m, nil
}

// Init starts the config watcher and any animation queued during setup.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.s.field.takeCmd()}
	if m.watcher != nil {
		started, err := m.watcher.Start()
		switch {
		case err != nil:
			log.Warn("config watcher disabled", zap.Error(err))
		case started:
			cmds = append(cmds, waitForConfigChange(m.watcher))
		}
	}
	cmds = append(cmds, m.ensureTicking())
	return tea.Batch(cmds...)
}

// Update handles one Bubble Tea message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.s.ctrl.SetWidth(m.barWidth())

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case frameMsg:
		m.ticking = false
		m.s.driver.Tick()

	case spinner.TickMsg:
		if m.s.ctrl.State().ProgressShown {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case configChangedMsg:
		m.watcher.ResetWaiting()
		if m.watcher.ShouldReload(time.Now()) {
			m.reloadConfig()
		}
		cmds = append(cmds, waitForConfigChange(m.watcher))

	default:
		cmd, changed := m.s.field.update(msg)
		if changed {
			m.s.ctrl.HandleTextChanged(m.s.field.Text())
		}
		cmds = append(cmds, cmd)
	}

	if m.quitting {
		return m, tea.Batch(append(cmds, tea.Quit)...)
	}
	m.s.syncDrawer()
	cmds = append(cmds, m.s.field.takeCmd(), m.ensureTicking())
	return m, tea.Batch(cmds...)
}

func (m *Model) barWidth() int {
	return max(0, m.width-barMargin)
}

// ensureTicking schedules the next frame while animations run.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.s.driver.Active() {
		return nil
	}
	m.ticking = true
	return frameTick()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.screens.IsActive() {
		return m.screens.Dispatch(msg)
	}
	if m.s.field.keyboardShown() {
		return m.handleTypingKey(msg)
	}
	if m.drawerActive() {
		if cmd, ok := m.handleDrawerKey(msg); ok {
			return cmd
		}
	}
	if cmd, ok := m.handleBarKey(msg); ok {
		return cmd
	}

	ctrl := m.s.ctrl
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.tapField()
	case key.Matches(msg, m.keys.Back):
		if ctrl.IsFocused() {
			ctrl.ClearFocus()
		}
	case key.Matches(msg, m.keys.Help):
		m.screens.Push(screen.NewHelpScreen(m.keys.sections(), m.width-4, m.height-4, m.thm))
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.DrawerOut):
		m.dragDrawer(drawerDragStep)
	case key.Matches(msg, m.keys.DrawerIn):
		m.dragDrawer(-drawerDragStep)
	}
	return nil
}

// handleTypingKey routes keys while the keyboard is up: most go to the
// input.
func (m *Model) handleTypingKey(msg tea.KeyMsg) tea.Cmd {
	ctrl := m.s.ctrl
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.s.field.searchAction {
			ctrl.HandleSearchKey()
		}
		return nil
	case key.Matches(msg, m.keys.Back):
		m.s.field.hideKeyboard()
		ctrl.HandleKeyboardDismissed()
		return nil
	}
	if cmd, ok := m.handleBarKey(msg); ok {
		return cmd
	}
	cmd, changed := m.s.field.update(msg)
	if changed {
		ctrl.HandleTextChanged(m.s.field.Text())
	}
	return cmd
}

// handleBarKey handles the bindings that work whether or not the user is
// typing.
func (m *Model) handleBarKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	ctrl := m.s.ctrl
	switch {
	case key.Matches(msg, m.keys.Clear):
		if ctrl.Visual().ClearButton == searchbar.Visible {
			ctrl.HandleClearClicked()
		}
	case key.Matches(msg, m.keys.LeftAction):
		if ctrl.Visual().LeftAction == searchbar.Visible {
			ctrl.HandleLeftActionClicked()
		}
	case key.Matches(msg, m.keys.Overflow):
		m.openOverflow()
	case key.Matches(msg, m.keys.Action):
		n, _ := actionIndex(msg.String())
		if item, ok := m.s.menu.Action(n); ok {
			ctrl.HandleMenuItemSelected(item)
		}
	case key.Matches(msg, m.keys.Progress):
		if ctrl.State().ProgressShown {
			ctrl.HideProgress()
			return nil, true
		}
		ctrl.ShowProgress()
		return m.spinner.Tick, true
	case key.Matches(msg, m.keys.Title):
		m.toggleTitle()
	case key.Matches(msg, m.keys.Mode):
		m.cycleMode()
	case key.Matches(msg, m.keys.Rotate):
		if err := m.rotate(); err != nil {
			m.status = fmt.Sprintf("Recreate failed: %v", err)
			log.Error("recreate failed", zap.Error(err))
		}
	case key.Matches(msg, m.keys.Inspect):
		m.inspectState()
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) drawerActive() bool {
	return m.s.ctrl.LeftActionMode() == searchbar.LeftActionHamburger && m.s.ctrl.IsMenuOpen()
}

func (m *Model) handleDrawerKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.s.drawer.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.s.drawer.MoveCursor(1)
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.s.drawer.Selected(); ok {
			m.status = fmt.Sprintf("Opened %s", item)
			m.events.add("drawer %q", item)
		}
		m.s.ctrl.CloseMenu(true)
	case key.Matches(msg, m.keys.Back):
		m.s.ctrl.CloseMenu(true)
	default:
		return nil, false
	}
	return nil, true
}

// tapField mimics a tap on the input: the first one focuses it, later ones
// bring the keyboard back.
func (m *Model) tapField() {
	f := m.s.field
	if f.HasFocus() {
		m.s.ctrl.HandleFieldTapped()
		return
	}
	f.RequestFocus()
	if f.HasFocus() {
		m.s.ctrl.HandleFieldFocusChanged(true)
	}
}

// deliverRestoredFocus reports the focus regained by a restored field, as a
// toolkit would once the view is attached again.
func (m *Model) deliverRestoredFocus() {
	if m.s.field.HasFocus() {
		m.s.ctrl.HandleFieldFocusChanged(true)
	}
}

func (m *Model) dragDrawer(delta float64) {
	if m.s.ctrl.LeftActionMode() != searchbar.LeftActionHamburger || m.s.ctrl.IsFocused() {
		return
	}
	m.s.drawer.Drag(delta)
}

func (m *Model) openOverflow() {
	scr := screen.NewOverflowScreen(m.s.menu, m.thm)
	if scr == nil {
		m.status = "Nothing in the overflow menu"
		return
	}
	scr.OnSelect = func(item searchbar.MenuItem) tea.Cmd {
		m.s.menu.CloseOverflow()
		m.s.ctrl.HandleMenuItemSelected(item)
		return nil
	}
	m.screens.Push(scr)
}

func (m *Model) toggleTitle() {
	ctrl := m.s.ctrl
	if ctrl.TitleMode() {
		ctrl.SetSearchText(ctrl.Title())
		return
	}
	title := ctrl.Query()
	if title == "" {
		title = m.cfg.Title
	}
	if title == "" {
		title = "Results"
	}
	ctrl.SetTitle(title)
}

func (m *Model) cycleMode() {
	next := m.s.ctrl.LeftActionMode()%4 + 1
	if err := m.s.setMode(next); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Left action: %s", next)
	m.events.add("mode %s", next)
}

// rotate destroys the bar and builds a new one from its saved state, the
// way a configuration change recreates a window.
func (m *Model) rotate() error {
	blob, err := m.s.ctrl.MarshalState()
	if err != nil {
		return err
	}
	next, err := newSession(m.cfg, m.clock, m.listeners())
	if err != nil {
		return err
	}
	if err := next.ctrl.UnmarshalState(blob); err != nil {
		return err
	}
	m.s = next
	m.deliverRestoredFocus()
	if m.width > 0 {
		m.s.ctrl.SetWidth(m.barWidth())
	}
	m.screens.Clear()
	m.ticking = false
	m.rotations++
	m.status = fmt.Sprintf("Recreated from %d bytes of state", len(blob))
	m.events.add("recreated (%d bytes)", len(blob))
	log.Info("bar recreated", zap.Int("bytes", len(blob)), zap.Int("rotations", m.rotations))
	return nil
}

func (m *Model) inspectState() {
	info := screen.NewInfoScreen("Saved state", savedstate.Describe(m.s.ctrl.SaveState()), m.thm)
	m.screens.Push(info)
}

func (m *Model) reloadConfig() {
	cfg, err := m.reload(m.cfg.Path)
	if err != nil {
		m.status = fmt.Sprintf("Config error: %v", err)
		log.Warn("config reload failed", zap.Error(err))
		return
	}
	if cfg.Path == "" {
		cfg.Path = m.cfg.Path
	}
	if err := m.s.applyConfig(m.cfg, cfg); err != nil {
		m.status = fmt.Sprintf("Config error: %v", err)
		log.Warn("config apply failed", zap.Error(err))
		return
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn("log level ignored", zap.Error(err))
	}
	m.cfg = cfg
	m.thm = theme.GetTheme(cfg.Theme)
	m.status = "Config reloaded"
	m.events.add("config reloaded")
	log.Info("config reloaded", zap.String("path", cfg.Path))
}

// saveState writes the bar state so the next run can restore it.
func (m *Model) saveState() error {
	if m.cfg.StateFile == "" {
		return nil
	}
	blob, err := m.s.ctrl.MarshalState()
	if err != nil {
		return err
	}
	return services.SaveState(m.cfg.StateFile, blob)
}

func (m *Model) quit() tea.Cmd {
	if err := m.saveState(); err != nil {
		m.err = err
		log.Error("saving state failed", zap.Error(err))
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.quitting = true
	return nil
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Controller exposes the bar, mainly for tests and callers embedding the
// model.
func (m *Model) Controller() *searchbar.Controller { return m.s.ctrl }
