package app

import (
	"go.uber.org/zap"

	"github.com/chmouel/floatbar/internal/anim"
	"github.com/chmouel/floatbar/internal/config"
	"github.com/chmouel/floatbar/internal/log"
	"github.com/chmouel/floatbar/internal/menu"
	"github.com/chmouel/floatbar/internal/searchbar"
)

// menuCellWidth is the width in columns of one action slot.
const menuCellWidth = 3

// session is one instance of the bar and its host widgets. Recreating the
// bar (rotation) builds a new session and restores the saved state into it.
type session struct {
	ctrl   *searchbar.Controller
	field  *textField
	host   *termHost
	menu   *menu.Model
	drawer *drawer
	driver *anim.Driver
}

func newSession(cfg *config.AppConfig, clock anim.Clock, listeners searchbar.Listeners) (*session, error) {
	curve, err := anim.CurveByName(cfg.AnimationCurve)
	if err != nil {
		return nil, err
	}
	opts := []anim.Option{
		anim.WithCurve(curve),
		anim.WithFinishHandler(func(seq string) {
			log.Debug("sequence finished", zap.String("sequence", seq))
		}),
	}
	if clock != nil {
		opts = append(opts, anim.WithClock(clock))
	}
	driver := anim.NewDriver(opts...)

	field := newTextField()
	host := &termHost{field: field, logf: log.Printf}
	mw := menu.New(cfg.Registry(), menuCellWidth, driver)
	dr := &drawer{anim: driver, items: cfg.DrawerItems}

	ctrl, err := searchbar.New(searchbar.Options{
		Field:     field,
		Menu:      mw,
		Host:      host,
		Animator:  driver,
		Style:     cfg.Style(),
		Mode:      cfg.LeftActionMode,
		Listeners: listeners,
		Logf:      log.Printf,
	})
	if err != nil {
		return nil, err
	}
	ctrl.AttachDrawer(dr)
	if cfg.Title != "" {
		ctrl.SetTitle(cfg.Title)
	}

	return &session{
		ctrl:   ctrl,
		field:  field,
		host:   host,
		menu:   mw,
		drawer: dr,
		driver: driver,
	}, nil
}

// applyConfig pushes a reloaded configuration through the controller
// setters so that every change takes effect at once.
func (s *session) applyConfig(old, cfg *config.AppConfig) error {
	if curve, err := anim.CurveByName(cfg.AnimationCurve); err == nil {
		s.driver.SetCurve(curve)
	}

	style := cfg.Style()
	s.ctrl.SetQueryTextColor(style.QueryTextColor)
	s.ctrl.SetHintTextColor(style.HintTextColor)
	s.ctrl.SetQueryTextSize(style.QueryTextSize)
	s.ctrl.SetClearButtonColor(style.ClearButtonColor)
	s.ctrl.SetLeftActionIconColor(style.LeftActionColor)
	s.ctrl.SetActionMenuOverflowColor(style.OverflowIconColor)
	s.ctrl.SetMenuItemIconColor(style.MenuItemIconColor)
	s.ctrl.SetBackgroundColor(style.BackgroundColor)
	s.ctrl.SetSearchHint(style.SearchHint)
	s.ctrl.SetShowSearchKey(style.ShowSearchKey)
	s.ctrl.SetCloseOnKeyboardDismiss(style.CloseOnKeyboardDismiss)

	s.menu.SetRegistry(cfg.Registry())
	s.ctrl.InflateOverflowMenu(cfg.Menu)
	s.drawer.SetItems(cfg.DrawerItems)

	if cfg.LeftActionMode != old.LeftActionMode {
		return s.setMode(cfg.LeftActionMode)
	}
	return nil
}

// setMode switches the left action, closing the drawer first when the
// hamburger goes away.
func (s *session) setMode(mode searchbar.LeftActionMode) error {
	if s.ctrl.IsMenuOpen() && mode != searchbar.LeftActionHamburger {
		s.ctrl.CloseMenu(false)
	}
	return s.ctrl.SetLeftActionMode(mode)
}

// syncDrawer feeds the drawer slide offset back to the hamburger icon.
func (s *session) syncDrawer() {
	if off, moved := s.drawer.takeOffset(); moved {
		s.ctrl.SetMenuIconProgress(off)
	}
}
