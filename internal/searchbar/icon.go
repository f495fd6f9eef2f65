package searchbar

// Icon identifies the glyph shown in the left action slot.
type Icon int

// Left icons.
const (
	IconNone Icon = iota
	// IconMenuArrow is the morphing hamburger/back-arrow glyph; its shape is
	// given by the morph progress.
	IconMenuArrow
	IconSearch
	IconBackArrow
)

func (i Icon) String() string {
	switch i {
	case IconMenuArrow:
		return "menu-arrow"
	case IconSearch:
		return "search"
	case IconBackArrow:
		return "back-arrow"
	default:
		return "none"
	}
}

// IconState is what the left action slot shows for a given combination of
// mode, focus and menu state.
type IconState struct {
	Icon     Icon
	Progress float64
	Visible  bool
}

// IconFor maps (mode, focused, menuOpen) to the left icon. Hamburger mode is
// tied to menuOpen only; focus never morphs it.
func IconFor(mode LeftActionMode, focused, menuOpen bool) IconState {
	switch mode {
	case LeftActionHamburger:
		return IconState{Icon: IconMenuArrow, Progress: menuProgress(menuOpen), Visible: true}
	case LeftActionSearch:
		if focused {
			return IconState{Icon: IconBackArrow, Visible: true}
		}
		return IconState{Icon: IconSearch, Visible: true}
	case LeftActionHome:
		return IconState{Icon: IconMenuArrow, Progress: ProgressArrow, Visible: true}
	case LeftActionNone:
		if focused {
			return IconState{Icon: IconBackArrow, Visible: true}
		}
		return IconState{Icon: IconBackArrow, Visible: false}
	default:
		return IconState{Icon: IconNone}
	}
}

func menuProgress(open bool) float64 {
	if open {
		return ProgressArrow
	}
	return ProgressHamburger
}

// morphSequence animates the hamburger/arrow glyph between endpoints.
func morphSequence(name string, start, end float64) Sequence {
	return Sequence{
		Name: name,
		Steps: []Step{
			tween(TargetLeftAction, PropProgress, from(start), end, MenuIconAnimDuration, 0),
		},
	}
}

// enterSequence is the left section transition played when focus is gained.
// inputShift is the None-mode offset of the query input in host pixels and
// entranceOffset the start translation of the arrow.
func enterSequence(mode LeftActionMode, entranceOffset int) (Sequence, bool) {
	switch mode {
	case LeftActionSearch:
		return Sequence{
			Name: "search-enter",
			Steps: []Step{
				tween(TargetLeftAction, PropRotation, from(45), 0, SearchIconEntranceDuration, 0),
				tween(TargetLeftAction, PropAlpha, from(0), 1, SearchIconEntranceDuration, 0),
			},
		}, true
	case LeftActionNone:
		return Sequence{
			Name: "none-enter",
			Steps: []Step{
				tween(TargetInputSection, PropTranslationX, nil, 0, NoneEntranceDuration, 0),
				tween(TargetLeftAction, PropScale, from(0.5), 1, NoneEntranceDuration, NoneEntranceDelay),
				tween(TargetLeftAction, PropAlpha, from(0), 1, NoneEntranceDuration, NoneEntranceDelay),
				tween(TargetLeftAction, PropTranslationX, from(float64(entranceOffset)), 0, NoneEntranceDuration, NoneEntranceDelay),
			},
		}, true
	default:
		return Sequence{}, false
	}
}

// exitSequence is the left section transition played when focus is lost.
func exitSequence(mode LeftActionMode, inputShift int) (Sequence, bool) {
	switch mode {
	case LeftActionSearch:
		return Sequence{
			Name: "search-exit",
			Steps: []Step{
				tween(TargetLeftAction, PropAlpha, from(0), 1, IconFadeDuration, 0),
			},
		}, true
	case LeftActionNone:
		return Sequence{
			Name: "none-exit",
			Steps: []Step{
				tween(TargetInputSection, PropTranslationX, nil, float64(-inputShift), NoneExitDuration, 0),
				tween(TargetLeftAction, PropScale, nil, 0.5, NoneExitDuration, 0),
				tween(TargetLeftAction, PropAlpha, nil, 0.5, NoneExitDuration, 0),
				hold(TargetLeftAction, PropVisibility, float64(Invisible), NoneExitDuration),
				hold(TargetLeftAction, PropScale, 1, NoneExitDuration),
				hold(TargetLeftAction, PropAlpha, 1, NoneExitDuration),
			},
		}, true
	default:
		return Sequence{}, false
	}
}
