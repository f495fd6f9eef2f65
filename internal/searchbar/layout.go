package searchbar

// Layout dimensions in device-independent pixels.
const (
	ClearButtonWidthDp         = 48
	ClearButtonInsetDp         = 4
	UnfocusedInputInsetDp      = 14
	LeftActionWidthAndMarginDp = 52
	LeftActionEntranceOffsetDp = 8
)

// DpConverter converts device-independent pixels to host pixels.
type DpConverter func(dp int) int

// Offsets are the horizontal adjustments keeping the clear button and the
// query input clear of the visible menu items.
type Offsets struct {
	// ClearButtonTranslationX is zero or negative: the clear button moves
	// left as the menu grows.
	ClearButtonTranslationX int
	// InputPaddingRight is the space reserved at the end of the input.
	InputPaddingRight int
}

// ComputeOffsets returns the layout offsets for the given visible menu width
// (host pixels) and focus state. Negative widths are treated as zero. The
// translation never shrinks below the fixed inset, so it is monotonic in
// menuItemsWidth.
func ComputeOffsets(menuItemsWidth int, focused bool, dp DpConverter) Offsets {
	if dp == nil {
		dp = identityDp
	}
	if menuItemsWidth < 0 {
		menuItemsWidth = 0
	}
	inset := dp(ClearButtonInsetDp)

	if menuItemsWidth == 0 {
		padding := inset
		if focused {
			padding += dp(ClearButtonWidthDp)
		} else {
			padding += dp(UnfocusedInputInsetDp)
		}
		return Offsets{ClearButtonTranslationX: -inset, InputPaddingRight: padding}
	}

	padding := menuItemsWidth
	if focused {
		padding += dp(ClearButtonWidthDp)
	}
	return Offsets{
		ClearButtonTranslationX: -max(menuItemsWidth, inset),
		InputPaddingRight:       padding,
	}
}

func identityDp(dp int) int { return dp }
