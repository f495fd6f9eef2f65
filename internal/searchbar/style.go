package searchbar

// Style attribute defaults.
const (
	DefaultQueryTextSize          = 18
	DefaultSearchHint             = "Search..."
	DefaultShowSearchKey          = true
	DefaultCloseOnKeyboardDismiss = false
	NoMenu                        = -1
)

// Style holds the plain value attributes of the bar. Every field has a
// setter on Controller that applies it to the host collaborators at once.
type Style struct {
	QueryTextColor         Color
	HintTextColor          Color
	QueryTextSize          int
	ClearButtonColor       Color
	LeftActionColor        Color
	OverflowIconColor      Color
	MenuItemIconColor      Color
	BackgroundColor        Color
	MenuID                 int
	SearchHint             string
	ShowSearchKey          bool
	CloseOnKeyboardDismiss bool
}

// DefaultStyle returns the attribute defaults used when the host supplies
// no overrides.
func DefaultStyle() Style {
	return Style{
		QueryTextColor:         RGB(0x78, 0x78, 0x78),
		HintTextColor:          RGB(0xBD, 0xBD, 0xBD),
		QueryTextSize:          DefaultQueryTextSize,
		ClearButtonColor:       RGB(0x78, 0x78, 0x78),
		LeftActionColor:        RGB(0x78, 0x78, 0x78),
		OverflowIconColor:      RGB(0x78, 0x78, 0x78),
		MenuItemIconColor:      RGB(0x78, 0x78, 0x78),
		BackgroundColor:        RGB(0xFF, 0xFF, 0xFF),
		MenuID:                 NoMenu,
		SearchHint:             DefaultSearchHint,
		ShowSearchKey:          DefaultShowSearchKey,
		CloseOnKeyboardDismiss: DefaultCloseOnKeyboardDismiss,
	}
}
