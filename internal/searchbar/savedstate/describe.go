package savedstate

import (
	"fmt"
	"strings"
)

var modeNames = map[int]string{1: "hamburger", 2: "search", 3: "home", 4: "none"}

// Describe renders r as aligned "name: value" lines for humans.
func Describe(r Record) string {
	mode := modeNames[r.LeftActionMode]
	if mode == "" {
		mode = "invalid"
	}
	rows := [][2]string{
		{"focused", fmt.Sprint(r.Focused)},
		{"query", fmt.Sprintf("%q", r.Query)},
		{"title", fmt.Sprintf("%q", r.Title)},
		{"title mode", fmt.Sprint(r.TitleMode)},
		{"left action", fmt.Sprintf("%s (%d)", mode, r.LeftActionMode)},
		{"menu", fmt.Sprint(r.MenuID)},
		{"search hint", fmt.Sprintf("%q", r.SearchHint)},
		{"search key", fmt.Sprint(r.ShowSearchKey)},
		{"close on dismiss", fmt.Sprint(r.CloseOnKeyboardDismiss)},
		{"text size", fmt.Sprint(r.QueryTextSize)},
		{"query color", argb(r.QueryTextColor)},
		{"hint color", argb(r.HintTextColor)},
		{"left icon color", argb(r.LeftActionColor)},
		{"clear color", argb(r.ClearButtonColor)},
		{"overflow color", argb(r.OverflowColor)},
		{"menu icon color", argb(r.MenuItemIconColor)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s  %s", width+1, row[0]+":", row[1])
	}
	return b.String()
}

func argb(c uint32) string {
	return fmt.Sprintf("#%08X", c)
}
