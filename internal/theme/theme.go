// Package theme provides the color palettes of the floating search bar host.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/floatbar/internal/searchbar"
)

// Theme defines the colors used to draw the bar and its surroundings.
type Theme struct {
	Background lipgloss.Color // Screen behind the bar
	Surface    lipgloss.Color // Bar card
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Text on Accent
	Border     lipgloss.Color
	TextFg     lipgloss.Color // Query text
	HintFg     lipgloss.Color
	IconFg     lipgloss.Color // Left action and menu icons
	ClearFg    lipgloss.Color
	MutedFg    lipgloss.Color
	SuccessFg  lipgloss.Color
	ErrorFg    lipgloss.Color
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NarnaName           = "narna"
	CleanLightName      = "clean-light"
	SolarizedLightName  = "solarized-light"
	GruvboxDarkName     = "gruvbox-dark"
	NordName            = "nord"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Surface:    lipgloss.Color("#44475A"),
		Accent:     lipgloss.Color("#BD93F9"),
		AccentFg:   lipgloss.Color("#282A36"),
		Border:     lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		HintFg:     lipgloss.Color("#6272A4"),
		IconFg:     lipgloss.Color("#8BE9FD"),
		ClearFg:    lipgloss.Color("#FF79C6"),
		MutedFg:    lipgloss.Color("#6272A4"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		ErrorFg:    lipgloss.Color("#FF5555"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#F3E8FF"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#7C3AED"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#D0D7DE"),
		TextFg:     lipgloss.Color("#24292F"),
		HintFg:     lipgloss.Color("#6E7781"),
		IconFg:     lipgloss.Color("#0891B2"),
		ClearFg:    lipgloss.Color("#DB2777"),
		MutedFg:    lipgloss.Color("#6E7781"),
		SuccessFg:  lipgloss.Color("#059669"),
		ErrorFg:    lipgloss.Color("#DC2626"),
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: lipgloss.Color("#0D1117"),
		Surface:    lipgloss.Color("#1A2230"),
		Accent:     lipgloss.Color("#41ADFF"),
		AccentFg:   lipgloss.Color("#0D1117"),
		Border:     lipgloss.Color("#30363D"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		HintFg:     lipgloss.Color("#8B949E"),
		IconFg:     lipgloss.Color("#7CE0F3"),
		ClearFg:    lipgloss.Color("#D2A8FF"),
		MutedFg:    lipgloss.Color("#8B949E"),
		SuccessFg:  lipgloss.Color("#3FB950"),
		ErrorFg:    lipgloss.Color("#F47067"),
	}
}

// CleanLight returns a theme for light terminal backgrounds close to the
// stock widget look: white card, gray icons.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#E1E4E8"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#0598BC"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#D0D7DE"),
		TextFg:     lipgloss.Color("#787878"),
		HintFg:     lipgloss.Color("#BDBDBD"),
		IconFg:     lipgloss.Color("#787878"),
		ClearFg:    lipgloss.Color("#787878"),
		MutedFg:    lipgloss.Color("#6E7781"),
		SuccessFg:  lipgloss.Color("#1A7F37"),
		ErrorFg:    lipgloss.Color("#CF222E"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#EEE8D5"),
		Surface:    lipgloss.Color("#FDF6E3"),
		Accent:     lipgloss.Color("#268BD2"),
		AccentFg:   lipgloss.Color("#FDF6E3"),
		Border:     lipgloss.Color("#93A1A1"),
		TextFg:     lipgloss.Color("#073642"),
		HintFg:     lipgloss.Color("#93A1A1"),
		IconFg:     lipgloss.Color("#2AA198"),
		ClearFg:    lipgloss.Color("#D33682"),
		MutedFg:    lipgloss.Color("#93A1A1"),
		SuccessFg:  lipgloss.Color("#859900"),
		ErrorFg:    lipgloss.Color("#DC322F"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3C3836"),
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
		Border:     lipgloss.Color("#504945"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		HintFg:     lipgloss.Color("#928374"),
		IconFg:     lipgloss.Color("#83A598"),
		ClearFg:    lipgloss.Color("#D3869B"),
		MutedFg:    lipgloss.Color("#928374"),
		SuccessFg:  lipgloss.Color("#B8BB26"),
		ErrorFg:    lipgloss.Color("#FB4934"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Surface:    lipgloss.Color("#3B4252"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		Border:     lipgloss.Color("#4C566A"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		HintFg:     lipgloss.Color("#81A1C1"),
		IconFg:     lipgloss.Color("#88C0D0"),
		ClearFg:    lipgloss.Color("#B48EAD"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		ErrorFg:    lipgloss.Color("#BF616A"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Surface:    lipgloss.Color("#313244"),
		Accent:     lipgloss.Color("#B4BEFE"),
		AccentFg:   lipgloss.Color("#1E1E2E"),
		Border:     lipgloss.Color("#45475A"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		HintFg:     lipgloss.Color("#6C7086"),
		IconFg:     lipgloss.Color("#89DCEB"),
		ClearFg:    lipgloss.Color("#F5C2E7"),
		MutedFg:    lipgloss.Color("#6C7086"),
		SuccessFg:  lipgloss.Color("#A6E3A1"),
		ErrorFg:    lipgloss.Color("#F38BA8"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NarnaName:
		return Narna()
	case CleanLightName:
		return CleanLight()
	case SolarizedLightName:
		return SolarizedLight()
	case GruvboxDarkName:
		return GruvboxDark()
	case NordName:
		return Nord()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, CleanLightName, SolarizedLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return CleanLightName
}

// Detect picks the default theme matching the terminal background.
func Detect() string {
	if lipgloss.HasDarkBackground() {
		return DefaultDark()
	}
	return DefaultLight()
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NarnaName,
		CleanLightName,
		SolarizedLightName,
		GruvboxDarkName,
		NordName,
		CatppuccinMochaName,
	}
}

// Normalize returns the canonical theme name if it is supported.
func Normalize(name string) string {
	for _, n := range AvailableThemes() {
		if n == name {
			return n
		}
	}
	return ""
}

// Apply copies the theme colors into the color attributes of s. Size,
// hint text and menu settings are left alone.
func (t *Theme) Apply(s searchbar.Style) searchbar.Style {
	s.QueryTextColor = toColor(t.TextFg, s.QueryTextColor)
	s.HintTextColor = toColor(t.HintFg, s.HintTextColor)
	s.ClearButtonColor = toColor(t.ClearFg, s.ClearButtonColor)
	s.LeftActionColor = toColor(t.IconFg, s.LeftActionColor)
	s.OverflowIconColor = toColor(t.IconFg, s.OverflowIconColor)
	s.MenuItemIconColor = toColor(t.Accent, s.MenuItemIconColor)
	s.BackgroundColor = toColor(t.Surface, s.BackgroundColor)
	return s
}

func toColor(c lipgloss.Color, fallback searchbar.Color) searchbar.Color {
	v, err := searchbar.ParseHexColor(string(c))
	if err != nil {
		return fallback
	}
	return v
}

// Lip converts a widget color for rendering.
func Lip(c searchbar.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
