package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir := filepath.Join(base, "floatbar")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, searchbar.LeftActionNone, cfg.LeftActionMode)
	assert.Equal(t, "Search...", cfg.SearchHint)
	assert.True(t, cfg.ShowSearchKey)
	assert.False(t, cfg.CloseOnKeyboardDismiss)
	assert.Equal(t, 18, cfg.QueryTextSize)
	assert.Equal(t, "ease-in-out", cfg.AnimationCurve)
	assert.Equal(t, 1, cfg.Menu)
	assert.Empty(t, cfg.DebugLog)
	assert.Empty(t, cfg.Title)
	assert.NotEmpty(t, cfg.DrawerItems)
	require.Len(t, cfg.Menus, 1)
	assert.Len(t, cfg.Registry()[1], 5)
}

func TestDefaultStateFileUsesXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, filepath.Join("/tmp/state", "floatbar", "state.bin"), DefaultConfig().StateFile)
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		def      bool
		expected bool
	}{
		{name: "nil uses default", input: nil, def: true, expected: true},
		{name: "bool", input: false, def: true, expected: false},
		{name: "int", input: 1, def: false, expected: true},
		{name: "yes", input: " Yes ", def: false, expected: true},
		{name: "off", input: "off", def: true, expected: false},
		{name: "garbage", input: "maybe", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceBool(tt.input, tt.def))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		def      int
		expected int
	}{
		{name: "nil uses default", input: nil, def: 7, expected: 7},
		{name: "int", input: 3, def: 7, expected: 3},
		{name: "string", input: " 12 ", def: 7, expected: 12},
		{name: "empty string", input: "", def: 7, expected: 7},
		{name: "bool ignored", input: true, def: 7, expected: 7},
		{name: "invalid string", input: "x", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceInt(tt.input, tt.def))
		})
	}
}

func TestNormalizeStringList(t *testing.T) {
	assert.Equal(t, []string{}, normalizeStringList(nil))
	assert.Equal(t, []string{"Home"}, normalizeStringList(" Home "))
	assert.Equal(t, []string{"a", "2"}, normalizeStringList([]any{"a", nil, "", 2}))
}

func TestParseConfig(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"theme":                     "Nord",
		"left_action_mode":          "hamburger",
		"search_hint":               " Find ",
		"show_search_key":           "no",
		"close_on_keyboard_dismiss": true,
		"query_text_size":           "22",
		"title":                     "Inbox",
		"animation_curve":           "spring",
		"menu":                      2,
		"drawer_items":              []any{"One", "Two"},
		"log_level":                 "WARN",
		"colors": map[string]any{
			"query_text": "#112233",
			"background": "bogus",
		},
		"menus": []any{
			map[string]any{
				"id":   2,
				"name": "alt",
				"items": []any{
					map[string]any{"id": 7, "title": "Share", "show_as_action": "always", "icon": "S"},
					map[string]any{"title": "Sort", "show_as_action": "ifRoom"},
					map[string]any{"title": "", "show_as_action": "never"},
					map[string]any{"title": "Help"},
				},
			},
			map[string]any{"name": "no id"},
			"junk",
		},
	})

	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, searchbar.LeftActionHamburger, cfg.LeftActionMode)
	assert.Equal(t, "Find", cfg.SearchHint)
	assert.False(t, cfg.ShowSearchKey)
	assert.True(t, cfg.CloseOnKeyboardDismiss)
	assert.Equal(t, 22, cfg.QueryTextSize)
	assert.Equal(t, "Inbox", cfg.Title)
	assert.Equal(t, "spring", cfg.AnimationCurve)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Menu)
	assert.Equal(t, []string{"One", "Two"}, cfg.DrawerItems)
	assert.Equal(t, searchbar.RGB(0x11, 0x22, 0x33), cfg.Colors.QueryText)
	assert.Zero(t, cfg.Colors.Background)

	require.Len(t, cfg.Menus, 1)
	items := cfg.Menus[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, searchbar.MenuItem{ID: 7, Title: "Share", Icon: "S", ShowAsAction: searchbar.ShowAlways}, items[0])
	assert.Equal(t, 202, items[1].ID)
	assert.Equal(t, searchbar.ShowIfRoom, items[1].ShowAsAction)
	assert.Equal(t, searchbar.ShowNever, items[2].ShowAsAction)
}

func TestParseConfigIgnoresInvalidValues(t *testing.T) {
	cfg := parseConfig(map[string]any{
		"theme":            "unknown",
		"left_action_mode": "sideways",
		"animation_curve":  "bounce",
		"query_text_size":  -4,
		"menu":             -9,
	})

	def := DefaultConfig()
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, def.LeftActionMode, cfg.LeftActionMode)
	assert.Equal(t, def.AnimationCurve, cfg.AnimationCurve)
	assert.Equal(t, searchbar.DefaultQueryTextSize, cfg.QueryTextSize)
	assert.Equal(t, searchbar.NoMenu, cfg.Menu)
}

func TestStyleAppliesThemeAndOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = theme.NordName
	cfg.SearchHint = "Find"
	cfg.Colors.ClearButton = searchbar.RGB(1, 2, 3)

	s := cfg.Style()
	nord := theme.Nord().Apply(searchbar.DefaultStyle())
	assert.Equal(t, nord.QueryTextColor, s.QueryTextColor)
	assert.Equal(t, searchbar.RGB(1, 2, 3), s.ClearButtonColor)
	assert.Equal(t, "Find", s.SearchHint)
	assert.Equal(t, 1, s.MenuID)
}

func TestParseCLIConfigOverrides(t *testing.T) {
	got, err := parseCLIConfigOverrides([]string{
		"fb.theme=nord",
		"fb.drawer_items=a",
		"fb.drawer_items=b",
		"fb.drawer_items=c",
		"fb.search_hint=a=b",
	})
	require.NoError(t, err)
	assert.Equal(t, "nord", got["theme"])
	assert.Equal(t, []any{"a", "b", "c"}, got["drawer_items"])
	assert.Equal(t, "a=b", got["search_hint"])

	for _, bad := range []string{"fb.theme", "theme=nord", "fb.=x"} {
		_, err := parseCLIConfigOverrides([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox-dark
left_action_mode: search
menu: 1
search_hint: Look up
`)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, theme.GruvboxDarkName, cfg.Theme)
	assert.Equal(t, searchbar.LeftActionSearch, cfg.LeftActionMode)
	assert.Equal(t, "Look up", cfg.SearchHint)
}

func TestLoadAppliesOverrides(t *testing.T) {
	writeConfig(t, "theme: nord\nsearch_hint: From file\n")

	cfg, err := Load("", []string{"fb.search_hint=From flag", "fb.left_action_mode=home"})
	require.NoError(t, err)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.Equal(t, "From flag", cfg.SearchHint)
	assert.Equal(t, searchbar.LeftActionHome, cfg.LeftActionMode)

	_, err = Load("", []string{"search_hint=x"})
	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.NotEmpty(t, cfg.Theme)
	assert.Equal(t, DefaultConfig().SearchHint, cfg.SearchHint)
}

func TestLoadConfigRejectsPathOutsideConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	other := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(other, []byte("theme: nord\n"), 0o600))

	_, err := LoadConfig(other)
	assert.ErrorContains(t, err, "must reside inside")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	writeConfig(t, "theme: [unterminated\n")

	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig().SearchHint, cfg.SearchHint)
}

func TestIsPathWithin(t *testing.T) {
	assert.True(t, isPathWithin("/a/b", "/a/b"))
	assert.True(t, isPathWithin("/a/b", "/a/b/c.yaml"))
	assert.False(t, isPathWithin("/a/b", "/a/bc"))
	assert.False(t, isPathWithin("/a/b", "/a"))
}
