// Package config loads the floatbar configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/floatbar/internal/anim"
	"github.com/chmouel/floatbar/internal/menu"
	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

// MenuDef is a menu declared in the config file.
type MenuDef struct {
	ID    int
	Name  string
	Items []searchbar.MenuItem
}

// Colors holds optional color overrides applied on top of the theme.
// Zero values mean "use the theme".
type Colors struct {
	QueryText    searchbar.Color
	HintText     searchbar.Color
	ClearButton  searchbar.Color
	LeftAction   searchbar.Color
	OverflowIcon searchbar.Color
	MenuItemIcon searchbar.Color
	Background   searchbar.Color
}

// AppConfig defines the floatbar configuration options.
type AppConfig struct {
	Theme                  string // Theme name: see AvailableThemes in internal/theme
	DebugLog               string
	LogLevel               string
	StateFile              string // Saved-state blob written on exit (default: $XDG_STATE_HOME/floatbar/state.bin)
	AnimationCurve         string // See anim.CurveNames
	LeftActionMode         searchbar.LeftActionMode
	SearchHint             string
	ShowSearchKey          bool
	CloseOnKeyboardDismiss bool
	QueryTextSize          int
	Title                  string // Initial title; empty starts in query mode
	Menu                   int    // Menu id inflated at startup, -1 for none
	Menus                  []MenuDef
	DrawerItems            []string
	Colors                 Colors

	// Path is the file the configuration was read from, empty for defaults.
	Path string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		LogLevel:               "debug",
		StateFile:              defaultStateFile(),
		AnimationCurve:         "ease-in-out",
		LeftActionMode:         searchbar.DefaultLeftActionMode,
		SearchHint:             searchbar.DefaultSearchHint,
		ShowSearchKey:          searchbar.DefaultShowSearchKey,
		CloseOnKeyboardDismiss: searchbar.DefaultCloseOnKeyboardDismiss,
		QueryTextSize:          searchbar.DefaultQueryTextSize,
		Menu:                   1,
		Menus: []MenuDef{
			{
				ID:   1,
				Name: "main",
				Items: []searchbar.MenuItem{
					{ID: 101, Title: "Share", Icon: "⇪", ShowAsAction: searchbar.ShowAlways},
					{ID: 102, Title: "Sort", Icon: "⇅", ShowAsAction: searchbar.ShowIfRoom},
					{ID: 103, Title: "Filter", Icon: "⚲", ShowAsAction: searchbar.ShowIfRoom},
					{ID: 104, Title: "Settings", ShowAsAction: searchbar.ShowNever},
					{ID: 105, Title: "About", ShowAsAction: searchbar.ShowNever},
				},
			},
		},
		DrawerItems: []string{"Home", "Inbox", "Starred", "Archive", "Settings"},
	}
}

func defaultStateFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "floatbar", "state.bin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "floatbar", "state.bin")
}

// Registry returns the configured menus keyed by id.
func (c *AppConfig) Registry() menu.Registry {
	r := make(menu.Registry, len(c.Menus))
	for _, m := range c.Menus {
		r[m.ID] = m.Items
	}
	return r
}

// Style returns the widget style for the configured theme, attributes and
// color overrides.
func (c *AppConfig) Style() searchbar.Style {
	s := searchbar.DefaultStyle()
	s = theme.GetTheme(c.Theme).Apply(s)
	s.QueryTextSize = c.QueryTextSize
	s.SearchHint = c.SearchHint
	s.ShowSearchKey = c.ShowSearchKey
	s.CloseOnKeyboardDismiss = c.CloseOnKeyboardDismiss
	s.MenuID = c.Menu

	override := func(dst *searchbar.Color, v searchbar.Color) {
		if v != 0 {
			*dst = v
		}
	}
	override(&s.QueryTextColor, c.Colors.QueryText)
	override(&s.HintTextColor, c.Colors.HintText)
	override(&s.ClearButtonColor, c.Colors.ClearButton)
	override(&s.LeftActionColor, c.Colors.LeftAction)
	override(&s.OverflowIconColor, c.Colors.OverflowIcon)
	override(&s.MenuItemIconColor, c.Colors.MenuItemIcon)
	override(&s.BackgroundColor, c.Colors.Background)
	return s
}

func normalizeStringList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return []string{}
		}
		return []string{text}
	case []any:
		items := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				items = append(items, text)
			}
		}
		return items
	}
	return []string{}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func trimmedString(data map[string]any, key string) (string, bool) {
	s, ok := data[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func parseShowAsAction(value any) searchbar.ShowAsAction {
	s, _ := value.(string)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return searchbar.ShowAlways
	case "ifroom", "if_room", "if-room":
		return searchbar.ShowIfRoom
	default:
		return searchbar.ShowNever
	}
}

// parseMenus reads the menus list. Entries without an id, or items without
// a title, are skipped.
func parseMenus(value any) []MenuDef {
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	var menus []MenuDef
	for _, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := coerceInt(m["id"], -1)
		if id < 0 {
			continue
		}
		def := MenuDef{ID: id}
		def.Name, _ = trimmedString(m, "name")

		items, _ := m["items"].([]any)
		for i, rawItem := range items {
			im, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			title, ok := trimmedString(im, "title")
			if !ok {
				continue
			}
			item := searchbar.MenuItem{
				ID:           coerceInt(im["id"], id*100+i+1),
				Title:        title,
				ShowAsAction: parseShowAsAction(im["show_as_action"]),
			}
			item.Icon, _ = trimmedString(im, "icon")
			def.Items = append(def.Items, item)
		}
		menus = append(menus, def)
	}
	return menus
}

func parseColors(value any) Colors {
	var colors Colors
	m, ok := value.(map[string]any)
	if !ok {
		return colors
	}

	fields := map[string]*searchbar.Color{
		"query_text":     &colors.QueryText,
		"hint_text":      &colors.HintText,
		"clear_button":   &colors.ClearButton,
		"left_action":    &colors.LeftAction,
		"overflow_icon":  &colors.OverflowIcon,
		"menu_item_icon": &colors.MenuItemIcon,
		"background":     &colors.Background,
	}
	for key, dst := range fields {
		s, ok := trimmedString(m, key)
		if !ok {
			continue
		}
		if c, err := searchbar.ParseHexColor(s); err == nil {
			*dst = c
		}
	}
	return colors
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()

	if debugLog, ok := trimmedString(data, "debug_log"); ok {
		cfg.DebugLog = debugLog
	}
	if level, ok := trimmedString(data, "log_level"); ok {
		cfg.LogLevel = strings.ToLower(level)
	}
	if stateFile, ok := trimmedString(data, "state_file"); ok {
		cfg.StateFile = stateFile
	}

	if themeName, ok := trimmedString(data, "theme"); ok {
		if normalized := theme.Normalize(strings.ToLower(themeName)); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if curve, ok := trimmedString(data, "animation_curve"); ok {
		if _, err := anim.CurveByName(curve); err == nil {
			cfg.AnimationCurve = strings.ToLower(curve)
		}
	}

	if modeName, ok := trimmedString(data, "left_action_mode"); ok {
		if mode, err := searchbar.ParseLeftActionMode(modeName); err == nil {
			cfg.LeftActionMode = mode
		}
	}

	if hint, ok := trimmedString(data, "search_hint"); ok {
		cfg.SearchHint = hint
	}
	if title, ok := trimmedString(data, "title"); ok {
		cfg.Title = title
	}

	cfg.ShowSearchKey = coerceBool(data["show_search_key"], cfg.ShowSearchKey)
	cfg.CloseOnKeyboardDismiss = coerceBool(data["close_on_keyboard_dismiss"], cfg.CloseOnKeyboardDismiss)
	cfg.QueryTextSize = coerceInt(data["query_text_size"], cfg.QueryTextSize)
	if cfg.QueryTextSize <= 0 {
		cfg.QueryTextSize = searchbar.DefaultQueryTextSize
	}

	cfg.Menu = coerceInt(data["menu"], cfg.Menu)
	if cfg.Menu < 0 {
		cfg.Menu = searchbar.NoMenu
	}
	if _, ok := data["menus"]; ok {
		cfg.Menus = parseMenus(data["menus"])
	}
	if _, ok := data["drawer_items"]; ok {
		cfg.DrawerItems = normalizeStringList(data["drawer_items"])
	}

	cfg.Colors = parseColors(data["colors"])

	return cfg
}

// parseCLIConfigOverrides parses --config=fb.key=value format.
// Returns a map suitable for parseConfig().
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)
	keyCount := make(map[string]int)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: fb.key=value (note: use = not space)", override)
		}

		fullKey := parts[0]
		value := parts[1]

		if !strings.HasPrefix(fullKey, "fb.") {
			return nil, fmt.Errorf("config override key must start with 'fb.': %q", fullKey)
		}

		key := strings.TrimPrefix(fullKey, "fb.")
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}

		// Repeated keys become lists, as drawer_items expects.
		keyCount[key]++
		switch keyCount[key] {
		case 1:
			result[key] = value
		case 2:
			result[key] = []any{result[key], value}
		default:
			result[key] = append(result[key].([]any), value)
		}
	}

	return result, nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the directory holding the floatbar config file.
func ConfigDir() string {
	return filepath.Clean(filepath.Join(getConfigDir(), "floatbar"))
}

// ErrInvalidOverride wraps errors from malformed --config overrides.
var ErrInvalidOverride = errors.New("config override")

// LoadConfig reads the application configuration from a YAML file.
func LoadConfig(configPath string) (*AppConfig, error) {
	return Load(configPath, nil)
}

// Load reads the configuration file, applies CLI overrides on top of it and
// resolves the theme. A missing file yields the defaults.
func Load(configPath string, overrides []string) (*AppConfig, error) {
	path, data, err := readConfigFile(configPath)
	if err != nil {
		return DefaultConfig(), err
	}
	if data == nil {
		data = map[string]any{}
	}

	if len(overrides) > 0 {
		extra, err := parseCLIConfigOverrides(overrides)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("%w: %w", ErrInvalidOverride, err)
		}
		for k, v := range extra {
			data[k] = v
		}
	}

	cfg := parseConfig(data)
	cfg.Path = path
	if cfg.Theme == "" {
		cfg.Theme = theme.Detect()
	}
	return cfg, nil
}

// readConfigFile returns the path and decoded content of the first config
// file found, or an empty path when there is none.
func readConfigFile(configPath string) (string, map[string]any, error) {
	configBase := ConfigDir()

	var paths []string
	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return "", nil, err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return "", nil, err
		}
		if !isPathWithin(configBase, absPath) {
			return "", nil, fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(raw, &yamlData); err != nil {
			return path, nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return path, yamlData, nil
	}
	return "", nil, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}
