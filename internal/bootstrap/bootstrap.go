package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/floatbar/internal/app"
	"github.com/chmouel/floatbar/internal/app/services"
	"github.com/chmouel/floatbar/internal/buildinfo"
	"github.com/chmouel/floatbar/internal/config"
	"github.com/chmouel/floatbar/internal/log"
	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

// ErrNotATerminal is returned when the bar is started without a TTY.
var ErrNotATerminal = errors.New("floatbar needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NewCommand returns the root command.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "floatbar",
		Usage:                 "A floating search bar in the terminal",
		Version:               buildinfo.Summary(),
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*urfavecli.Command{
			stateCommand(),
			themesCommand(),
		},
		Action: runTUI,
	}
}

// Run parses args and executes the matching command.
func Run(ctx context.Context, args []string) error {
	return NewCommand().Run(ctx, args)
}

// runTUI is the default action that launches the bar when no subcommand is
// given.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		if err := log.SetFile(debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
		}
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
		}
	}()

	overrides := cmd.StringSlice("config")
	cfg, err := loadConfig(cmd.String("config-file"), overrides)
	if err != nil {
		return err
	}

	if cmd.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			if err := log.SetFile(cfg.DebugLog); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", cfg.DebugLog, err)
			}
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	if err := applyFlags(cfg, cmd); err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	if !isTerminal() {
		return ErrNotATerminal
	}

	opts := []app.Option{
		app.WithReloader(func(path string) (*config.AppConfig, error) {
			return config.Load(path, overrides)
		}),
	}
	if cmd.Bool("restore") {
		blob, err := services.LoadState(cfg.StateFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading saved state: %v\n", err)
		}
		opts = append(opts, app.WithInitialState(blob))
	}

	model, err := app.NewModel(cfg, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return model.Err()
}

// loadConfig reads the config file. A broken file is reported and the
// defaults are used; broken overrides are fatal.
func loadConfig(path string, overrides []string) (*config.AppConfig, error) {
	cfg, err := config.Load(path, overrides)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, config.ErrInvalidOverride):
		return nil, fmt.Errorf("error applying config overrides: %w", err)
	default:
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return cfg, nil
	}
}

// applyFlags layers the command line flags over the loaded config.
func applyFlags(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	if err := applyThemeConfig(cfg, cmd.String("theme")); err != nil {
		return err
	}
	if err := applyLeftActionConfig(cfg, cmd.String("left-action")); err != nil {
		return err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if stateFile := cmd.String("state-file"); stateFile != "" {
		cfg.StateFile = stateFile
	}
	return nil
}

// applyThemeConfig applies theme configuration from command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}
	normalized := theme.Normalize(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	cfg.Theme = normalized
	return nil
}

func applyLeftActionConfig(cfg *config.AppConfig, name string) error {
	if name == "" {
		return nil
	}
	mode, err := searchbar.ParseLeftActionMode(name)
	if err != nil {
		return err
	}
	cfg.LeftActionMode = mode
	return nil
}
