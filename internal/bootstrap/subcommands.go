package bootstrap

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/floatbar/internal/app/services"
	"github.com/chmouel/floatbar/internal/searchbar/savedstate"
	"github.com/chmouel/floatbar/internal/theme"
)

// stateCommand returns the state subcommand definition.
func stateCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "state",
		Usage: "Inspect or remove the saved bar state",
		Commands: []*urfavecli.Command{
			{
				Name:      "inspect",
				Usage:     "Print the saved state",
				ArgsUsage: "[state-file]",
				Action:    handleStateInspect,
			},
			{
				Name:      "clear",
				Usage:     "Delete the saved state",
				ArgsUsage: "[state-file]",
				Action:    handleStateClear,
			},
		},
	}
}

// themesCommand returns the themes subcommand definition.
func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:   "themes",
		Usage:  "List available themes",
		Action: func(context.Context, *urfavecli.Command) error { printThemes(); return nil },
	}
}

// stateFileArg returns the file named on the command line, or the one from
// the configuration.
func stateFileArg(cmd *urfavecli.Command) string {
	if p := cmd.Args().First(); p != "" {
		return p
	}
	if p := cmd.Root().String("state-file"); p != "" {
		return p
	}
	cfg, _ := loadConfig(cmd.Root().String("config-file"), nil)
	return cfg.StateFile
}

func handleStateInspect(_ context.Context, cmd *urfavecli.Command) error {
	path := stateFileArg(cmd)
	rec, ok, err := services.LoadRecord(path)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No saved state in %s\n", path)
		return nil
	}
	fmt.Printf("%s\n\n%s\n", path, savedstate.Describe(rec))
	return nil
}

func handleStateClear(_ context.Context, cmd *urfavecli.Command) error {
	path := stateFileArg(cmd)
	if err := services.ClearState(path); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", path)
	return nil
}

// printThemes prints the theme names, marking light ones and the one the
// terminal background would pick.
func printThemes() {
	detected := theme.Detect()
	fmt.Println("Available themes:")
	for _, name := range theme.AvailableThemes() {
		var tags string
		if theme.IsLight(name) {
			tags += " (light)"
		}
		if name == detected {
			tags += " (default)"
		}
		fmt.Printf("  %s%s\n", name, tags)
	}
}
