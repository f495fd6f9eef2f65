// Package bootstrap builds the floatbar command line.
package bootstrap

import (
	"strings"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/floatbar/internal/searchbar"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=fb.key=value",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "log-level",
			Usage: "Debug log level (debug, info, warn, error)",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:    "left-action",
			Aliases: []string{"l"},
			Usage:   "Left action mode (" + strings.Join(searchbar.LeftActionModeNames(), ", ") + ")",
		},
		&urfavecli.StringFlag{
			Name:  "state-file",
			Usage: "Where the bar state is saved on exit",
		},
		&urfavecli.BoolFlag{
			Name:  "restore",
			Usage: "Restore the bar state saved by the previous run",
		},
	}
}
