// Package main is the entry point for the floatbar application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/floatbar/internal/bootstrap"
	"github.com/chmouel/floatbar/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	if err := bootstrap.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
