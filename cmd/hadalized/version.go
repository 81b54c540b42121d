package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"hadalized/internal/palette"
)

// Overridden at release time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// releaseVersion prefers the ldflags value and falls back to module
// build info so `go install` builds still report something useful.
func releaseVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "hadalized %s\ncommit: %s\nbuilt: %s\npalette format: %s\n",
				releaseVersion(), commit, date, palette.DefaultVersion)
			return nil
		},
	}
}
