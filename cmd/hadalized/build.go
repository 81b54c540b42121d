package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hadalized/internal/config"
	"hadalized/internal/writer"
)

var buildCmdRunner = runBuild

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [app]",
		Short: "Build application theme files",
		Long: `Build theme files for the configured applications and palettes.

When no application or palette is specified, themes are built for every
application and palette pair. A positional name narrows the run to one
application; --app and --palette narrow it further.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.IncludeBuilds = append(cfg.IncludeBuilds, args[0])
			}
			return buildCmdRunner(cmd, cfg)
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command, cfg *config.Config) error {
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.DryRun {
		fmt.Fprintln(out, "DRY-RUN. No theme files will be generated or copied.")
	}

	w, err := writer.New(cfg, log)
	if err != nil {
		return err
	}
	defer w.Close()

	written, err := w.Run()
	if err != nil {
		return err
	}

	for _, d := range w.Diffs() {
		fmt.Fprintln(out, d.Patch)
	}

	if !cfg.Quiet {
		if cfg.DryRun {
			fmt.Fprintf(out, "%d file(s) would be written\n", len(written))
		} else {
			fmt.Fprintf(out, "%d file(s) written\n", len(written))
		}
	}
	return nil
}
