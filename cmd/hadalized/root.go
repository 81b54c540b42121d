package main

import (
	"github.com/spf13/cobra"

	"hadalized/internal/config"
	"hadalized/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hadalized",
		Short:         "Hadalized compiles OKLCH palettes into application theme files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	registerOptionFlags(cmd)

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newStateCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// registerOptionFlags declares the shared options as persistent flags.
// Flag names line up with the configuration keys bound in the config
// package, so values resolve through the same precedence chain as
// config files and environment variables.
func registerOptionFlags(cmd *cobra.Command) {
	defaults := config.DefaultOptions()
	pf := cmd.PersistentFlags()

	pf.StringSliceP("app", "a", nil, "Only build the named applications")
	pf.StringSliceP("palette", "p", nil, "Only build the named palettes")
	pf.String("cache-dir", defaults.CacheDir, "Directory holding the build cache")
	pf.Bool("cache-in-memory", false, "Keep the build cache in memory instead of on disk")
	pf.String("config-file", "", "Read configuration from this file only")
	pf.BoolP("dry-run", "n", false, "Preview builds without writing any files")
	pf.BoolP("force", "f", false, "Rebuild outputs even when they are current")
	pf.Bool("no-cache", false, "Disable the build cache")
	pf.Bool("no-config", false, "Ignore configuration files and environment variables")
	pf.Bool("no-templates", false, "Ignore user template overrides")
	pf.StringP("output", "o", "", "Copy built theme files into this directory")
	pf.Bool("parse", false, "Parse every palette while loading the configuration")
	pf.Bool("prefix", false, "Keep per-application subdirectories when copying to the output directory")
	pf.BoolP("quiet", "q", false, "Silence log and progress output")
	pf.String("state-dir", defaults.StateDir, "Directory holding built theme files")
	pf.String("template-dir", defaults.TemplateDir, "Directory holding user template overrides")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
}

// loadConfig resolves the merged configuration for a command
// invocation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(cmd.Root().PersistentFlags())
}

// newLogger builds the CLI logger honoring the verbosity options. Log
// lines go to stderr so stdout stays parseable.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         logger.LevelFor(cfg.Verbose, cfg.Quiet),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
}
