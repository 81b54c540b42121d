package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hadalized/internal/config"
	"hadalized/internal/homedirs"
	"hadalized/pkg/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Interact with the application config",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

type configInitOptions struct {
	format string
}

func newConfigInitCmd() *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write the merged configuration to a config file.

The file lands in the XDG config directory unless --output names a
different location. With --output=stdout the contents are printed
instead of written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runConfigInit(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "toml", "Config file format, toml or yaml")

	return cmd
}

func runConfigInit(cmd *cobra.Command, cfg *config.Config, opts *configInitOptions) error {
	data, err := marshalConfig(cfg, opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.OutputDir == "stdout" {
		fmt.Fprint(out, string(data))
		return nil
	}

	path := cfg.OutputDir
	if path == "" {
		path = homedirs.Config()
	}
	ext := "." + opts.format
	if filepath.Ext(path) != ext {
		path = filepath.Join(path, "config"+ext)
	}

	if _, err := os.Stat(path); err == nil {
		if !cfg.Quiet {
			fmt.Fprintf(out, "%s already exists.\n", path)
		}
		if !cfg.Force {
			return nil
		}
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Creating %s\n", path)
	}
	if cfg.DryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewIOError("create config dir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIOError("write config file", path, err)
	}
	return nil
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(cfg)
	case "yaml":
		return yaml.Marshal(cfg)
	default:
		return nil, errors.NewValidationError("format",
			fmt.Sprintf("unsupported config format %q", format), nil)
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}
