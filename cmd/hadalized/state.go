package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hadalized/internal/config"
	"hadalized/pkg/errors"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Interact with application state such as built theme files",
	}

	cmd.AddCommand(newStateCleanCmd())
	cmd.AddCommand(newStateDirCmd())
	cmd.AddCommand(newStateListCmd())

	return cmd
}

func newStateCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clear state files such as built themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runStateClean(cmd, cfg)
		},
	}
}

func runStateClean(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	if cfg.DryRun && !cfg.Quiet {
		fmt.Fprintln(out, "DRY-RUN. No state files will be deleted.")
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "Clearing %s\n", cfg.StateDir)
		files, err := treeFiles(cfg.StateDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(out, f)
		}
	}
	if cfg.DryRun {
		return nil
	}
	if err := os.RemoveAll(cfg.StateDir); err != nil {
		return errors.NewIOError("remove state dir", cfg.StateDir, err)
	}
	return nil
}

func newStateDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show the state directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.StateDir)
			return nil
		},
	}
}

func newStateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built theme files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			files, err := treeFiles(cfg.StateDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
