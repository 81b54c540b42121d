package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hadalized/internal/cache"
	"hadalized/internal/config"
	"hadalized/pkg/errors"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Interact with the application cache",
	}

	cmd.AddCommand(newCacheCleanCmd())
	cmd.AddCommand(newCacheDirCmd())
	cmd.AddCommand(newCacheListCmd())

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clear the application cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runCacheClean(cmd, cfg)
		},
	}
}

func runCacheClean(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	if cfg.DryRun && !cfg.Quiet {
		fmt.Fprintln(out, "DRY-RUN: Cache files will not be deleted.")
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "Clearing %s\n", cfg.CacheDir)
	}
	if cfg.Verbose {
		files, err := treeFiles(cfg.CacheDir)
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
	if err := os.RemoveAll(cfg.CacheDir); err != nil {
		return errors.NewIOError("remove cache dir", cfg.CacheDir, err)
	}
	return nil
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.CacheDir)
			return nil
		},
	}
}

func newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the recorded output digests",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runCacheList(cmd, cfg)
		},
	}
}

func runCacheList(cmd *cobra.Command, cfg *config.Config) error {
	c := cache.New(cfg.CacheDir, cfg.CacheInMemory)
	if err := c.Connect(); err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.Entries()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
