package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"hadalized/internal/config"
	"hadalized/pkg/errors"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cache and state files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := runCacheClean(cmd, cfg); err != nil {
				return err
			}
			return runStateClean(cmd, cfg)
		},
	}

	return cmd
}

// treeFiles lists the files under dir, sorted. A missing dir yields an
// empty list.
func treeFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.NewIOError("list files", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
