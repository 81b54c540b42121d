package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheDirCommand(t *testing.T) {
	cacheDir, _, flags := testDirs(t)

	out, err := runCommand(t, append([]string{"cache", "dir"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, cacheDir+"\n", out)
}

func TestStateDirCommand(t *testing.T) {
	_, stateDir, flags := testDirs(t)

	out, err := runCommand(t, append([]string{"state", "dir"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, stateDir+"\n", out)
}

func TestCacheListCommand(t *testing.T) {
	_, _, flags := testDirs(t)

	_, err := runCommand(t, append([]string{"build", "--quiet"}, flags...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"cache", "ls"}, flags...)...)
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 17)
	for path, digest := range entries {
		assert.True(t, filepath.IsAbs(path), "cache keys are absolute paths")
		assert.Len(t, digest, 64)
	}
}

func TestStateListCommand(t *testing.T) {
	_, stateDir, flags := testDirs(t)

	_, err := runCommand(t, append([]string{"build", "neovim", "--quiet"}, flags...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"state", "ls"}, flags...)...)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(stateDir, "build", "neovim", "hadalized.lua"))
}

func TestCacheCleanCommand(t *testing.T) {
	cacheDir, _, flags := testDirs(t)

	_, err := runCommand(t, append([]string{"build", "--quiet"}, flags...)...)
	require.NoError(t, err)
	require.DirExists(t, cacheDir)

	out, err := runCommand(t, append([]string{"cache", "clean"}, flags...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Clearing "+cacheDir)
	assert.NoDirExists(t, cacheDir)
}

func TestStateCleanDryRun(t *testing.T) {
	_, stateDir, flags := testDirs(t)

	_, err := runCommand(t, append([]string{"build", "--quiet"}, flags...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"state", "clean", "--dry-run"}, flags...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "DRY-RUN. No state files will be deleted.")
	assert.Contains(t, out, "Clearing "+stateDir)
	assert.DirExists(t, stateDir)
}

func TestCleanCommandRemovesEverything(t *testing.T) {
	cacheDir, stateDir, flags := testDirs(t)

	_, err := runCommand(t, append([]string{"build", "--quiet"}, flags...)...)
	require.NoError(t, err)
	require.DirExists(t, cacheDir)
	require.DirExists(t, stateDir)

	_, err = runCommand(t, append([]string{"clean", "--quiet"}, flags...)...)
	require.NoError(t, err)

	assert.NoDirExists(t, cacheDir)
	assert.NoDirExists(t, stateDir)
}
