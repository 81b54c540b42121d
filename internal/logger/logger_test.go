package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"app": "neovim", "template": "neovim.lua"})
	log.Info("handling themes")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "handling themes", entry["message"])
	require.Equal(t, "neovim", entry["app"])
	require.Equal(t, "neovim.lua", entry["template"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerFieldOrderIsStable(t *testing.T) {
	t.Parallel()

	fields := map[string]any{
		"path":     "neovim/hadalized.lua",
		"digest":   "abc123",
		"app":      "neovim",
		"template": "neovim.lua",
	}

	render := func() string {
		buf := &bytes.Buffer{}
		log, err := New(Options{Level: "info", Writer: buf})
		require.NoError(t, err)
		log.WithFields(fields).Info("writing theme file")
		return buf.String()
	}

	first := render()
	for range 10 {
		require.Equal(t, first, render())
	}
	require.Less(t, strings.Index(first, `"app"`), strings.Index(first, `"digest"`))
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("output is current, skipping write")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerDisabledLevelDropsEverything(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: LevelFor(false, true), Writer: buf})
	require.NoError(t, err)

	log.Info("writing theme file")
	log.Error(errors.New("boom"), "failed")
	require.Empty(t, buf.String())
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "wezterm/hadalized.toml"})
	log.Error(errors.New("disk full"), "write theme file failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "write theme file failed", entry["message"])
	require.Equal(t, "wezterm/hadalized.toml", entry["path"])
	require.Equal(t, "disk full", entry["error"])
}

func TestLoggerNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.WithFields(map[string]any{"app": "info"}).Info("no-op")
	log.Debug("no-op")
	log.Warn("no-op")
	log.Error(errors.New("boom"), "no-op")
}

func TestLevelFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "disabled", LevelFor(false, true))
	require.Equal(t, "disabled", LevelFor(true, true))
	require.Equal(t, "debug", LevelFor(true, false))
	require.Equal(t, "info", LevelFor(false, false))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
