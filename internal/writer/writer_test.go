package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/internal/config"
	"hadalized/internal/logger"
	"hadalized/pkg/errors"
)

// defaultOutputs is what one full run of the built-in directives
// produces: four palettes for each of the four palette-context builds,
// plus one starship file.
const defaultOutputs = 17

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.New()
	cfg.CacheDir = filepath.Join(base, "cache")
	cfg.StateDir = filepath.Join(base, "state")
	cfg.TemplateDir = filepath.Join(base, "templates")
	return cfg
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "disabled"})
	require.NoError(t, err)
	return log
}

func runOnce(t *testing.T, cfg *config.Config) []string {
	t.Helper()

	w, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	written, err := w.Run()
	require.NoError(t, err)
	return written
}

func TestRunWritesEveryDefaultOutput(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	written := runOnce(t, cfg)

	require.Len(t, written, defaultOutputs)
	require.FileExists(t, filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua"))
	require.FileExists(t, filepath.Join(cfg.BuildDir(), "wezterm", "hadalized-day.toml"))
	require.FileExists(t, filepath.Join(cfg.BuildDir(), "starship", "starship.toml"))
	require.FileExists(t, filepath.Join(cfg.BuildDir(), "info", "hadalized-gray.json"))
	require.FileExists(t, filepath.Join(cfg.BuildDir(), "html-samples", "hadalized-white.html"))
}

func TestSecondRunWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	first := runOnce(t, cfg)
	require.Len(t, first, defaultOutputs)

	second := runOnce(t, cfg)
	require.Empty(t, second)
}

func TestDeletedOutputRegenerates(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	runOnce(t, cfg)

	target := filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua")
	require.NoError(t, os.Remove(target))

	second := runOnce(t, cfg)
	require.Equal(t, []string{target}, second)
	require.FileExists(t, target)
}

func TestForceRewritesEverything(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	runOnce(t, cfg)

	cfg.Force = true
	second := runOnce(t, cfg)
	require.Len(t, second, defaultOutputs)
}

func TestNoCacheAlwaysWrites(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.NoCache = true

	require.Len(t, runOnce(t, cfg), defaultOutputs)
	require.Len(t, runOnce(t, cfg), defaultOutputs)
	require.NoFileExists(t, filepath.Join(cfg.CacheDir, "builds.db"))
}

func TestInMemoryCacheSkipsWithinSession(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.CacheInMemory = true

	w, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	first, err := w.Run()
	require.NoError(t, err)
	require.Len(t, first, defaultOutputs)

	second, err := w.Run()
	require.NoError(t, err)
	require.Empty(t, second)

	require.NoFileExists(t, filepath.Join(cfg.CacheDir, "builds.db"))
}

func TestInMemoryCacheForgetsAcrossSessions(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.CacheInMemory = true

	require.Len(t, runOnce(t, cfg), defaultOutputs)
	require.Len(t, runOnce(t, cfg), defaultOutputs)
}

func TestDryRunTouchesNothing(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.DryRun = true

	w, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	written, err := w.Run()
	require.NoError(t, err)
	require.Len(t, written, defaultOutputs)
	require.Len(t, w.Diffs(), defaultOutputs)

	require.NoDirExists(t, cfg.BuildDir())
	require.NoFileExists(t, filepath.Join(cfg.CacheDir, "builds.db"))
}

func TestDryRunAfterBuildReportsNoChanges(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	runOnce(t, cfg)

	cfg.DryRun = true
	w, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	written, err := w.Run()
	require.NoError(t, err)
	require.Empty(t, written)
	require.Empty(t, w.Diffs())
}

func TestIncludeFilters(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"wezterm"}
	cfg.IncludePalettes = []string{"day", "gray"}

	written := runOnce(t, cfg)
	require.ElementsMatch(t, []string{
		filepath.Join(cfg.BuildDir(), "wezterm", "hadalized-day.toml"),
		filepath.Join(cfg.BuildDir(), "wezterm", "hadalized-gray.toml"),
	}, written)
}

func TestBuildNeovimForHadalizedOnce(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"neovim"}
	cfg.IncludePalettes = []string{"hadalized"}

	first := runOnce(t, cfg)
	require.Len(t, first, 1)
	require.Equal(t, filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua"), first[0])

	second := runOnce(t, cfg)
	require.Empty(t, second)
}

func TestOutputDirCopyFlattened(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	out := filepath.Join(t.TempDir(), "themes")
	cfg.OutputDir = out
	cfg.IncludeBuilds = []string{"neovim"}

	runOnce(t, cfg)
	require.FileExists(t, filepath.Join(out, "hadalized.lua"))
	require.FileExists(t, filepath.Join(out, "hadalized-day.lua"))
}

func TestOutputDirCopyPrefixed(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	out := filepath.Join(t.TempDir(), "themes")
	cfg.OutputDir = out
	cfg.Prefix = true
	cfg.IncludeBuilds = []string{"neovim"}

	runOnce(t, cfg)
	require.FileExists(t, filepath.Join(out, "neovim", "hadalized.lua"))
}

func TestSkippedOutputsStillCopy(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"neovim"}
	runOnce(t, cfg)

	out := filepath.Join(t.TempDir(), "themes")
	cfg.OutputDir = out
	second := runOnce(t, cfg)
	require.Empty(t, second)
	require.FileExists(t, filepath.Join(out, "hadalized.lua"))
}

func TestUserTemplateOverride(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"neovim"}
	cfg.IncludePalettes = []string{"hadalized"}
	require.NoError(t, os.MkdirAll(cfg.TemplateDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.TemplateDir, "neovim.lua"),
		[]byte("-- {{ .Name }} override\n"),
		0o644,
	))

	runOnce(t, cfg)

	data, err := os.ReadFile(filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua"))
	require.NoError(t, err)
	require.Equal(t, "-- hadalized override\n", string(data))
}

func TestNoTemplatesIgnoresUserDir(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.NoTemplates = true
	cfg.IncludeBuilds = []string{"neovim"}
	cfg.IncludePalettes = []string{"hadalized"}
	require.NoError(t, os.MkdirAll(cfg.TemplateDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.TemplateDir, "neovim.lua"),
		[]byte("-- override\n"),
		0o644,
	))

	runOnce(t, cfg)

	data, err := os.ReadFile(filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua"))
	require.NoError(t, err)
	require.Contains(t, string(data), "vim.g.colors_name")
}

func TestRenderedContentNamesPalette(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"neovim", "wezterm"}
	cfg.IncludePalettes = []string{"hadalized"}
	runOnce(t, cfg)

	lua, err := os.ReadFile(filepath.Join(cfg.BuildDir(), "neovim", "hadalized.lua"))
	require.NoError(t, err)
	require.Contains(t, string(lua), `vim.g.colors_name = "hadalized"`)
	require.Regexp(t, `#[0-9a-f]{6}`, string(lua))

	toml, err := os.ReadFile(filepath.Join(cfg.BuildDir(), "wezterm", "hadalized.toml"))
	require.NoError(t, err)
	require.Contains(t, string(toml), "ansi = [")
}

func TestBuildUnknownTemplate(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	w, err := New(cfg, testLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Close()) }()

	_, err = w.Build(config.BuildDirective{
		Name:        "kitty",
		Template:    "kitty.conf",
		ContextType: config.ContextPalette,
		ColorType:   "hex",
	})
	var nferr *errors.NotFoundError
	require.ErrorAs(t, err, &nferr)
	require.Equal(t, "kitty.conf", nferr.Name)
}

func TestTemplateEditInvalidatesCache(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.IncludeBuilds = []string{"neovim"}
	runOnce(t, cfg)

	require.NoError(t, os.MkdirAll(cfg.TemplateDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.TemplateDir, "neovim.lua"),
		[]byte("-- {{ .Name }} v2\n"),
		0o644,
	))

	second := runOnce(t, cfg)
	require.Len(t, second, 4, "every palette output should rebuild after a template edit")
}
