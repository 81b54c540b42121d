package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/internal/color"
	"hadalized/pkg/errors"
)

func TestNewHasBuiltins(t *testing.T) {
	t.Parallel()

	cfg := New()

	require.Equal(t, []string{
		"hadalized", "hadalized-day", "hadalized-gray", "hadalized-white",
	}, cfg.PaletteNames())

	var buildNames []string
	for _, b := range cfg.Builds {
		buildNames = append(buildNames, b.Name)
	}
	require.Equal(t, []string{"neovim", "wezterm", "starship", "info", "html-samples"}, buildNames)
}

func TestDefaultBuildDirectives(t *testing.T) {
	t.Parallel()

	cfg := New()

	starship, err := cfg.GetBuild("starship")
	require.NoError(t, err)
	require.Equal(t, ContextFull, starship.ContextType)
	require.Equal(t, color.FieldHex, starship.ColorType)

	info, err := cfg.GetBuild("info")
	require.NoError(t, err)
	require.Equal(t, ContextPalette, info.ContextType)
	require.Equal(t, color.FieldInfo, info.ColorType)

	_, err = cfg.GetBuild("emacs")
	var nferr *errors.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestGetPaletteByNameAndAlias(t *testing.T) {
	t.Parallel()

	cfg := New()

	byName, err := cfg.GetPalette("hadalized-gray")
	require.NoError(t, err)

	byAlias, err := cfg.GetPalette("gray")
	require.NoError(t, err)
	require.Same(t, byName, byAlias)

	_, err = cfg.GetPalette("nord")
	var nferr *errors.NotFoundError
	require.ErrorAs(t, err, &nferr)
	require.Equal(t, "palette", nferr.Kind)
	require.Equal(t, "nord", nferr.Name)
}

func TestParsePalettes(t *testing.T) {
	t.Parallel()

	cfg := New()

	parsed, err := cfg.ParsePalettes()
	require.NoError(t, err)

	for _, key := range parsed.PaletteNames() {
		p, err := parsed.GetPalette(key)
		require.NoError(t, err)
		require.True(t, p.IsParsed(), "palette %s", key)
	}

	// The receiver keeps its unparsed palettes.
	p, err := cfg.GetPalette("hadalized")
	require.NoError(t, err)
	require.False(t, p.IsParsed())
}

func TestProjectRequiresParsedPalettes(t *testing.T) {
	t.Parallel()

	cfg := New()

	_, err := cfg.Project(color.FieldHex)
	var serr *errors.StateError
	require.ErrorAs(t, err, &serr)
}

func TestProjectReducesEveryPalette(t *testing.T) {
	t.Parallel()

	parsed, err := New().ParsePalettes()
	require.NoError(t, err)

	hexed, err := parsed.Project(color.FieldHex)
	require.NoError(t, err)

	for _, key := range hexed.PaletteNames() {
		p, err := hexed.GetPalette(key)
		require.NoError(t, err)
		require.Equal(t, color.FieldHex, p.FieldType(), "palette %s", key)
	}
}

func TestFingerprintExcludesOptions(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.OutputDir = "./themes"
	cfg.Verbose = true

	data, err := json.Marshal(cfg.Fingerprint())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "palettes")
	require.Contains(t, decoded, "builds")
	require.Contains(t, decoded, "terminal")
	require.NotContains(t, decoded, "output_dir")
	require.NotContains(t, decoded, "verbose")
}
