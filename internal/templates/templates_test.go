package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/internal/color"
	"hadalized/internal/palette"
	"hadalized/pkg/errors"
)

func hexPalette(t *testing.T) *palette.Palette {
	t.Helper()
	p := palette.New(
		palette.Meta{Name: "hadalized", Desc: "Main dark theme.", Mode: "dark"},
		palette.Colors{Hue: color.DarkHues(), Base: color.DarkBases()},
	)
	parsed, err := p.Parse("")
	require.NoError(t, err)
	hex, err := parsed.Project(color.FieldHex)
	require.NoError(t, err)
	return hex
}

func TestBuiltinTemplatesParse(t *testing.T) {
	t.Parallel()

	loader := NewLoader("")
	names := Builtins()
	require.ElementsMatch(t, []string{
		"neovim.lua", "wezterm.toml", "starship.toml",
		"palette_info.json", "palette.html",
	}, names)

	for _, name := range names {
		tmpl, err := loader.Load(name)
		require.NoError(t, err, name)
		require.Equal(t, name, tmpl.Name())
		require.NotEmpty(t, tmpl.Source())
	}
}

func TestLoadMissingTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewLoader("").Load("nope.conf")
	var notFound *errors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "template", notFound.Kind)
	require.Equal(t, "nope.conf", notFound.Name)
}

func TestUserDirectoryWinsOverBuiltin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	override := []byte("-- user override for {{ .Name }}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neovim.lua"), override, 0o644))

	tmpl, err := NewLoader(dir).Load("neovim.lua")
	require.NoError(t, err)
	require.Equal(t, override, tmpl.Source())

	builtin, err := NewLoader("").Load("neovim.lua")
	require.NoError(t, err)
	require.NotEqual(t, override, builtin.Source())
}

func TestRenderNeovimTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := NewLoader("").Load("neovim.lua")
	require.NoError(t, err)

	out, err := tmpl.Render(hexPalette(t))
	require.NoError(t, err)
	require.Contains(t, out, `vim.g.colors_name = "hadalized"`)
	require.Contains(t, out, "red     = \"#")
	require.NotContains(t, out, "{{")
}

func TestRenderInfoTemplateEmitsJSON(t *testing.T) {
	t.Parallel()

	p := palette.New(
		palette.Meta{Name: "hadalized", Desc: "Main dark theme.", Mode: "dark"},
		palette.Colors{Hue: color.DarkHues(), Base: color.DarkBases()},
	)
	parsed, err := p.Parse("")
	require.NoError(t, err)

	tmpl, err := NewLoader("").Load("palette_info.json")
	require.NoError(t, err)

	out, err := tmpl.Render(parsed)
	require.NoError(t, err)
	require.Contains(t, out, `"name": "hadalized"`)
	require.Contains(t, out, `"max_oklch_chroma"`)
}

func TestRenderFailsOnUnknownReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("{{ .NoSuchField }}"), 0o644))

	tmpl, err := NewLoader(dir).Load("broken.txt")
	require.NoError(t, err)

	_, err = tmpl.Render(hexPalette(t))
	require.Error(t, err)
}

func TestRenderStringsSlots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := []byte("{{ .Hue.Red }} on {{ .Base.BG }}")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mini.txt"), src, 0o644))

	tmpl, err := NewLoader(dir).Load("mini.txt")
	require.NoError(t, err)

	out, err := tmpl.Render(hexPalette(t))
	require.NoError(t, err)
	parts := strings.Split(out, " on ")
	require.Len(t, parts, 2)
	require.True(t, strings.HasPrefix(parts[0], "#"))
	require.True(t, strings.HasPrefix(parts[1], "#"))
}
