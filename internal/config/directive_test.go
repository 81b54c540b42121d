package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/internal/color"
)

func TestBuildDirectiveNormalize(t *testing.T) {
	t.Parallel()

	d := BuildDirective{Name: "neovim", Template: "neovim.lua"}
	d.Normalize()

	require.Equal(t, ContextPalette, d.ContextType)
	require.Equal(t, color.FieldHex, d.ColorType)
}

func TestBuildDirectiveFormatPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		directive BuildDirective
		context   string
		want      string
	}{
		{
			name:      "palette default inherits template extension",
			directive: BuildDirective{Name: "neovim", Template: "neovim.lua", ContextType: ContextPalette},
			context:   "hadalized",
			want:      filepath.Join("neovim", "hadalized.lua"),
		},
		{
			name:      "full default uses template name",
			directive: BuildDirective{Name: "starship", Template: "starship.toml", ContextType: ContextFull},
			context:   "config",
			want:      filepath.Join("starship", "starship.toml"),
		},
		{
			name:      "explicit filename is kept",
			directive: BuildDirective{Name: "starship", Template: "starship.toml", Filename: "starship-alt.toml", ContextType: ContextFull},
			context:   "config",
			want:      filepath.Join("starship", "starship-alt.toml"),
		},
		{
			name:      "explicit pattern with extension inheritance",
			directive: BuildDirective{Name: "wezterm", Template: "wezterm.toml", Filename: "{context.name}-theme.{ext}", ContextType: ContextPalette},
			context:   "hadalized-day",
			want:      filepath.Join("wezterm", "hadalized-day-theme.toml"),
		},
		{
			name:      "subdir overrides name",
			directive: BuildDirective{Name: "html-samples", Subdir: "html", Template: "palette.html", ContextType: ContextPalette},
			context:   "hadalized",
			want:      filepath.Join("html", "hadalized.html"),
		},
		{
			name:      "extensionless template leaves no trailing dot",
			directive: BuildDirective{Name: "raw", Template: "dump", ContextType: ContextPalette},
			context:   "hadalized",
			want:      filepath.Join("raw", "hadalized"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, tc.directive.FormatPath(tc.context))
		})
	}
}
