package config

import (
	"hadalized/internal/color"
	"hadalized/internal/palette"
)

// DefaultPalettes returns the four built-in palettes keyed by name.
func DefaultPalettes() map[string]*palette.Palette {
	dark := palette.New(
		palette.Meta{
			Name:    "hadalized",
			Desc:    "Main dark theme with blueish solarized inspired backgrounds.",
			Mode:    "dark",
			Gamut:   color.SpaceSRGB,
			Aliases: []string{"dark"},
		},
		palette.Colors{Hue: color.DarkHues(), Base: color.DarkBases()},
	)

	// Same dark ramp endpoints, neutral gray steps in between.
	grayBase := color.DarkBases()
	grayBase.BG = color.Literal(color.Ref(13))
	grayBase.BG1 = color.Literal(color.Ref(14))
	grayBase.BG2 = color.Literal(color.Ref(16))
	grayBase.BG3 = color.Literal(color.Ref(20))
	grayBase.BG4 = color.Literal(color.Ref(25))
	grayBase.BG5 = color.Literal(color.Ref(30))
	grayBase.BG6 = color.Literal(color.Ref(35))
	gray := palette.New(
		palette.Meta{
			Name:    "hadalized-gray",
			Desc:    "Dark theme variant with more grayish backgrounds.",
			Mode:    "dark",
			Gamut:   dark.Gamut,
			Aliases: []string{"gray"},
		},
		palette.Colors{Hue: color.DarkHues(), Base: grayBase},
	)

	day := palette.New(
		palette.Meta{
			Name:    "hadalized-day",
			Desc:    "Light theme variant with sunny backgrounds.",
			Mode:    "light",
			Gamut:   color.SpaceSRGB,
			Aliases: []string{"day"},
		},
		palette.Colors{Hue: color.LightHues(), Base: color.LightBases()},
	)

	whiteBase := color.LightBases()
	whiteBase.BG = color.Literal(color.Ref(100))
	whiteBase.BG1 = color.Literal(color.Ref(99))
	whiteBase.BG2 = color.Literal(color.Ref(95))
	whiteBase.BG3 = color.Literal(color.Ref(92))
	whiteBase.BG4 = color.Literal(color.Ref(99))
	whiteBase.BG5 = color.Literal(color.Ref(85))
	whiteBase.BG6 = color.Literal(color.Ref(80))
	white := palette.New(
		palette.Meta{
			Name:    "hadalized-white",
			Desc:    "Light theme variant with whiter backgrounds.",
			Mode:    "light",
			Gamut:   day.Gamut,
			Aliases: []string{"white"},
		},
		palette.Colors{Hue: color.LightHues(), Base: whiteBase},
	)

	return map[string]*palette.Palette{
		dark.Name:  dark,
		gray.Name:  gray,
		day.Name:   day,
		white.Name: white,
	}
}

// DefaultBuilds returns the built-in build directives in their
// canonical order.
func DefaultBuilds() []BuildDirective {
	builds := []BuildDirective{
		{Name: "neovim", Template: "neovim.lua"},
		{Name: "wezterm", Template: "wezterm.toml"},
		{Name: "starship", Template: "starship.toml", ContextType: ContextFull},
		{Name: "info", Template: "palette_info.json", ColorType: color.FieldInfo},
		{Name: "html-samples", Template: "palette.html", ColorType: color.FieldCSS},
	}
	for i := range builds {
		builds[i].Normalize()
	}
	return builds
}
