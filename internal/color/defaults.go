package color

import (
	"fmt"
)

// Ref returns the grayscale reference literal for a whiteness step,
// e.g. Ref(13) == "oklch(0.13 0 0)". Palette variants build their
// background ramps from these.
func Ref(n int) string {
	return fmt.Sprintf("oklch(%s 0 0)", formatCoord(float64(n)/100))
}

// DarkHues returns the accent hues tuned for dark backgrounds.
func DarkHues() Hues {
	return Hues{
		Red:     Literal("oklch(0.6 0.16 25)"),
		Rose:    Literal("oklch(0.62 0.16 350)"),
		Orange:  Literal("oklch(0.66 0.14 55)"),
		Yellow:  Literal("oklch(0.75 0.13 95)"),
		Lime:    Literal("oklch(0.72 0.16 120)"),
		Green:   Literal("oklch(0.68 0.15 140)"),
		Mint:    Literal("oklch(0.72 0.13 165)"),
		Cyan:    Literal("oklch(0.72 0.11 195)"),
		Azure:   Literal("oklch(0.66 0.12 230)"),
		Blue:    Literal("oklch(0.6 0.15 255)"),
		Violet:  Literal("oklch(0.6 0.14 290)"),
		Magenta: Literal("oklch(0.62 0.15 330)"),
	}
}

// LightHues returns the accent hues tuned for light backgrounds.
func LightHues() Hues {
	return Hues{
		Red:     Literal("oklch(0.54 0.16 25)"),
		Rose:    Literal("oklch(0.55 0.16 350)"),
		Orange:  Literal("oklch(0.58 0.13 55)"),
		Yellow:  Literal("oklch(0.62 0.12 95)"),
		Lime:    Literal("oklch(0.6 0.14 120)"),
		Green:   Literal("oklch(0.58 0.14 140)"),
		Mint:    Literal("oklch(0.6 0.12 165)"),
		Cyan:    Literal("oklch(0.6 0.1 195)"),
		Azure:   Literal("oklch(0.56 0.11 230)"),
		Blue:    Literal("oklch(0.52 0.14 255)"),
		Violet:  Literal("oklch(0.52 0.13 290)"),
		Magenta: Literal("oklch(0.54 0.14 330)"),
	}
}

// BrightHues returns the emphasized variants shared by all palettes.
func BrightHues() Hues {
	return Hues{
		Red:     Literal("oklch(0.68 0.18 25)"),
		Rose:    Literal("oklch(0.7 0.17 350)"),
		Orange:  Literal("oklch(0.74 0.15 55)"),
		Yellow:  Literal("oklch(0.82 0.14 95)"),
		Lime:    Literal("oklch(0.8 0.17 120)"),
		Green:   Literal("oklch(0.76 0.16 140)"),
		Mint:    Literal("oklch(0.8 0.14 165)"),
		Cyan:    Literal("oklch(0.8 0.12 195)"),
		Azure:   Literal("oklch(0.74 0.13 230)"),
		Blue:    Literal("oklch(0.68 0.16 255)"),
		Violet:  Literal("oklch(0.68 0.15 290)"),
		Magenta: Literal("oklch(0.7 0.16 330)"),
	}
}

// HighlightHues returns the low-chroma tints used for selection and
// diff backgrounds, shared by all palettes.
func HighlightHues() Hues {
	return Hues{
		Red:     Literal("oklch(0.35 0.07 25)"),
		Rose:    Literal("oklch(0.36 0.07 350)"),
		Orange:  Literal("oklch(0.38 0.06 55)"),
		Yellow:  Literal("oklch(0.42 0.06 95)"),
		Lime:    Literal("oklch(0.4 0.07 120)"),
		Green:   Literal("oklch(0.38 0.06 140)"),
		Mint:    Literal("oklch(0.4 0.05 165)"),
		Cyan:    Literal("oklch(0.4 0.05 195)"),
		Azure:   Literal("oklch(0.38 0.05 230)"),
		Blue:    Literal("oklch(0.35 0.06 255)"),
		Violet:  Literal("oklch(0.35 0.06 290)"),
		Magenta: Literal("oklch(0.36 0.06 330)"),
	}
}

// DarkBases returns the blueish dark-mode background and foreground
// ramps.
func DarkBases() Bases {
	return Bases{
		BG:  Literal("oklch(0.23 0.02 240)"),
		BG1: Literal("oklch(0.26 0.022 240)"),
		BG2: Literal("oklch(0.3 0.024 240)"),
		BG3: Literal("oklch(0.34 0.024 240)"),
		BG4: Literal("oklch(0.4 0.022 240)"),
		BG5: Literal("oklch(0.47 0.02 240)"),
		BG6: Literal("oklch(0.55 0.018 240)"),
		FG:  Literal("oklch(0.85 0.012 220)"),
		FG1: Literal("oklch(0.78 0.014 220)"),
		FG2: Literal("oklch(0.7 0.016 225)"),
		FG3: Literal("oklch(0.62 0.018 230)"),
	}
}

// LightBases returns the warm paper-toned light-mode ramps.
func LightBases() Bases {
	return Bases{
		BG:  Literal("oklch(0.97 0.015 95)"),
		BG1: Literal("oklch(0.94 0.018 95)"),
		BG2: Literal("oklch(0.9 0.02 95)"),
		BG3: Literal("oklch(0.86 0.02 95)"),
		BG4: Literal("oklch(0.8 0.018 95)"),
		BG5: Literal("oklch(0.72 0.016 95)"),
		BG6: Literal("oklch(0.64 0.014 95)"),
		FG:  Literal("oklch(0.35 0.02 240)"),
		FG1: Literal("oklch(0.42 0.02 240)"),
		FG2: Literal("oklch(0.5 0.018 235)"),
		FG3: Literal("oklch(0.58 0.016 230)"),
	}
}

// DefaultGrayscale returns the shared achromatic ramp.
func DefaultGrayscale() Grayscale {
	return Grayscale{
		W0:   Literal(Ref(0)),
		W10:  Literal(Ref(10)),
		W20:  Literal(Ref(20)),
		W30:  Literal(Ref(30)),
		W40:  Literal(Ref(40)),
		W50:  Literal(Ref(50)),
		W60:  Literal(Ref(60)),
		W70:  Literal(Ref(70)),
		W80:  Literal(Ref(80)),
		W90:  Literal(Ref(90)),
		W100: Literal(Ref(100)),
	}
}
