package color

import (
	"math"
)

// Space identifies a color space. The RGB-family spaces double as fit
// gamuts; oklch is the canonical intermediate space and is unbounded.
type Space string

const (
	SpaceSRGB      Space = "srgb"
	SpaceDisplayP3 Space = "display-p3"
	SpaceOKLCH     Space = "oklch"
)

// IsRGB reports whether the space stores colors as RGB channels in [0, 1].
func (s Space) IsRGB() bool {
	return s == SpaceSRGB || s == SpaceDisplayP3
}

// Color is a parsed color in a specific space. Coords are space-native:
// RGB channels in [0, 1] for srgb and display-p3, or lightness, chroma,
// hue (degrees) for oklch. Alpha is always in [0, 1].
type Color struct {
	Space  Space
	Coords [3]float64
	Alpha  float64
}

// inGamutEpsilon absorbs float noise when checking channel bounds.
const inGamutEpsilon = 1e-7

// Convert returns the color expressed in the target space. Conversions
// route through XYZ-D65 so any pair of supported spaces composes.
func (c Color) Convert(target Space) Color {
	if c.Space == target {
		return c
	}
	x, y, z := c.toXYZ()
	out := Color{Space: target, Alpha: c.Alpha}
	switch target {
	case SpaceSRGB:
		r, g, b := xyzToLinearSRGB(x, y, z)
		out.Coords = [3]float64{gammaEncode(r), gammaEncode(g), gammaEncode(b)}
	case SpaceDisplayP3:
		r, g, b := xyzToLinearP3(x, y, z)
		out.Coords = [3]float64{gammaEncode(r), gammaEncode(g), gammaEncode(b)}
	case SpaceOKLCH:
		l, ch, h := xyzToOKLCH(x, y, z)
		out.Coords = [3]float64{l, ch, h}
	}
	return out
}

// InGamut reports whether the color, converted to the given RGB gamut,
// has all channels inside [0, 1].
func (c Color) InGamut(gamut Space) bool {
	conv := c.Convert(gamut)
	for _, v := range conv.Coords {
		if v < -inGamutEpsilon || v > 1+inGamutEpsilon {
			return false
		}
	}
	return true
}

// Clamp returns the color with RGB channels clipped to [0, 1]. It is a
// no-op for non-RGB spaces.
func (c Color) Clamp() Color {
	if !c.Space.IsRGB() {
		return c
	}
	for i, v := range c.Coords {
		c.Coords[i] = math.Min(1, math.Max(0, v))
	}
	return c
}

func (c Color) toXYZ() (float64, float64, float64) {
	switch c.Space {
	case SpaceSRGB:
		r := gammaDecode(c.Coords[0])
		g := gammaDecode(c.Coords[1])
		b := gammaDecode(c.Coords[2])
		return linearSRGBToXYZ(r, g, b)
	case SpaceDisplayP3:
		r := gammaDecode(c.Coords[0])
		g := gammaDecode(c.Coords[1])
		b := gammaDecode(c.Coords[2])
		return linearP3ToXYZ(r, g, b)
	default:
		return oklchToXYZ(c.Coords[0], c.Coords[1], c.Coords[2])
	}
}

// gammaDecode applies the sRGB transfer curve (shared by display-p3),
// mapping an encoded channel to linear light. Mirrored for negative
// inputs so out-of-gamut channels stay continuous.
func gammaDecode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1.0
		v = -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

// gammaEncode is the inverse of gammaDecode.
func gammaEncode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1.0
		v = -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

// Matrices below are the CSS Color 4 reference values for D65 white.

func linearSRGBToXYZ(r, g, b float64) (float64, float64, float64) {
	x := 0.41239079926595934*r + 0.357584339383878*g + 0.1804807884018343*b
	y := 0.21263900587151027*r + 0.715168678767756*g + 0.07219231536073371*b
	z := 0.01933081871559182*r + 0.11919477979462598*g + 0.9505321522496607*b
	return x, y, z
}

func xyzToLinearSRGB(x, y, z float64) (float64, float64, float64) {
	r := 3.2409699419045226*x - 1.537383177570094*y - 0.4986107602930034*z
	g := -0.9692436362808796*x + 1.8759675015077202*y + 0.04155505740717559*z
	b := 0.05563007969699366*x - 0.20397695888897652*y + 1.0569715142428786*z
	return r, g, b
}

func linearP3ToXYZ(r, g, b float64) (float64, float64, float64) {
	x := 0.4865709486482162*r + 0.26566769316909306*g + 0.19821728523436247*b
	y := 0.2289745640697488*r + 0.6917385218365064*g + 0.079286914093745*b
	z := 0.0*r + 0.04511338185890264*g + 1.043944368900976*b
	return x, y, z
}

func xyzToLinearP3(x, y, z float64) (float64, float64, float64) {
	r := 2.493496911941425*x - 0.9313836179191239*y - 0.40271078445071684*z
	g := -0.8294889695615747*x + 1.7626640603183463*y + 0.023624685841943577*z
	b := 0.03584583024378447*x - 0.07617238926804182*y + 0.9568845240076872*z
	return r, g, b
}

func xyzToOKLCH(x, y, z float64) (float64, float64, float64) {
	l := 0.8190224432164319*x + 0.3619062562801221*y - 0.12887378261216414*z
	m := 0.0329836671980271*x + 0.9292868468965546*y + 0.03614466816999844*z
	s := 0.048177199566046255*x + 0.26423952494422764*y + 0.6335478258136937*z

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	lab0 := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	lab1 := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	lab2 := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	chroma := math.Sqrt(lab1*lab1 + lab2*lab2)
	hue := 0.0
	if chroma > 0 {
		hue = math.Atan2(lab2, lab1) * 180 / math.Pi
		if hue < 0 {
			hue += 360
		}
	}
	return lab0, chroma, hue
}

func oklchToXYZ(lightness, chroma, hue float64) (float64, float64, float64) {
	rad := hue * math.Pi / 180
	a := chroma * math.Cos(rad)
	b := chroma * math.Sin(rad)

	lp := lightness + 0.3963377774*a + 0.2158037573*b
	mp := lightness - 0.1055613458*a - 0.0638541728*b
	sp := lightness - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	x := 1.2268798733741557*l - 0.5578149965554813*m + 0.28139105017721583*s
	y := -0.04057576262431372*l + 1.1122868293970594*m - 0.07171106666151701*s
	z := -0.07637294974672142*l - 0.4214933239627914*m + 1.5869240244272418*s
	return x, y, z
}
