package color

// FitMethod selects the algorithm used to map out-of-gamut colors into
// a target gamut.
type FitMethod string

const (
	// FitRaytrace reduces chroma toward zero at fixed lightness and hue
	// until the color crosses back inside the gamut boundary.
	FitRaytrace FitMethod = "raytrace"
	// FitClip clamps RGB channels directly.
	FitClip FitMethod = "clip"
)

// fitIterations bounds the chroma bisection. Thirty halvings of the
// [0, 0.4] chroma interval resolve the boundary well below the 5
// significant digits kept by the serializer.
const fitIterations = 30

// fit maps an OKLCH color into the given RGB gamut and returns the
// result still in OKLCH. Colors already inside the gamut are returned
// unchanged so their serialized form is preserved exactly. Alpha is
// never touched; only chroma participates in the search.
func fit(c Color, gamut Space, method FitMethod) Color {
	if c.Space != SpaceOKLCH {
		c = c.Convert(SpaceOKLCH)
	}
	if c.InGamut(gamut) {
		return c
	}

	if method == FitClip {
		return c.Convert(gamut).Clamp().Convert(SpaceOKLCH)
	}

	lightness, hue := c.Coords[0], c.Coords[2]
	lo, hi := 0.0, c.Coords[1]
	for i := 0; i < fitIterations; i++ {
		mid := (lo + hi) / 2
		probe := Color{Space: SpaceOKLCH, Coords: [3]float64{lightness, mid, hue}, Alpha: c.Alpha}
		if probe.InGamut(gamut) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Color{Space: SpaceOKLCH, Coords: [3]float64{lightness, lo, hue}, Alpha: c.Alpha}
}

// maxChromaProbe is the chroma ceiling used when probing how saturated
// a lightness/hue pair can get: 0.4 sits outside every RGB gamut, so
// the fit always lands on the boundary.
const maxChromaProbe = 0.4

// maxChroma returns the largest OKLCH chroma the gamut can render at
// the color's lightness and hue.
func maxChroma(c Color, gamut Space, method FitMethod) float64 {
	if c.Space != SpaceOKLCH {
		c = c.Convert(SpaceOKLCH)
	}
	probe := Color{
		Space:  SpaceOKLCH,
		Coords: [3]float64{c.Coords[0], maxChromaProbe, c.Coords[2]},
		Alpha:  1,
	}
	return fit(probe, gamut, method).Coords[1]
}
