package color

import (
	"fmt"

	"hadalized/pkg/errors"
)

// ColorValue is the fully derived record for one color literal: the
// literal itself plus its canonical representations fit to a target
// gamut. Values are immutable once built; every field is recomputable
// byte-for-byte from (Raw, Gamut, fit method), which is what makes
// them safe to fingerprint for the build cache.
type ColorValue struct {
	// Raw is the original literal, e.g. "oklch(0.6 0.2 25)" or "#010203".
	Raw string `json:"raw"`
	// Gamut is the target space the color was fit to.
	Gamut Space `json:"gamut"`
	// RawOKLCH is the literal converted to OKLCH without fitting.
	RawOKLCH string `json:"raw_oklch"`
	// OKLCH is the OKLCH value after fitting into Gamut.
	OKLCH string `json:"oklch"`
	// CSS is the fitted color in the gamut's native CSS form.
	CSS string `json:"css"`
	// Hex is the fitted color as a 24-bit RGB hex code (32-bit with
	// alpha), projected through sRGB.
	Hex string `json:"hex"`
	// IsInGamut reports whether the literal was inside Gamut before
	// any fitting.
	IsInGamut bool `json:"is_in_gamut"`
	// MaxOKLCHChroma is the largest chroma Gamut can render at the
	// literal's lightness and hue.
	MaxOKLCHChroma float64 `json:"max_oklch_chroma"`
}

// Parser turns color literals into ColorValues for a fixed gamut and
// fit method. The zero value is not usable; construct with NewParser.
type Parser struct {
	Gamut  Space
	Method FitMethod
}

// NewParser returns a Parser targeting the given gamut with the
// default raytrace fit.
func NewParser(gamut Space) Parser {
	return Parser{Gamut: gamut, Method: FitRaytrace}
}

// Parse derives a ColorValue from a literal. The literal is parsed
// with the CSS-like grammar, converted to OKLCH, fit into the parser's
// gamut, and serialized into each canonical representation.
func (p Parser) Parse(literal string) (*ColorValue, error) {
	if !p.Gamut.IsRGB() {
		return nil, errors.NewValidationError("gamut", fmt.Sprintf("unsupported fit gamut %q", p.Gamut), nil)
	}
	method := p.Method
	if method == "" {
		method = FitRaytrace
	}

	parsed, err := parseLiteral(literal)
	if err != nil {
		return nil, err
	}

	rawOKLCH := parsed.Convert(SpaceOKLCH)
	fitted := fit(rawOKLCH, p.Gamut, method)
	native := fitted.Convert(p.Gamut).Clamp()

	return &ColorValue{
		Raw:            literal,
		Gamut:          p.Gamut,
		RawOKLCH:       formatCSS(rawOKLCH),
		OKLCH:          formatCSS(fitted),
		CSS:            formatCSS(native),
		Hex:            formatHex(native),
		IsInGamut:      rawOKLCH.InGamut(p.Gamut),
		MaxOKLCHChroma: maxChroma(rawOKLCH, p.Gamut, method),
	}, nil
}

// Parse is a convenience wrapper deriving a ColorValue with the
// default raytrace fit.
func Parse(literal string, gamut Space) (*ColorValue, error) {
	return NewParser(gamut).Parse(literal)
}
