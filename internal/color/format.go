package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coordDigits is the number of significant digits kept when serializing
// coordinates. Five matches the precision the palette definitions are
// written with and keeps serialized values stable across re-parses.
const coordDigits = 5

// formatCoord renders a coordinate with at most coordDigits significant
// digits and no trailing zeros, so that parsing and re-serializing a
// literal like "oklch(0.5 0.1 25)" is byte-identical.
func formatCoord(v float64) string {
	r := roundSig(v, coordDigits)
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// roundSig rounds v to the given number of significant digits.
func roundSig(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	magnitude := math.Ceil(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits)-magnitude)
	return math.Round(v*scale) / scale
}

// formatCSS renders the color in its space's CSS form: rgb(R G B) for
// srgb with channels scaled to 0-255, color(display-p3 r g b) for p3,
// and oklch(L C H) for oklch. Alpha is appended as " / A" when not 1.
func formatCSS(c Color) string {
	var sb strings.Builder
	switch c.Space {
	case SpaceSRGB:
		sb.WriteString("rgb(")
		sb.WriteString(formatCoord(c.Coords[0] * 255))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[1] * 255))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[2] * 255))
	case SpaceDisplayP3:
		sb.WriteString("color(display-p3 ")
		sb.WriteString(formatCoord(c.Coords[0]))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[1]))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[2]))
	case SpaceOKLCH:
		sb.WriteString("oklch(")
		sb.WriteString(formatCoord(c.Coords[0]))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[1]))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(c.Coords[2]))
	}
	if c.Alpha < 1 {
		sb.WriteString(" / ")
		sb.WriteString(formatCoord(c.Alpha))
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatHex renders the color as a 24-bit RGB hex code, projecting
// through sRGB for non-sRGB spaces. Alpha below 1 appends a fourth
// byte pair.
func formatHex(c Color) string {
	srgb := c.Convert(SpaceSRGB).Clamp()
	r := hexChannel(srgb.Coords[0])
	g := hexChannel(srgb.Coords[1])
	b := hexChannel(srgb.Coords[2])
	if c.Alpha < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, hexChannel(c.Alpha))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
