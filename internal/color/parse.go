package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"hadalized/pkg/errors"
)

// parseLiteral parses a CSS-like color literal into a Color. Supported
// forms: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba() with comma or
// space separated channels, oklch(L C H [/ A]), and color(srgb ...) or
// color(display-p3 ...). Failures return a ParseError carrying the
// offending literal.
func parseLiteral(raw string) (Color, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Color{}, errors.NewParseError(raw, fmt.Errorf("empty color literal"))
	}

	if s[0] == '#' {
		c, err := parseHex(s)
		if err != nil {
			return Color{}, errors.NewParseError(raw, err)
		}
		return c, nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || s[len(s)-1] != ')' {
		return Color{}, errors.NewParseError(raw, fmt.Errorf("unrecognized color syntax"))
	}
	name := strings.ToLower(strings.TrimSpace(s[:open]))
	body := s[open+1 : len(s)-1]

	var (
		c   Color
		err error
	)
	switch name {
	case "rgb", "rgba":
		c, err = parseRGB(body)
	case "oklch":
		c, err = parseOKLCH(body)
	case "color":
		c, err = parseColorFunc(body)
	default:
		err = fmt.Errorf("unsupported color function %q", name)
	}
	if err != nil {
		return Color{}, errors.NewParseError(raw, err)
	}
	return c, nil
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("hex code must have 3, 4, 6, or 8 digits")
	}

	channels := make([]float64, 0, 4)
	for i := 0; i < len(digits); i += 2 {
		v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex digits %q", digits[i:i+2])
		}
		channels = append(channels, float64(v)/255)
	}

	c := Color{
		Space:  SpaceSRGB,
		Coords: [3]float64{channels[0], channels[1], channels[2]},
		Alpha:  1,
	}
	if len(channels) == 4 {
		c.Alpha = channels[3]
	}
	return c, nil
}

func parseRGB(body string) (Color, error) {
	args, alpha, hasAlpha := splitArgs(body)
	if len(args) == 4 && !hasAlpha {
		alpha, hasAlpha = args[3], true
		args = args[:3]
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("rgb() expects 3 channels, got %d", len(args))
	}

	var coords [3]float64
	for i, arg := range args {
		v, pct, err := parseNumber(arg)
		if err != nil {
			return Color{}, err
		}
		if pct {
			v = v * 255 / 100
		}
		coords[i] = clamp01(v / 255)
	}

	c := Color{Space: SpaceSRGB, Coords: coords, Alpha: 1}
	if hasAlpha {
		a, err := parseAlpha(alpha)
		if err != nil {
			return Color{}, err
		}
		c.Alpha = a
	}
	return c, nil
}

func parseOKLCH(body string) (Color, error) {
	args, alpha, hasAlpha := splitArgs(body)
	if len(args) != 3 {
		return Color{}, fmt.Errorf("oklch() expects 3 coordinates, got %d", len(args))
	}

	lightness, pct, err := parseNumber(args[0])
	if err != nil {
		return Color{}, err
	}
	if pct {
		lightness /= 100
	}
	lightness = clamp01(lightness)

	chroma, pct, err := parseNumber(args[1])
	if err != nil {
		return Color{}, err
	}
	if pct {
		// 100% chroma corresponds to 0.4 per the CSS oklch() definition.
		chroma = chroma * 0.4 / 100
	}
	if chroma < 0 {
		chroma = 0
	}

	hueArg := strings.TrimSuffix(strings.ToLower(args[2]), "deg")
	hue, _, err := parseNumber(hueArg)
	if err != nil {
		return Color{}, err
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	c := Color{Space: SpaceOKLCH, Coords: [3]float64{lightness, chroma, hue}, Alpha: 1}
	if hasAlpha {
		a, err := parseAlpha(alpha)
		if err != nil {
			return Color{}, err
		}
		c.Alpha = a
	}
	return c, nil
}

func parseColorFunc(body string) (Color, error) {
	args, alpha, hasAlpha := splitArgs(body)
	if len(args) != 4 {
		return Color{}, fmt.Errorf("color() expects a space and 3 channels, got %d arguments", len(args))
	}

	var space Space
	switch Space(strings.ToLower(args[0])) {
	case SpaceSRGB:
		space = SpaceSRGB
	case SpaceDisplayP3:
		space = SpaceDisplayP3
	default:
		return Color{}, fmt.Errorf("unsupported color space %q", args[0])
	}

	var coords [3]float64
	for i, arg := range args[1:] {
		v, pct, err := parseNumber(arg)
		if err != nil {
			return Color{}, err
		}
		if pct {
			v /= 100
		}
		coords[i] = v
	}

	c := Color{Space: space, Coords: coords, Alpha: 1}
	if hasAlpha {
		a, err := parseAlpha(alpha)
		if err != nil {
			return Color{}, err
		}
		c.Alpha = a
	}
	return c, nil
}

// splitArgs splits a function body into arguments, accepting both the
// legacy comma syntax and the modern space syntax, with an optional
// "/ alpha" suffix.
func splitArgs(body string) (args []string, alpha string, hasAlpha bool) {
	if i := strings.IndexByte(body, '/'); i >= 0 {
		alpha = strings.TrimSpace(body[i+1:])
		body = body[:i]
		hasAlpha = true
	}
	body = strings.ReplaceAll(body, ",", " ")
	return strings.Fields(body), alpha, hasAlpha
}

func parseNumber(tok string) (float64, bool, error) {
	pct := strings.HasSuffix(tok, "%")
	if pct {
		tok = strings.TrimSuffix(tok, "%")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", tok)
	}
	return v, pct, nil
}

func parseAlpha(tok string) (float64, error) {
	v, pct, err := parseNumber(tok)
	if err != nil {
		return 0, err
	}
	if pct {
		v /= 100
	}
	return clamp01(v), nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
