package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/pkg/errors"
)

func TestParseOKLCHLiteralRoundTrips(t *testing.T) {
	t.Parallel()

	val, err := Parse("oklch(0.5 0.1 25)", SpaceSRGB)
	require.NoError(t, err)
	require.Equal(t, "oklch(0.5 0.1 25)", val.RawOKLCH)
	require.Equal(t, "oklch(0.5 0.1 25)", val.OKLCH)
	require.True(t, val.IsInGamut)
	require.True(t, strings.HasPrefix(val.Hex, "#"))
	require.True(t, strings.HasPrefix(val.CSS, "rgb("))
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	literals := []string{
		"oklch(0.6 0.5 25)",
		"oklch(0.75 0.13 95)",
		"#0a1d29",
		"rgb(0.5 0.5 0.5)",
		"color(display-p3 0.8 0.2 0.1)",
	}
	for _, literal := range literals {
		first, err := Parse(literal, SpaceSRGB)
		require.NoError(t, err)
		second, err := Parse(literal, SpaceSRGB)
		require.NoError(t, err)
		require.Equal(t, first, second, "literal %s", literal)
	}
}

func TestParseGamutCheck(t *testing.T) {
	t.Parallel()

	cases := []struct {
		literal string
		gamut   Space
		inGamut bool
	}{
		{"oklch(0.6 0.5 25)", SpaceSRGB, false},
		{"oklch(0.6 0.4 25)", SpaceSRGB, false},
		{"oklch(0.6 0.1 25)", SpaceSRGB, true},
		{"#ff0000", SpaceSRGB, true},
		{"color(display-p3 1 0 0)", SpaceSRGB, false},
		{"color(display-p3 1 0 0)", SpaceDisplayP3, true},
	}

	for _, tc := range cases {
		val, err := Parse(tc.literal, tc.gamut)
		require.NoError(t, err, tc.literal)
		require.Equal(t, tc.inGamut, val.IsInGamut, "literal %s in %s", tc.literal, tc.gamut)
		if tc.inGamut {
			require.Equal(t, val.RawOKLCH, val.OKLCH, "in-gamut literal %s must not be refit", tc.literal)
		} else {
			require.NotEqual(t, val.RawOKLCH, val.OKLCH, "out-of-gamut literal %s must be refit", tc.literal)
		}
	}
}

func TestParseRejectsMalformedLiterals(t *testing.T) {
	t.Parallel()

	cases := []string{
		"bad color",
		"",
		"#12345",
		"#gggggg",
		"rgb(1 2)",
		"oklch(0.5 0.1)",
		"color(rec2020 0 0 0)",
		"hsl(120 50% 50%)",
	}

	for _, literal := range cases {
		_, err := Parse(literal, SpaceSRGB)
		require.Error(t, err, "literal %q", literal)
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr, "literal %q", literal)
	}
}

func TestParseRejectsNonRGBGamut(t *testing.T) {
	t.Parallel()

	_, err := Parse("#ffffff", SpaceOKLCH)
	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseHexForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		literal string
		hex     string
	}{
		{"#fff", "#ffffff"},
		{"#000", "#000000"},
		{"#0a1D29", "#0a1d29"},
		{"#11223344", "#11223344"},
		{"rgb(255 0 0)", "#ff0000"},
		{"rgb(100% 0% 0%)", "#ff0000"},
		{"rgba(255, 0, 0, 0.5)", "#ff000080"},
	}

	for _, tc := range cases {
		val, err := Parse(tc.literal, SpaceSRGB)
		require.NoError(t, err, tc.literal)
		require.Equal(t, tc.hex, val.Hex, "literal %s", tc.literal)
	}
}

func TestParseAlphaPassesThroughFit(t *testing.T) {
	t.Parallel()

	val, err := Parse("oklch(0.6 0.5 25 / 0.5)", SpaceSRGB)
	require.NoError(t, err)
	require.False(t, val.IsInGamut)
	require.Contains(t, val.OKLCH, " / 0.5")
	require.Contains(t, val.CSS, " / 0.5")
	require.Len(t, val.Hex, 9)
}

func TestParseAchromatic(t *testing.T) {
	t.Parallel()

	val, err := Parse("oklch(0.5 0 0)", SpaceSRGB)
	require.NoError(t, err)
	require.True(t, val.IsInGamut)
	require.Equal(t, "oklch(0.5 0 0)", val.OKLCH)

	gray, err := Parse("#808080", SpaceSRGB)
	require.NoError(t, err)
	require.True(t, gray.IsInGamut)
	require.Equal(t, "#808080", gray.Hex)
}

func TestMaxChromaBoundsTheGamut(t *testing.T) {
	t.Parallel()

	val, err := Parse("oklch(0.6 0.5 25)", SpaceSRGB)
	require.NoError(t, err)
	require.Greater(t, val.MaxOKLCHChroma, 0.0)
	require.Less(t, val.MaxOKLCHChroma, 0.5)

	p3, err := Parse("oklch(0.6 0.5 25)", SpaceDisplayP3)
	require.NoError(t, err)
	require.Greater(t, p3.MaxOKLCHChroma, val.MaxOKLCHChroma, "display-p3 is wider than srgb")
}

func TestParseDisplayP3Native(t *testing.T) {
	t.Parallel()

	val, err := Parse("color(display-p3 0.5 0.2 0.1)", SpaceDisplayP3)
	require.NoError(t, err)
	require.True(t, val.IsInGamut)
	require.True(t, strings.HasPrefix(val.CSS, "color(display-p3 "))
	require.True(t, strings.HasPrefix(val.Hex, "#"))
}

func TestSRGBOKLCHConversionsInvert(t *testing.T) {
	t.Parallel()

	cases := [][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
		{0.25, 0.5, 0.75},
		{0.04, 0.04, 0.04},
	}

	for _, coords := range cases {
		orig := Color{Space: SpaceSRGB, Coords: coords, Alpha: 1}
		back := orig.Convert(SpaceOKLCH).Convert(SpaceSRGB)
		for i := range coords {
			require.InDelta(t, orig.Coords[i], back.Coords[i], 1e-9)
		}
	}
}

func TestFormatCoordSignificantDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0.1, "0.1"},
		{25, "25"},
		{255, "255"},
		{127.5, "127.5"},
		{0.123456789, "0.12346"},
		{0.999999, "1"},
		{0, "0"},
		{1, "1"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, formatCoord(tc.in), "input %v", tc.in)
	}
}

func TestRefLiteral(t *testing.T) {
	t.Parallel()

	require.Equal(t, "oklch(0.13 0 0)", Ref(13))
	require.Equal(t, "oklch(1 0 0)", Ref(100))
	require.Equal(t, "oklch(0 0 0)", Ref(0))
}
