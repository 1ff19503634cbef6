package color

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

func TestHexToRGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "six digits with hash", hex: "#6366f1", want: RGB{99, 102, 241}},
		{name: "six digits without hash", hex: "a855f7", want: RGB{168, 85, 247}},
		{name: "uppercase digits", hex: "#A855F7", want: RGB{168, 85, 247}},
		{name: "three digits doubled", hex: "#abc", want: RGB{0xaa, 0xbb, 0xcc}},
		{name: "three digits without hash", hex: "fff", want: RGB{255, 255, 255}},
		{name: "black", hex: "#000000", want: RGB{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := HexToRGB(tt.hex)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#", "#12", "#1234", "#12345g", "zzzzzz", "#6366f1ff", "+12345"} {
		_, err := HexToRGB(input)
		require.ErrorIs(t, err, chromaerrors.ErrInvalidColorFormat, "input %q", input)
	}
}

func TestHexToRGBErrorCarriesInputAndCause(t *testing.T) {
	t.Parallel()

	_, err := HexToRGB("#12345g")
	var domainErr *chromaerrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "#12345g", domainErr.Context["input"])

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)

	_, err = ParseHex("#abc")
	require.ErrorAs(t, err, &domainErr)
	require.NoError(t, domainErr.Cause)
	require.Equal(t, "#abc", domainErr.Context["input"])

	// The shared sentinel is never mutated by the clone.
	require.NoError(t, chromaerrors.ErrInvalidColorFormat.Cause)
	require.Empty(t, chromaerrors.ErrInvalidColorFormat.Context)
}

func TestRGBToHexClampsAndPads(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#6366f1", RGBToHex(99, 102, 241))
	require.Equal(t, "#000a0f", RGBToHex(0, 10, 15))
	require.Equal(t, "#ff0000", RGBToHex(300, -4, 0))
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				rgb, err := HexToRGB(RGBToHex(r, g, b))
				require.NoError(t, err)
				require.Equal(t, RGB{uint8(r), uint8(g), uint8(b)}, rgb)
			}
		}
	}

	for _, hex := range []string{"#6366F1", "#a855f7", "#00FF7f"} {
		rgb, err := HexToRGB(hex)
		require.NoError(t, err)
		require.True(t, strings.EqualFold(hex, rgb.Hex()), "expected %q to equal %q case-insensitively", rgb.Hex(), hex)
	}
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	got, err := ParseHex("  A855F7 ")
	require.NoError(t, err)
	require.Equal(t, "#a855f7", got)

	got, err = ParseHex("#6366f1")
	require.NoError(t, err)
	require.Equal(t, "#6366f1", got)

	for _, input := range []string{"abc", "#abc", "a855f", "a855f7a", "g855f7", ""} {
		_, err := ParseHex(input)
		require.ErrorIs(t, err, chromaerrors.ErrInvalidColorFormat, "input %q", input)
	}
}

func TestLerpRoundsHalfUp(t *testing.T) {
	t.Parallel()

	from := RGB{0, 0, 255}
	to := RGB{1, 255, 0}

	require.Equal(t, from, from.Lerp(to, 0))
	require.Equal(t, to, from.Lerp(to, 1))
	require.Equal(t, RGB{1, 128, 128}, from.Lerp(to, 0.5))
}

func TestColorValue(t *testing.T) {
	t.Parallel()

	v, err := NewColorValue("#6366f1", 150)
	require.NoError(t, err)
	require.Equal(t, 100, v.Opacity)
	require.True(t, v.Opaque())
	require.Equal(t, "1.00", v.AlphaString())

	v, err = NewColorValue("#6366f1", 7)
	require.NoError(t, err)
	require.Equal(t, "0.07", v.AlphaString())
	require.False(t, v.Opaque())

	_, err = NewColorValue("nope", 50)
	require.Error(t, err)
}
