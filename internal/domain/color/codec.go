// Package color converts between hex notation and RGB channel triples.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// hexInputPattern is the gate applied to user-typed hex values.
var hexInputPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// RGB is a colour expressed as three 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex renders the colour as lowercase #rrggbb.
func (c RGB) Hex() string {
	return RGBToHex(int(c.R), int(c.G), int(c.B))
}

// Lerp blends c towards other by t in [0,1], rounding each channel half up.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*t
	return uint8(ClampChannel(roundHalfUp(v)))
}

// roundHalfUp rounds .5 towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// HexToRGB decodes a 3 or 6 digit hex colour with or without a leading '#'.
// Three digit colours are channel doubled ("abc" -> "aabbcc").
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return RGB{}, invalidColor(hex, fmt.Errorf("expected 3 or 6 hex digits, got %d", len(digits)))
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, invalidColor(hex, err)
	}

	return RGB{
		R: uint8(value >> 16 & 0xff),
		G: uint8(value >> 8 & 0xff),
		B: uint8(value & 0xff),
	}, nil
}

// RGBToHex clamps each channel to [0,255] and renders lowercase #rrggbb.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", ClampChannel(r), ClampChannel(g), ClampChannel(b))
}

// ParseHex validates raw user input as exactly six hex digits, optionally
// prefixed with '#', and returns the canonical lowercase #rrggbb form.
func ParseHex(raw string) (string, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if !hexInputPattern.MatchString(digits) {
		return "", invalidColor(raw, nil)
	}
	return "#" + strings.ToLower(digits), nil
}

// ClampChannel limits v to a valid 8-bit channel.
func ClampChannel(v int) int {
	return clamp(v, 0, 255)
}

// ClampPercent limits v to [0,100].
func ClampPercent(v int) int {
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func invalidColor(input string, cause error) error {
	err := chromaerrors.ErrInvalidColorFormat.WithContext(map[string]interface{}{"input": input})
	if cause != nil {
		return err.WithCause(cause)
	}
	return err
}
