// Package gradient holds the ordered set of colour stops that make up a CSS
// gradient and the interpolation rules between them.
package gradient

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// Stop is a colour anchor at a percentage position along the gradient axis.
type Stop struct {
	ID       string
	Color    string
	Position int
	Opacity  int

	// seq records insertion order and breaks position ties.
	seq int
}

// Value decodes the stop colour together with its opacity.
func (s Stop) Value() (color.ColorValue, error) {
	return color.NewColorValue(s.Color, s.Opacity)
}

// Type selects the gradient geometry.
type Type string

const (
	TypeLinear Type = "linear"
	TypeRadial Type = "radial"
)

// ParseType converts user input into a Type.
func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeLinear:
		return TypeLinear, nil
	case TypeRadial:
		return TypeRadial, nil
	default:
		return "", chromaerrors.ErrInvalidValue.WithContext(map[string]interface{}{
			"field":    "gradient type",
			"value":    raw,
			"expected": fmt.Sprintf("%s|%s", TypeLinear, TypeRadial),
		})
	}
}

// Config describes geometry shared by all stops.
type Config struct {
	Type  Type
	Angle int
}

// DefaultConfig returns a 90 degree linear gradient.
func DefaultConfig() Config {
	return Config{Type: TypeLinear, Angle: 90}
}

// NormalizeAngle wraps degrees into [0,360).
func NormalizeAngle(deg int) int {
	return ((deg % 360) + 360) % 360
}

// SortStops returns a copy of stops ordered by ascending position. Stops
// sharing a position keep their insertion order.
func SortStops(stops []Stop) []Stop {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sortInPlace(sorted)
	return sorted
}

func sortInPlace(stops []Stop) {
	sort.SliceStable(stops, func(i, j int) bool {
		if stops[i].Position != stops[j].Position {
			return stops[i].Position < stops[j].Position
		}
		return stops[i].seq < stops[j].seq
	})
}
