package gradient

import (
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// ColorAt returns the colour of the gradient described by stops at position,
// always as lowercase #rrggbb.
//
// Stops are scanned in ascending order and the first pair bounding position
// is used, so a position shared by several stops resolves to the earliest
// inserted one. Positions strictly outside the stop range take the nearest
// endpoint colour and a zero-width pair returns the left colour. Between
// distinct positions each RGB channel is interpolated linearly.
func ColorAt(position int, stops []Stop) (string, error) {
	if len(stops) == 0 {
		return "", chromaerrors.ErrEmptyStops
	}

	left, right := bounds(position, SortStops(stops))
	from, err := color.HexToRGB(left.Color)
	if err != nil {
		return "", err
	}
	span := right.Position - left.Position
	if span == 0 {
		return from.Hex(), nil
	}

	to, err := color.HexToRGB(right.Color)
	if err != nil {
		return "", err
	}

	t := float64(position-left.Position) / float64(span)
	return from.Lerp(to, t).Hex(), nil
}

func bounds(position int, sorted []Stop) (Stop, Stop) {
	first, last := sorted[0], sorted[len(sorted)-1]
	if position < first.Position {
		return first, first
	}
	if position > last.Position {
		return last, last
	}
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Position <= position && sorted[i+1].Position >= position {
			return sorted[i], sorted[i+1]
		}
	}
	return first, last
}
