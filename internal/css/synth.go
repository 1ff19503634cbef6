// Package css renders colours and gradients as CSS values and declaration
// snippets.
package css

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
)

// SummaryLimit is the number of characters of a value shown in summaries.
const SummaryLimit = 70

// GradientCSS renders stops as a linear or radial gradient. Stops are sorted
// by position first; angle is ignored for radial gradients.
func GradientCSS(stops []gradient.Stop, typ gradient.Type, angle int) (string, error) {
	parts, err := stopList(stops)
	if err != nil {
		return "", err
	}
	if typ == gradient.TypeRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", parts), nil
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, parts), nil
}

// TrackCSS renders stops as the left-to-right strip used by stop editors.
func TrackCSS(stops []gradient.Stop) (string, error) {
	parts, err := stopList(stops)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("linear-gradient(to right, %s)", parts), nil
}

func stopList(stops []gradient.Stop) (string, error) {
	sorted := gradient.SortStops(stops)
	parts := make([]string, 0, len(sorted))
	for _, stop := range sorted {
		value, err := stop.Value()
		if err != nil {
			return "", fmt.Errorf("stop %s: %w", stop.ID, err)
		}
		parts = append(parts, fmt.Sprintf("rgba(%d,%d,%d,%s) %d%%",
			value.R, value.G, value.B, value.AlphaString(), stop.Position))
	}
	return strings.Join(parts, ", "), nil
}

// SingleColorCSS renders a flat colour. Fully opaque colours are returned as
// given; anything else becomes rgba().
func SingleColorCSS(hex string, opacity int) (string, error) {
	value, err := color.NewColorValue(hex, opacity)
	if err != nil {
		return "", err
	}
	if opacity >= 100 {
		return hex, nil
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", value.R, value.G, value.B, value.AlphaString()), nil
}

// PropertySnippet returns the CSS declarations applying value in the given
// preview mode.
func PropertySnippet(mode PreviewMode, value string, isGradient bool) string {
	switch mode {
	case PreviewText:
		if isGradient {
			return fmt.Sprintf("background: %s;\n-webkit-background-clip: text;\n-webkit-text-fill-color: transparent;", value)
		}
		return fmt.Sprintf("color: %s;", value)
	case PreviewBorder:
		if isGradient {
			return fmt.Sprintf("border: 3px solid transparent;\nborder-image: %s 1;", value)
		}
		return fmt.Sprintf("border: 3px solid %s;", value)
	default:
		if isGradient {
			return fmt.Sprintf("background: %s;", value)
		}
		return fmt.Sprintf("background-color: %s;", value)
	}
}

// Summary shortens value to SummaryLimit characters, marking truncation
// with an ellipsis.
func Summary(value string) string {
	if utf8.RuneCountInString(value) <= SummaryLimit {
		return value
	}
	runes := []rune(value)
	return string(runes[:SummaryLimit]) + "…"
}
