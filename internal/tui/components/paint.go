package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
)

// Block paints a w×h rectangle with fill.
func Block(fill Fill, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.WriteString(cell(fill.At(x, y, w, h)).Render(" "))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// Label paints text on a single row whose background follows fill.
func Label(fill Fill, text string, w int, fg lipgloss.Color) string {
	runes := []rune(padCenter(text, w))
	var b strings.Builder
	for x, r := range runes {
		b.WriteString(cell(fill.At(x, 0, len(runes), 1)).Foreground(fg).Bold(true).Render(string(r)))
	}
	return b.String()
}

// Ink paints each rune of text in the colour fill yields for its column, on
// the terminal background.
func Ink(fill Fill, text string) string {
	runes := []rune(text)
	var b strings.Builder
	for x, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		fg := lipgloss.Color(fill.At(x, 0, len(runes), 1).Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(string(r)))
	}
	return b.String()
}

func cell(c color.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
}

func padCenter(text string, w int) string {
	n := len([]rune(text))
	if n >= w {
		return string([]rune(text)[:w])
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", w-n-left)
}
