package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
)

// Track renders the left-to-right gradient strip with a marker row beneath
// it. The active stop is drawn with a filled marker.
type Track struct {
	Stops    []gradient.Stop
	ActiveID string
	Width    int
	Backdrop color.RGB
	Accent   lipgloss.Color
	Muted    lipgloss.Color
}

// View renders the track.
func (t Track) View() string {
	if t.Width <= 0 || len(t.Stops) == 0 {
		return ""
	}

	fill, err := NewGradientFill(t.Stops, gradient.Config{Type: gradient.TypeLinear, Angle: 90}, t.Backdrop)
	if err != nil {
		return ""
	}
	strip := Block(fill, t.Width, 1)

	markers := []rune(strings.Repeat(" ", t.Width))
	active := -1
	for _, stop := range t.Stops {
		col := MarkerColumn(stop.Position, t.Width)
		if stop.ID == t.ActiveID {
			active = col
			continue
		}
		if markers[col] == ' ' {
			markers[col] = '△'
		}
	}

	var b strings.Builder
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	for i, r := range markers {
		switch {
		case i == active:
			b.WriteString(accent.Render("▲"))
		case r != ' ':
			b.WriteString(muted.Render(string(r)))
		default:
			b.WriteRune(' ')
		}
	}

	return strip + "\n" + b.String()
}

// MarkerColumn maps a stop position onto a column of a track width cells wide.
func MarkerColumn(position, width int) int {
	if width <= 1 {
		return 0
	}
	position = color.ClampPercent(position)
	return (position*(width-1) + 50) / 100
}

// PositionForColumn is the inverse of MarkerColumn, used when a stop is added
// at a clicked column.
func PositionForColumn(col, width int) int {
	if width <= 1 {
		return 0
	}
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return (col*100 + (width-1)/2) / (width - 1)
}
