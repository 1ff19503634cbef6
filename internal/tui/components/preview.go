package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromastudio/internal/css"
)

// Palette carries the surface colours a preview is drawn against.
type Palette struct {
	Screen  lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

// Preview renders the composed colour into one of the UI element templates.
type Preview struct {
	Mode    css.PreviewMode
	Fill    Fill
	Width   int
	Height  int
	Palette Palette
}

// View renders the preview.
func (p Preview) View() string {
	if p.Fill == nil || p.Width < 12 || p.Height < 6 {
		return ""
	}

	switch p.Mode {
	case css.PreviewButton:
		return p.frame(p.buttons())
	case css.PreviewText:
		return p.frame(p.typography())
	case css.PreviewBorder:
		return p.frame(p.borderCard())
	case css.PreviewCard:
		return p.frame(p.card())
	default:
		return Block(p.Fill, p.Width, p.Height)
	}
}

func (p Preview) frame(content string) string {
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(p.Palette.Screen))
}

func (p Preview) buttons() string {
	w := min(24, p.Width-4)
	primary := Label(p.Fill, "⚡ Click Me", w, lipgloss.Color("#ffffff"))
	hover := lipgloss.NewStyle().Faint(true).Render(Label(p.Fill, "Hover State", w-2, lipgloss.Color("#ffffff")))
	return lipgloss.JoinVertical(lipgloss.Center, primary, "", hover)
}

func (p Preview) typography() string {
	body := wrap("This is how your color looks on text. Pair it with a clean sans-serif for maximum impact and readability.", p.Width-6)
	lines := []string{Ink(p.Fill, "Beautiful Typography"), ""}
	for _, line := range body {
		lines = append(lines, Ink(p.Fill, line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p Preview) borderCard() string {
	w := min(34, p.Width-4)
	h := 6
	inner := w - 2
	text := lipgloss.NewStyle().Foreground(p.Palette.Text).Background(p.Palette.Surface)
	muted := lipgloss.NewStyle().Foreground(p.Palette.Muted).Background(p.Palette.Surface)
	rows := []string{
		text.Render(padCenter("◆", inner)),
		text.Bold(true).Render(padCenter("Premium Card", inner)),
		muted.Render(padCenter("Border colored with your selection", inner)),
		text.Render(strings.Repeat(" ", inner)),
	}

	// Walk the perimeter so a gradient border changes colour around the box.
	edge := func(x, y int) string {
		fg := lipgloss.Color(p.Fill.At(x, y, w, h).Hex())
		return lipgloss.NewStyle().Foreground(fg).Render(borderRune(x, y, w, h))
	}

	out := make([]string, 0, h)
	var top, bottom strings.Builder
	for x := 0; x < w; x++ {
		top.WriteString(edge(x, 0))
		bottom.WriteString(edge(x, h-1))
	}
	out = append(out, top.String())
	for i, row := range rows {
		out = append(out, edge(0, i+1)+row+edge(w-1, i+1))
	}
	out = append(out, bottom.String())
	return strings.Join(out, "\n")
}

func (p Preview) card() string {
	w := min(36, p.Width-4)
	header := Block(p.Fill, w, max(2, p.Height/4))
	body := lipgloss.NewStyle().
		Width(w).
		Padding(0, 1).
		Foreground(p.Palette.Text).
		Background(p.Palette.Surface)
	badge := lipgloss.NewStyle().
		Foreground(p.Palette.Muted).
		Background(p.Palette.Screen).
		Padding(0, 1)
	tags := lipgloss.JoinHorizontal(lipgloss.Top, badge.Render("Design"), " ", badge.Render("UI/UX"), " ", badge.Render("Color"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Card Component"),
		wrapJoin("This card header uses your selected color as the background fill.", w-2),
		tags,
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body.Render(content))
}

func borderRune(x, y, w, h int) string {
	switch {
	case x == 0 && y == 0:
		return "┏"
	case x == w-1 && y == 0:
		return "┓"
	case x == 0 && y == h-1:
		return "┗"
	case x == w-1 && y == h-1:
		return "┛"
	case y == 0 || y == h-1:
		return "━"
	default:
		return "┃"
	}
}

func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapJoin(text string, width int) string {
	return strings.Join(wrap(text, width), "\n")
}
