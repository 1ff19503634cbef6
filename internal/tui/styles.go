package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromastudio/internal/config"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	"github.com/alexisbeaulieu97/chromastudio/internal/tui/components"
)

// Styles holds every style the editor renders with for one theme.
type Styles struct {
	Palette  components.Palette
	Backdrop color.RGB

	Title   lipgloss.Style
	Section lipgloss.Style
	Chip    lipgloss.Style
	ChipOn  lipgloss.Style
	Muted   lipgloss.Style
	Code    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Panel   lipgloss.Style
	Accent  lipgloss.Color
	MutedFg lipgloss.Color
}

// StylesFor returns the style set for theme.
func StylesFor(theme config.Theme) Styles {
	if theme == config.ThemeLight {
		return buildStyles(
			components.Palette{
				Screen:  lipgloss.Color("#eef0f6"),
				Surface: lipgloss.Color("#ffffff"),
				Text:    lipgloss.Color("#1c1d2b"),
				Muted:   lipgloss.Color("#6b6f85"),
			},
			color.RGB{R: 0xee, G: 0xf0, B: 0xf6},
			lipgloss.Color("#4f46e5"),
		)
	}
	return buildStyles(
		components.Palette{
			Screen:  lipgloss.Color("#141520"),
			Surface: lipgloss.Color("#1e1f2e"),
			Text:    lipgloss.Color("#e4e4f0"),
			Muted:   lipgloss.Color("#8a8aa0"),
		},
		color.RGB{R: 0x14, G: 0x15, B: 0x20},
		lipgloss.Color("#818cf8"),
	)
}

func buildStyles(p components.Palette, backdrop color.RGB, accent lipgloss.Color) Styles {
	return Styles{
		Palette:  p,
		Backdrop: backdrop,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(p.Text).MarginTop(1),
		Chip:     lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		ChipOn:   lipgloss.NewStyle().Bold(true).Foreground(p.Surface).Background(accent).Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Code:     lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		Panel:    lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 1),
		Accent:   accent,
		MutedFg:  p.Muted,
	}
}
