package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
	"github.com/alexisbeaulieu97/chromastudio/internal/tui/components"
)

const (
	marginLeft = 2

	// trackRow is the screen row of the gradient strip; mouse clicks on it
	// or on the marker row below add a stop.
	trackRow = 3
)

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.fullscreen {
		return m.fullscreenView()
	}

	rows := []string{
		m.titleBar(),
		m.controls(),
		"",
		m.strip(),
	}

	header := m.styles.Section.Render(m.last.output.Label)
	snippet := m.styles.Panel.Width(m.trackWidth() - 2).Render(m.styles.Code.Render(m.last.output.Snippet))
	footer := []string{
		m.styles.Muted.Render("CSS ") + m.last.output.Summary,
		m.statusLine(),
		m.help.View(m.keys),
	}

	used := len(rows) + 1 + lipgloss.Height(header) + lipgloss.Height(snippet) + len(footer)
	if m.editing != fieldNone {
		used++
	}
	preview := components.Preview{
		Mode:    m.session.PreviewMode(),
		Fill:    m.fill(),
		Width:   m.trackWidth(),
		Height:  min(16, m.height-used),
		Palette: m.styles.Palette,
	}.View()

	body := append(rows, header)
	if preview != "" {
		body = append(body, preview)
	}
	body = append(body, snippet)
	if m.editing != fieldNone {
		body = append(body, m.input.View())
	}
	body = append(body, footer...)

	return lipgloss.NewStyle().PaddingLeft(marginLeft).Render(strings.Join(body, "\n"))
}

func (m Model) fullscreenView() string {
	preview := components.Preview{
		Mode:    m.session.PreviewMode(),
		Fill:    m.fill(),
		Width:   m.width,
		Height:  m.height - 1,
		Palette: m.styles.Palette,
	}.View()
	hint := m.styles.Muted.Render(fmt.Sprintf("%s · esc to exit fullscreen", m.last.output.Label))
	return lipgloss.JoinVertical(lipgloss.Left, preview, hint)
}

func (m Model) titleBar() string {
	chip := func(label string, on bool) string {
		if on {
			return m.styles.ChipOn.Render(label)
		}
		return m.styles.Chip.Render(label)
	}
	gradientMode := m.session.Mode() == session.ModeGradient
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("ChromaStudio"), "  ",
		chip("Single", !gradientMode),
		chip("Gradient", gradientMode), "  ",
		m.styles.Muted.Render(string(m.theme)),
	)
}

func (m Model) controls() string {
	if m.session.Mode() != session.ModeGradient {
		single := m.session.Single()
		return fmt.Sprintf("%s · opacity %d%%", single.Color, single.Opacity)
	}

	cfg := m.session.GradientConfig()
	geometry := string(cfg.Type)
	if cfg.Type == gradient.TypeLinear {
		geometry = fmt.Sprintf("%s %d°", cfg.Type, cfg.Angle)
	}
	stop, ok := m.session.ActiveStop()
	if !ok {
		return geometry
	}
	return fmt.Sprintf("%s · stop %d/%d · %s · pos %d%% · opacity %d%%",
		geometry, m.session.ActiveIndex(), len(m.session.Stops()), stop.Color, stop.Position, stop.Opacity)
}

// strip renders the two rows at trackRow: the gradient track with its markers
// or, in single mode, a swatch of the flat colour.
func (m Model) strip() string {
	if m.session.Mode() != session.ModeGradient {
		return components.Block(m.fill(), m.trackWidth(), 2)
	}
	stop, _ := m.session.ActiveStop()
	return components.Track{
		Stops:    m.session.Stops(),
		ActiveID: stop.ID,
		Width:    m.trackWidth(),
		Backdrop: m.styles.Backdrop,
		Accent:   m.styles.Accent,
		Muted:    m.styles.MutedFg,
	}.View()
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render(m.status)
	}
	return m.styles.Status.Render(m.status)
}

func (m Model) fill() components.Fill {
	if m.session.Mode() == session.ModeGradient {
		fill, err := components.NewGradientFill(m.session.Stops(), m.session.GradientConfig(), m.styles.Backdrop)
		if err != nil {
			return nil
		}
		return fill
	}
	single := m.session.Single()
	fill, err := components.NewSolidFill(single.Color, single.Opacity, m.styles.Backdrop)
	if err != nil {
		return nil
	}
	return fill
}

func (m Model) trackWidth() int {
	return max(12, m.width-2*marginLeft)
}
