package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
	"github.com/alexisbeaulieu97/chromastudio/internal/tui/components"
)

const (
	angleStep    = 15
	opacityStep  = 5
	positionStep = 1
)

// Update handles bubbletea messages and mutates the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.fullscreen {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Fullscreen):
			m.fullscreen = false
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	gradientMode := m.session.Mode() == session.ModeGradient

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Escape):
		m.status = ""
	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = true
	case key.Matches(msg, m.keys.Mode):
		m.apply(m.session.ToggleMode(), "")
	case key.Matches(msg, m.keys.Preview):
		next := m.session.PreviewMode().Next()
		m.apply(m.session.SetPreviewMode(next), next.Label())
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Copy):
		m.copySnippet()
	case key.Matches(msg, m.keys.Hex):
		return m.openInput(fieldHex, m.currentHex()), textinput.Blink
	case key.Matches(msg, m.keys.Opacity):
		return m.openInput(fieldOpacity, strconv.Itoa(m.currentOpacity())), textinput.Blink
	case key.Matches(msg, m.keys.OpacityDown):
		m.nudgeOpacity(-opacityStep)
	case key.Matches(msg, m.keys.OpacityUp):
		m.nudgeOpacity(opacityStep)
	case !gradientMode:
		// Remaining bindings only apply to gradients.
	case key.Matches(msg, m.keys.Type):
		typ := gradient.TypeRadial
		if m.session.GradientConfig().Type == gradient.TypeRadial {
			typ = gradient.TypeLinear
		}
		m.apply(m.session.SetGradientType(typ), string(typ))
	case key.Matches(msg, m.keys.Angle):
		return m.openInput(fieldAngle, strconv.Itoa(m.session.GradientConfig().Angle)), textinput.Blink
	case key.Matches(msg, m.keys.AngleDown):
		m.apply(m.session.SetAngle(m.session.GradientConfig().Angle-angleStep), "")
	case key.Matches(msg, m.keys.AngleUp):
		m.apply(m.session.SetAngle(m.session.GradientConfig().Angle+angleStep), "")
	case key.Matches(msg, m.keys.PrevStop):
		m.apply(m.session.CycleStop(-1), "")
	case key.Matches(msg, m.keys.NextStop):
		m.apply(m.session.CycleStop(1), "")
	case key.Matches(msg, m.keys.PosLeft):
		m.nudgePosition(-positionStep)
	case key.Matches(msg, m.keys.PosRight):
		m.nudgePosition(positionStep)
	case key.Matches(msg, m.keys.AddStop):
		return m.openInput(fieldNewStop, strconv.Itoa(m.suggestedStop())), textinput.Blink
	case key.Matches(msg, m.keys.RemoveStop):
		m.apply(m.session.RemoveActiveStop(), "stop removed")
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	case tea.KeyEnter:
		m.submitInput(strings.TrimSpace(m.input.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openInput(f field, value string) Model {
	m.editing = f
	m.input.Prompt = f.prompt()
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m *Model) closeInput() {
	m.editing = fieldNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) submitInput(raw string) {
	f := m.editing
	switch f {
	case fieldHex:
		var err error
		if m.session.Mode() == session.ModeGradient {
			err = m.session.SetActiveStopHex(raw)
		} else {
			err = m.session.SetSingleHex(raw)
		}
		if err != nil {
			// Keep the prompt open so the value can be corrected.
			m.setError(err)
			return
		}
		m.setStatus("color set to " + m.currentHex())
	case fieldAngle, fieldOpacity, fieldNewStop:
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(raw, "°"), "%"))
		if err != nil {
			m.setError(fmt.Errorf("%q is not a number", raw))
			return
		}
		switch f {
		case fieldAngle:
			m.apply(m.session.SetAngle(n), "")
		case fieldOpacity:
			m.setOpacity(n)
		case fieldNewStop:
			m.addStop(n)
		}
	}
	m.closeInput()
}

func (m *Model) handleMouseTrack(col int) {
	width := m.trackWidth()
	if col < 0 || col >= width {
		return
	}
	m.addStop(components.PositionForColumn(col, width))
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.fullscreen || m.editing != fieldNone || m.session.Mode() != session.ModeGradient {
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	if msg.Y != trackRow && msg.Y != trackRow+1 {
		return m
	}
	m.handleMouseTrack(msg.X - marginLeft)
	return m
}

func (m *Model) addStop(position int) {
	id, err := m.session.AddStopAt(position)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("added %s at %d%%", id, m.activePosition()))
}

func (m *Model) nudgeOpacity(delta int) {
	m.setOpacity(m.currentOpacity() + delta)
}

func (m *Model) setOpacity(pct int) {
	if m.session.Mode() == session.ModeGradient {
		m.apply(m.session.SetActiveStopOpacity(pct), "")
		return
	}
	m.apply(m.session.SetSingleOpacity(pct), "")
}

func (m *Model) nudgePosition(delta int) {
	stop, ok := m.session.ActiveStop()
	if !ok {
		return
	}
	m.apply(m.session.SetActiveStopPosition(stop.Position+delta), "")
}

func (m *Model) toggleTheme() {
	next := m.theme.Toggle()
	if m.prefs != nil {
		if err := m.prefs.SetTheme(next); err != nil {
			m.setError(err)
			return
		}
	}
	m.theme = next
	m.styles = StylesFor(next)
	m.setStatus(string(next) + " theme")
}

func (m *Model) copySnippet() {
	snippet := m.last.output.Snippet
	if snippet == "" {
		return
	}
	if err := m.copy(snippet); err != nil {
		m.setError(fmt.Errorf("copy to clipboard: %w", err))
		return
	}
	m.setStatus("Copied!")
}

func (m *Model) apply(err error, ok string) {
	if err != nil {
		m.setError(err)
		return
	}
	if ok != "" {
		m.setStatus(ok)
		return
	}
	m.status = ""
}

func (m Model) currentHex() string {
	if m.session.Mode() == session.ModeGradient {
		if stop, ok := m.session.ActiveStop(); ok {
			return stop.Color
		}
	}
	return m.session.Single().Color
}

func (m Model) currentOpacity() int {
	if m.session.Mode() == session.ModeGradient {
		if stop, ok := m.session.ActiveStop(); ok {
			return stop.Opacity
		}
	}
	return m.session.Single().Opacity
}

func (m Model) activePosition() int {
	if stop, ok := m.session.ActiveStop(); ok {
		return stop.Position
	}
	return 0
}

// suggestedStop proposes the midpoint between the active stop and its right
// neighbour, or its left neighbour for the last stop.
func (m Model) suggestedStop() int {
	stops := m.session.Stops()
	i := m.session.ActiveIndex() - 1
	if i < 0 || len(stops) < 2 {
		return 50
	}
	if i == len(stops)-1 {
		return (stops[i-1].Position + stops[i].Position) / 2
	}
	return (stops[i].Position + stops[i+1].Position) / 2
}
