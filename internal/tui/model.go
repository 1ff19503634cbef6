package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chromastudio/internal/app/session"
	"github.com/alexisbeaulieu97/chromastudio/internal/config"
	"github.com/alexisbeaulieu97/chromastudio/internal/logger"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// field identifies which value the prompt is editing.
type field int

const (
	fieldNone field = iota
	fieldHex
	fieldAngle
	fieldOpacity
	fieldNewStop
)

func (f field) prompt() string {
	switch f {
	case fieldHex:
		return "hex › "
	case fieldAngle:
		return "angle › "
	case fieldOpacity:
		return "opacity › "
	case fieldNewStop:
		return "new stop at % › "
	default:
		return "› "
	}
}

// CopyFunc writes text to the system clipboard.
type CopyFunc func(string) error

// rendered is shared between the model copies bubbletea hands around so the
// session listener always writes to the live one.
type rendered struct {
	output session.Output
	count  int
}

// Model is the bubbletea model for the interactive colour editor.
type Model struct {
	session *session.Session
	prefs   *config.Preferences
	log     *logger.Logger
	copy    CopyFunc

	keys  KeyMap
	help  help.Model
	input textinput.Model

	theme      config.Theme
	styles     Styles
	editing    field
	status     string
	statusErr  bool
	fullscreen bool
	quitting   bool
	width      int
	height     int

	last        *rendered
	unsubscribe func()
}

// Option customises the editor model.
type Option func(*Model)

// WithPreferences persists theme changes to prefs.
func WithPreferences(prefs *config.Preferences) Option {
	return func(m *Model) {
		m.prefs = prefs
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(fn CopyFunc) Option {
	return func(m *Model) {
		if fn != nil {
			m.copy = fn
		}
	}
}

// NewModel constructs the editor around sess.
func NewModel(sess *session.Session, opts ...Option) Model {
	input := textinput.New()
	input.CharLimit = 7

	m := Model{
		session: sess,
		log:     logger.Nop(),
		copy:    clipboard.WriteAll,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		theme:   config.ThemeDark,
		width:   80,
		height:  24,
		last:    &rendered{output: sess.Output()},
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.prefs != nil {
		m.theme = m.prefs.Theme()
	}
	m.styles = StylesFor(m.theme)

	last := m.last
	m.unsubscribe = sess.Subscribe(func(out session.Output) {
		last.output = out
		last.count++
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying editing session.
func (m Model) Session() *session.Session {
	return m.session
}

// Theme returns the active UI theme.
func (m Model) Theme() config.Theme {
	return m.theme
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Fullscreen reports whether the preview fills the screen.
func (m Model) Fullscreen() bool {
	return m.fullscreen
}

// Editing reports whether a value prompt is open.
func (m Model) Editing() bool {
	return m.editing != fieldNone
}

// Close detaches the model from its session.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	fields := map[string]any{"error": err.Error()}
	if code, ok := chromaerrors.CodeOf(err); ok {
		fields["code"] = string(code)
	}
	m.log.WithFields(fields).Debug("editor rejected input")
}
