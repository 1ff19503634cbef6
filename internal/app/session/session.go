// Package session owns the mutable editing state of a colour composition and
// republishes the synthesized CSS after every change.
package session

import (
	"fmt"

	"github.com/alexisbeaulieu97/chromastudio/internal/css"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
	"github.com/alexisbeaulieu97/chromastudio/internal/logger"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// Mode chooses between a flat colour and a gradient.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeGradient Mode = "gradient"
)

// SingleColor is the flat colour being edited.
type SingleColor struct {
	Color   string
	Opacity int
}

// Output is everything a renderer needs after a state change.
type Output struct {
	Value       string
	Snippet     string
	Summary     string
	Track       string
	IsGradient  bool
	PreviewMode css.PreviewMode
	Label       string
}

// Listener receives the recomputed output after each successful mutation.
type Listener func(Output)

// Session is the single owner of editing state. It is not safe for
// concurrent use; drive it from one goroutine such as a bubbletea update loop.
type Session struct {
	mode       Mode
	gradient   gradient.Config
	preview    css.PreviewMode
	single     SingleColor
	stops      *gradient.Store
	output     Output
	listeners  map[int]Listener
	nextListen int
	log        *logger.Logger
}

// Option customises a Session at construction.
type Option func(*Session)

// WithLogger attaches a logger for mutation tracing.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStore replaces the default two-stop store.
func WithStore(store *gradient.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.stops = store
		}
	}
}

// New returns a session in its initial state: single colour #6366f1 at full
// opacity, a default two-stop linear gradient at 90 degrees, background
// preview.
func New(opts ...Option) *Session {
	s := &Session{
		mode:      ModeSingle,
		gradient:  gradient.DefaultConfig(),
		preview:   css.PreviewBackground,
		single:    SingleColor{Color: gradient.DefaultStartColor, Opacity: 100},
		stops:     gradient.NewStore(),
		listeners: make(map[int]Listener),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.output = s.render()
	return s
}

// Subscribe registers fn for future outputs and returns a function removing it.
func (s *Session) Subscribe(fn Listener) func() {
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Output returns the most recently synthesized output.
func (s *Session) Output() Output {
	return s.output
}

// Mode returns the current colour mode.
func (s *Session) Mode() Mode { return s.mode }

// GradientConfig returns the current gradient geometry.
func (s *Session) GradientConfig() gradient.Config { return s.gradient }

// PreviewMode returns the current preview context.
func (s *Session) PreviewMode() css.PreviewMode { return s.preview }

// Single returns the flat colour state.
func (s *Session) Single() SingleColor { return s.single }

// Stops returns a sorted snapshot of the gradient stops.
func (s *Session) Stops() []gradient.Stop { return s.stops.SortedStops() }

// ActiveStop returns the stop targeted by the editing controls.
func (s *Session) ActiveStop() (gradient.Stop, bool) { return s.stops.Active() }

// ActiveIndex returns the 1-based index of the active stop.
func (s *Session) ActiveIndex() int { return s.stops.ActiveIndex() }

// CanRemoveStop reports whether the active stop may be removed.
func (s *Session) CanRemoveStop() bool { return s.stops.CanRemove() }

// ColorAt interpolates the current gradient at position.
func (s *Session) ColorAt(position int) (string, error) {
	return s.stops.ColorAt(position)
}

// SetMode switches between single colour and gradient editing.
func (s *Session) SetMode(mode Mode) error {
	if mode != ModeSingle && mode != ModeGradient {
		return invalidValue("mode", string(mode))
	}
	return s.apply("mode changed", func() error {
		s.mode = mode
		return nil
	})
}

// ToggleMode flips between single and gradient mode.
func (s *Session) ToggleMode() error {
	if s.mode == ModeSingle {
		return s.SetMode(ModeGradient)
	}
	return s.SetMode(ModeSingle)
}

// SetGradientType switches between linear and radial geometry.
func (s *Session) SetGradientType(typ gradient.Type) error {
	if typ != gradient.TypeLinear && typ != gradient.TypeRadial {
		return invalidValue("gradient type", string(typ))
	}
	return s.apply("gradient type changed", func() error {
		s.gradient.Type = typ
		return nil
	})
}

// SetAngle sets the linear gradient angle, wrapped into [0,360).
func (s *Session) SetAngle(deg int) error {
	return s.apply("angle changed", func() error {
		s.gradient.Angle = gradient.NormalizeAngle(deg)
		return nil
	})
}

// SetPreviewMode selects the preview context.
func (s *Session) SetPreviewMode(mode css.PreviewMode) error {
	if !mode.Valid() {
		return invalidValue("preview mode", string(mode))
	}
	return s.apply("preview mode changed", func() error {
		s.preview = mode
		return nil
	})
}

// SetSingleHex applies user-typed hex to the flat colour. Input that does not
// pass color.ParseHex is rejected and leaves state unchanged.
func (s *Session) SetSingleHex(raw string) error {
	hex, err := color.ParseHex(raw)
	if err != nil {
		return err
	}
	return s.apply("single color changed", func() error {
		s.single.Color = hex
		return nil
	})
}

// SetSingleOpacity sets the flat colour opacity, clamped to [0,100].
func (s *Session) SetSingleOpacity(pct int) error {
	return s.apply("single opacity changed", func() error {
		s.single.Opacity = color.ClampPercent(pct)
		return nil
	})
}

// AddStopAt inserts a fully opaque stop whose colour is interpolated from
// its neighbours, and selects it.
func (s *Session) AddStopAt(position int) (string, error) {
	position = color.ClampPercent(position)
	var id string
	err := s.apply("stop added", func() error {
		hex, err := s.stops.ColorAt(position)
		if err != nil {
			return err
		}
		if id, err = s.stops.AddStop(position, hex, 100); err != nil {
			return err
		}
		return s.stops.Select(id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// SelectStop makes id the active stop.
func (s *Session) SelectStop(id string) error {
	return s.apply("stop selected", func() error {
		return s.stops.Select(id)
	})
}

// SelectStopByIndex selects the stop at the 1-based sorted index.
func (s *Session) SelectStopByIndex(index int) error {
	stops := s.stops.SortedStops()
	if index < 1 || index > len(stops) {
		return chromaerrors.ErrUnknownStopID.WithContext(map[string]interface{}{"index": index})
	}
	return s.SelectStop(stops[index-1].ID)
}

// CycleStop moves the selection by delta positions, wrapping around.
func (s *Session) CycleStop(delta int) error {
	n := s.stops.Len()
	current := s.stops.ActiveIndex() - 1
	if current < 0 {
		current = 0
	}
	next := ((current+delta)%n + n) % n
	return s.SelectStopByIndex(next + 1)
}

// RemoveActiveStop deletes the active stop; the first stop by position
// becomes active. Fails with STORE_UNDERFLOW when two stops remain.
func (s *Session) RemoveActiveStop() error {
	return s.apply("stop removed", func() error {
		return s.stops.RemoveStop(s.stops.ActiveID())
	})
}

// SetActiveStopHex applies user-typed hex to the active stop.
func (s *Session) SetActiveStopHex(raw string) error {
	hex, err := color.ParseHex(raw)
	if err != nil {
		return err
	}
	return s.apply("stop color changed", func() error {
		return s.stops.UpdateStopColor(s.stops.ActiveID(), hex)
	})
}

// SetActiveStopPosition moves the active stop, clamped to [0,100].
func (s *Session) SetActiveStopPosition(pos int) error {
	return s.apply("stop moved", func() error {
		return s.stops.UpdateStopPosition(s.stops.ActiveID(), pos)
	})
}

// SetActiveStopOpacity sets the active stop opacity, clamped to [0,100].
func (s *Session) SetActiveStopOpacity(pct int) error {
	return s.apply("stop opacity changed", func() error {
		return s.stops.UpdateStopOpacity(s.stops.ActiveID(), pct)
	})
}

// state is the rollback point for a mutation.
type state struct {
	mode     Mode
	gradient gradient.Config
	preview  css.PreviewMode
	single   SingleColor
	stops    *gradient.Store
}

// apply runs mutate and publishes the result. If mutate fails or the new
// state cannot be synthesized, every field is restored, the previous output
// stays current and no listener is called.
func (s *Session) apply(event string, mutate func() error) error {
	saved := state{
		mode:     s.mode,
		gradient: s.gradient,
		preview:  s.preview,
		single:   s.single,
		stops:    s.stops.Clone(),
	}
	err := mutate()
	if err == nil {
		err = s.publish(event)
	}
	if err != nil {
		s.mode = saved.mode
		s.gradient = saved.gradient
		s.preview = saved.preview
		s.single = saved.single
		// Restore in place so a store passed through WithStore stays shared.
		*s.stops = *saved.stops
		return err
	}
	return nil
}

func (s *Session) publish(event string) error {
	out := s.render()
	if out.Value == "" {
		return fmt.Errorf("%s: could not synthesize css", event)
	}
	s.output = out
	s.log.WithFields(map[string]any{
		"mode":    string(s.mode),
		"preview": string(s.preview),
		"value":   out.Summary,
	}).Debug(event)

	for _, fn := range s.listeners {
		fn(out)
	}
	return nil
}

func (s *Session) render() Output {
	out := Output{
		IsGradient:  s.mode == ModeGradient,
		PreviewMode: s.preview,
		Label:       s.preview.Label(),
	}

	var err error
	if out.IsGradient {
		out.Value, err = css.GradientCSS(s.stops.SortedStops(), s.gradient.Type, s.gradient.Angle)
	} else {
		out.Value, err = css.SingleColorCSS(s.single.Color, s.single.Opacity)
	}
	if err != nil {
		s.log.Error(err, "synthesize css")
		return Output{}
	}

	if track, err := css.TrackCSS(s.stops.SortedStops()); err == nil {
		out.Track = track
	}
	out.Snippet = css.PropertySnippet(s.preview, out.Value, out.IsGradient)
	out.Summary = css.Summary(out.Value)
	return out
}

func invalidValue(field, value string) error {
	return chromaerrors.ErrInvalidValue.WithContext(map[string]interface{}{"field": field, "value": value})
}
