package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromastudio/internal/css"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
	"github.com/alexisbeaulieu97/chromastudio/internal/logger"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

func TestNewSessionInitialOutput(t *testing.T) {
	t.Parallel()

	s := New()
	out := s.Output()
	require.Equal(t, "#6366f1", out.Value)
	require.Equal(t, "background-color: #6366f1;", out.Snippet)
	require.False(t, out.IsGradient)
	require.Equal(t, css.PreviewBackground, out.PreviewMode)
	require.Equal(t, "Background Mode", out.Label)
	require.Equal(t, "linear-gradient(to right, rgba(99,102,241,1.00) 0%, rgba(168,85,247,1.00) 100%)", out.Track)
}

func TestGradientModeProducesGradientSnippet(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SetMode(ModeGradient))

	out := s.Output()
	require.True(t, out.IsGradient)
	require.Equal(t, "linear-gradient(90deg, rgba(99,102,241,1.00) 0%, rgba(168,85,247,1.00) 100%)", out.Value)
	require.Equal(t, "background: linear-gradient(90deg, rgba(99,102,241,1.00) 0%, rgba(168,85,247,1.00) 100%);", out.Snippet)

	require.NoError(t, s.SetGradientType(gradient.TypeRadial))
	require.Contains(t, s.Output().Value, "radial-gradient(circle, ")

	require.ErrorIs(t, s.SetMode(Mode("triple")), chromaerrors.ErrInvalidValue)
	require.ErrorIs(t, s.SetGradientType(gradient.Type("conic")), chromaerrors.ErrInvalidValue)
	require.Equal(t, gradient.TypeRadial, s.GradientConfig().Type)
}

func TestSetAngleNormalizes(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SetMode(ModeGradient))
	require.NoError(t, s.SetAngle(-45))
	require.Equal(t, 315, s.GradientConfig().Angle)
	require.Contains(t, s.Output().Value, "linear-gradient(315deg, ")

	require.NoError(t, s.SetAngle(720))
	require.Equal(t, 0, s.GradientConfig().Angle)
}

func TestSetSingleHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	s := New()
	calls := 0
	s.Subscribe(func(Output) { calls++ })

	err := s.SetSingleHex("12345")
	require.ErrorIs(t, err, chromaerrors.ErrInvalidColorFormat)
	require.Equal(t, "#6366f1", s.Single().Color)
	require.Zero(t, calls)

	require.NoError(t, s.SetSingleHex("FF8800"))
	require.Equal(t, "#ff8800", s.Single().Color)
	require.Equal(t, 1, calls)

	require.NoError(t, s.SetSingleOpacity(50))
	require.Equal(t, "rgba(255, 136, 0, 0.50)", s.Output().Value)

	require.NoError(t, s.SetSingleOpacity(400))
	require.Equal(t, 100, s.Single().Opacity)
	require.Equal(t, "#ff8800", s.Output().Value)
}

func TestPreviewModeDrivesSnippet(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SetPreviewMode(css.PreviewBorder))
	require.Equal(t, "border: 3px solid #6366f1;", s.Output().Snippet)
	require.Equal(t, "Border Mode", s.Output().Label)

	require.ErrorIs(t, s.SetPreviewMode(css.PreviewMode("shadow")), chromaerrors.ErrInvalidValue)
	require.Equal(t, css.PreviewBorder, s.PreviewMode())
}

func TestAddStopAtInterpolatesAndSelects(t *testing.T) {
	t.Parallel()

	s := New()
	id, err := s.AddStopAt(50)
	require.NoError(t, err)
	require.Equal(t, "stop_3", id)

	active, ok := s.ActiveStop()
	require.True(t, ok)
	require.Equal(t, id, active.ID)
	require.Equal(t, "#865ef4", active.Color)
	require.Equal(t, 100, active.Opacity)
	require.Equal(t, 2, s.ActiveIndex())
	require.True(t, s.CanRemoveStop())
	require.Len(t, s.Stops(), 3)
}

func TestAddStopAtLastPositionKeepsEndColor(t *testing.T) {
	t.Parallel()

	s := New()
	for _, position := range []int{100, 150} {
		_, err := s.AddStopAt(position)
		require.NoError(t, err)

		active, ok := s.ActiveStop()
		require.True(t, ok)
		require.Equal(t, 100, active.Position)
		require.Equal(t, gradient.DefaultEndColor, active.Color)
	}
}

func TestFailedRenderLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s := New()
	calls := 0
	s.Subscribe(func(Output) { calls++ })
	before := s.Output()

	// Only reachable from inside the package: user input is gated by ParseHex.
	s.single.Color = "not-a-colour"

	require.Error(t, s.SetSingleOpacity(40))
	require.Equal(t, 100, s.Single().Opacity)
	require.Equal(t, before, s.Output())
	require.Zero(t, calls)

	require.NoError(t, s.SetMode(ModeGradient))
	require.Equal(t, 1, calls)
	gradientOut := s.Output()

	require.Error(t, s.SetMode(ModeSingle))
	require.Equal(t, ModeGradient, s.Mode())
	require.Equal(t, gradientOut, s.Output())
	require.Equal(t, 1, calls)
}

func TestFailedStoreMutationRollsBack(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SelectStopByIndex(2))
	before := s.Stops()

	require.ErrorIs(t, s.RemoveActiveStop(), chromaerrors.ErrStoreUnderflow)
	require.Equal(t, before, s.Stops())
	require.Equal(t, 2, s.ActiveIndex())
}

func TestRemoveActiveStop(t *testing.T) {
	t.Parallel()

	s := New()
	require.ErrorIs(t, s.RemoveActiveStop(), chromaerrors.ErrStoreUnderflow)
	require.Len(t, s.Stops(), 2)

	_, err := s.AddStopAt(30)
	require.NoError(t, err)
	require.NoError(t, s.RemoveActiveStop())
	require.Len(t, s.Stops(), 2)

	active, ok := s.ActiveStop()
	require.True(t, ok)
	require.Equal(t, "stop_1", active.ID)
}

func TestActiveStopEditing(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.SetMode(ModeGradient))
	require.NoError(t, s.SetActiveStopHex("#000000"))
	require.NoError(t, s.SetActiveStopOpacity(25))
	require.NoError(t, s.SetActiveStopPosition(120))

	require.Equal(t, "linear-gradient(90deg, rgba(0,0,0,0.25) 100%, rgba(168,85,247,1.00) 100%)", s.Output().Value)
	require.ErrorIs(t, s.SetActiveStopHex("black"), chromaerrors.ErrInvalidColorFormat)
}

func TestSelectionByIndexAndCycle(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.AddStopAt(50)
	require.NoError(t, err)

	require.NoError(t, s.SelectStopByIndex(1))
	require.Equal(t, 1, s.ActiveIndex())

	require.NoError(t, s.CycleStop(-1))
	require.Equal(t, 3, s.ActiveIndex())

	require.NoError(t, s.CycleStop(1))
	require.Equal(t, 1, s.ActiveIndex())

	require.ErrorIs(t, s.SelectStopByIndex(9), chromaerrors.ErrUnknownStopID)
	require.ErrorIs(t, s.SelectStop("stop_99"), chromaerrors.ErrUnknownStopID)
	require.Equal(t, 1, s.ActiveIndex())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	s := New()
	var outputs []Output
	unsubscribe := s.Subscribe(func(out Output) { outputs = append(outputs, out) })

	require.NoError(t, s.SetPreviewMode(css.PreviewText))
	require.Len(t, outputs, 1)
	require.Equal(t, "color: #6366f1;", outputs[0].Snippet)

	unsubscribe()
	require.NoError(t, s.SetPreviewMode(css.PreviewCard))
	require.Len(t, outputs, 1)
}

func TestSessionLogsMutations(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	s := New(WithLogger(log))
	require.NoError(t, s.ToggleMode())
	require.Equal(t, ModeGradient, s.Mode())
	require.Contains(t, buf.String(), "mode changed")
	require.Contains(t, buf.String(), `"mode":"gradient"`)
}

func TestWithStoreSeedsStops(t *testing.T) {
	t.Parallel()

	store, err := gradient.NewStoreFromStops([]gradient.Stop{
		{Color: "#000000", Position: 0, Opacity: 100},
		{Color: "#ffffff", Position: 100, Opacity: 100},
	})
	require.NoError(t, err)

	s := New(WithStore(store))
	got, err := s.ColorAt(50)
	require.NoError(t, err)
	require.Equal(t, "#808080", got)
}
