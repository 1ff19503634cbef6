package gradient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

func TestColorAtMidpoint(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "a", Color: "#000000", Position: 0, Opacity: 100},
		{ID: "b", Color: "#ffffff", Position: 100, Opacity: 100},
	}

	got, err := ColorAt(50, stops)
	require.NoError(t, err)
	require.Equal(t, "#808080", got)

	got, err = ColorAt(25, stops)
	require.NoError(t, err)
	require.Equal(t, "#404040", got)
}

func TestColorAtClampsOutsideRange(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "a", Color: "#ff0000", Position: 20},
		{ID: "b", Color: "#0000ff", Position: 80},
	}

	got, err := ColorAt(5, stops)
	require.NoError(t, err)
	require.Equal(t, "#ff0000", got)

	got, err = ColorAt(95, stops)
	require.NoError(t, err)
	require.Equal(t, "#0000ff", got)
}

func TestColorAtSharedPositionAndZeroWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stops    []Stop
		position int
		want     string
	}{
		{
			name: "tie in the middle takes the earlier stop",
			stops: []Stop{
				{ID: "a", Color: "#000000", Position: 0},
				{ID: "b", Color: "#ABCDEF", Position: 40},
				{ID: "c", Color: "#123456", Position: 40},
				{ID: "d", Color: "#ffffff", Position: 100},
			},
			position: 40,
			want:     "#abcdef",
		},
		{
			name: "tie at the last position takes the first bounding pair",
			stops: []Stop{
				{ID: "a", Color: "#000000", Position: 0},
				{ID: "b", Color: "#ff0000", Position: 100},
				{ID: "c", Color: "#0000ff", Position: 100},
			},
			position: 100,
			want:     "#ff0000",
		},
		{
			name: "tie at the first position takes the earlier stop",
			stops: []Stop{
				{ID: "a", Color: "#00FF00", Position: 0},
				{ID: "b", Color: "#ff0000", Position: 0},
				{ID: "c", Color: "#0000ff", Position: 100},
			},
			position: 0,
			want:     "#00ff00",
		},
		{
			name:     "single stop past its position",
			stops:    []Stop{{ID: "only", Color: "#A1B2C3", Position: 30}},
			position: 70,
			want:     "#a1b2c3",
		},
		{
			name:     "single stop before its position",
			stops:    []Stop{{ID: "only", Color: "#A1B2C3", Position: 30}},
			position: 0,
			want:     "#a1b2c3",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ColorAt(tt.position, tt.stops)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorAtNormalisesStoredHex(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "a", Color: "#FFAA00", Position: 0},
		{ID: "b", Color: "#0000FF", Position: 100},
	}

	for _, p := range []int{-10, 0, 100, 120} {
		got, err := ColorAt(p, stops)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(got), got, "position %d", p)
		require.Len(t, got, 7, "position %d", p)
	}
}

func TestColorAtSortsInput(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "b", Color: "#ffffff", Position: 100},
		{ID: "a", Color: "#000000", Position: 0},
	}

	got, err := ColorAt(50, stops)
	require.NoError(t, err)
	require.Equal(t, "#808080", got)
}

func TestColorAtIsExactAtStops(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "a", Color: "#6366f1", Position: 0},
		{ID: "b", Color: "#22c55e", Position: 35},
		{ID: "c", Color: "#f97316", Position: 72},
		{ID: "d", Color: "#a855f7", Position: 100},
	}

	for _, stop := range stops {
		got, err := ColorAt(stop.Position, stops)
		require.NoError(t, err)
		require.Equal(t, stop.Color, got, "position %d", stop.Position)
	}
}

func TestColorAtStaysWithinBoundingChannels(t *testing.T) {
	t.Parallel()

	stops := []Stop{
		{ID: "a", Color: "#6366f1", Position: 0},
		{ID: "b", Color: "#22c55e", Position: 35},
		{ID: "c", Color: "#f97316", Position: 72},
		{ID: "d", Color: "#a855f7", Position: 100},
	}

	for p := 0; p <= 100; p++ {
		got, err := ColorAt(p, stops)
		require.NoError(t, err)
		rgb, err := color.HexToRGB(got)
		require.NoError(t, err)

		left, right := bounds(p, stops)
		l, _ := color.HexToRGB(left.Color)
		r, _ := color.HexToRGB(right.Color)
		requireBetween(t, rgb.R, l.R, r.R)
		requireBetween(t, rgb.G, l.G, r.G)
		requireBetween(t, rgb.B, l.B, r.B)
	}
}

func requireBetween(t *testing.T, v, a, b uint8) {
	t.Helper()
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	require.GreaterOrEqual(t, v, lo)
	require.LessOrEqual(t, v, hi)
}

func TestColorAtEmptyStops(t *testing.T) {
	t.Parallel()

	_, err := ColorAt(10, nil)
	require.ErrorIs(t, err, chromaerrors.ErrEmptyStops)
}

func TestStoreColorAtUsesStoredStops(t *testing.T) {
	t.Parallel()

	s := NewStore()
	got, err := s.ColorAt(0)
	require.NoError(t, err)
	require.Equal(t, DefaultStartColor, got)

	got, err = s.ColorAt(50)
	require.NoError(t, err)
	require.Equal(t, "#865ef4", got)
}

func TestStoreColorAtLastPositionIgnoresLaterTie(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, err := s.AddStop(100, "#00ff00", 100)
	require.NoError(t, err)

	got, err := s.ColorAt(100)
	require.NoError(t, err)
	require.Equal(t, DefaultEndColor, got)
}
