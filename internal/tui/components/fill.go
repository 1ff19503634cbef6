package components

import (
	"math"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Fill yields the colour of cell (x, y) in a w×h area.
type Fill interface {
	At(x, y, w, h int) color.RGB
}

// SolidFill paints every cell the same colour.
type SolidFill struct {
	Color color.RGB
}

// At implements Fill.
func (f SolidFill) At(int, int, int, int) color.RGB {
	return f.Color
}

// NewSolidFill composites hex at opacity over backdrop.
func NewSolidFill(hex string, opacity int, backdrop color.RGB) (SolidFill, error) {
	value, err := color.NewColorValue(hex, opacity)
	if err != nil {
		return SolidFill{}, err
	}
	return SolidFill{Color: composite(value, backdrop)}, nil
}

// GradientFill projects a gradient onto the cell grid the way a browser lays
// out linear-gradient(<angle>) and radial-gradient(circle).
type GradientFill struct {
	stops  []gradient.Stop
	config gradient.Config
}

// NewGradientFill composites each stop over backdrop so translucent stops
// show what they would look like on that surface.
func NewGradientFill(stops []gradient.Stop, cfg gradient.Config, backdrop color.RGB) (GradientFill, error) {
	flattened := make([]gradient.Stop, 0, len(stops))
	for _, stop := range gradient.SortStops(stops) {
		value, err := stop.Value()
		if err != nil {
			return GradientFill{}, err
		}
		stop.Color = composite(value, backdrop).Hex()
		stop.Opacity = 100
		flattened = append(flattened, stop)
	}
	return GradientFill{stops: flattened, config: cfg}, nil
}

// At implements Fill.
func (f GradientFill) At(x, y, w, h int) color.RGB {
	pos := int(math.Round(f.progress(x, y, w, h) * 100))
	hex, err := gradient.ColorAt(pos, f.stops)
	if err != nil {
		return color.RGB{}
	}
	rgb, _ := color.HexToRGB(hex)
	return rgb
}

// progress maps a cell to its fraction [0,1] along the gradient line.
func (f GradientFill) progress(x, y, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	width := float64(w)
	height := float64(h) * cellAspect
	px := float64(x) + 0.5 - width/2
	py := (float64(y)+0.5)*cellAspect - height/2

	var t float64
	if f.config.Type == gradient.TypeRadial {
		radius := math.Hypot(width/2, height/2)
		t = math.Hypot(px, py) / radius
	} else {
		rad := float64(f.config.Angle) * math.Pi / 180
		dx, dy := math.Sin(rad), -math.Cos(rad)
		length := math.Abs(width*dx) + math.Abs(height*dy)
		if length == 0 {
			return 0
		}
		t = (px*dx+py*dy)/length + 0.5
	}
	return math.Max(0, math.Min(1, t))
}

func composite(value color.ColorValue, backdrop color.RGB) color.RGB {
	return value.RGB.Lerp(backdrop, 1-value.Alpha())
}
