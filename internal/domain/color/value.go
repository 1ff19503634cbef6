package color

import "fmt"

// ColorValue pairs an RGB colour with an opacity percentage.
type ColorValue struct {
	RGB
	Opacity int
}

// NewColorValue decodes hex and clamps opacity to [0,100].
func NewColorValue(hex string, opacity int) (ColorValue, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return ColorValue{}, err
	}
	return ColorValue{RGB: rgb, Opacity: ClampPercent(opacity)}, nil
}

// Alpha returns the opacity as a fraction in [0,1].
func (v ColorValue) Alpha() float64 {
	return float64(ClampPercent(v.Opacity)) / 100
}

// AlphaString formats Alpha with two decimals, as CSS output expects.
func (v ColorValue) AlphaString() string {
	return fmt.Sprintf("%.2f", v.Alpha())
}

// Opaque reports whether the value is fully opaque.
func (v ColorValue) Opaque() bool {
	return v.Opacity >= 100
}
