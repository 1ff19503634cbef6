package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/gradient"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// StopSpec is a gradient stop as written on the command line:
// HEX@POSITION[:OPACITY], e.g. "#6366f1@0" or "a855f7@100:80".
type StopSpec struct {
	Color    string `validate:"required,css_hex"`
	Position int    `validate:"min=0,max=100"`
	Opacity  int    `validate:"min=0,max=100"`
}

// ParseStopSpec decodes and validates a single stop flag value. index is the
// 1-based flag position used in error messages.
func ParseStopSpec(raw string, index int) (StopSpec, error) {
	field := fmt.Sprintf("stop[%d]", index)

	colorPart, rest, found := strings.Cut(strings.TrimSpace(raw), "@")
	if !found {
		return StopSpec{}, chromaerrors.NewValidationError(field, fmt.Sprintf("%q must look like HEX@POSITION[:OPACITY]", raw), nil)
	}

	posPart, opacityPart, hasOpacity := strings.Cut(rest, ":")
	position, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(posPart, "%")))
	if err != nil {
		return StopSpec{}, chromaerrors.NewValidationError(field+".position", fmt.Sprintf("%q is not an integer", posPart), err)
	}

	opacity := 100
	if hasOpacity {
		opacity, err = strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(opacityPart, "%")))
		if err != nil {
			return StopSpec{}, chromaerrors.NewValidationError(field+".opacity", fmt.Sprintf("%q is not an integer", opacityPart), err)
		}
	}

	spec := StopSpec{Color: normalizeHex(colorPart), Position: position, Opacity: opacity}
	if err := validatorInstance().Struct(spec); err != nil {
		return StopSpec{}, convertValidationError(err, field)
	}
	return spec, nil
}

// ParseStopSpecs decodes every flag value, stopping at the first error.
func ParseStopSpecs(raw []string) ([]StopSpec, error) {
	specs := make([]StopSpec, 0, len(raw))
	for i, r := range raw {
		spec, err := ParseStopSpec(r, i+1)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// StopsFromSpecs converts validated specs into domain stops.
func StopsFromSpecs(specs []StopSpec) []gradient.Stop {
	stops := make([]gradient.Stop, 0, len(specs))
	for _, spec := range specs {
		stops = append(stops, gradient.Stop{Color: spec.Color, Position: spec.Position, Opacity: spec.Opacity})
	}
	return stops
}

func normalizeHex(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || strings.HasPrefix(raw, "#") {
		return raw
	}
	return "#" + raw
}
