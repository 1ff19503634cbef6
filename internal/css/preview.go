package css

import (
	"fmt"
	"strings"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// PreviewMode selects which UI element template a colour is rendered into.
type PreviewMode string

const (
	PreviewBackground PreviewMode = "bg"
	PreviewButton     PreviewMode = "button-bg"
	PreviewText       PreviewMode = "text"
	PreviewBorder     PreviewMode = "border"
	PreviewCard       PreviewMode = "card"
)

// PreviewModes lists every mode in display order.
var PreviewModes = []PreviewMode{
	PreviewBackground,
	PreviewButton,
	PreviewText,
	PreviewBorder,
	PreviewCard,
}

var previewLabels = map[PreviewMode]string{
	PreviewBackground: "Background Mode",
	PreviewButton:     "Button Background",
	PreviewText:       "Text Color Mode",
	PreviewBorder:     "Border Mode",
	PreviewCard:       "Card Mode",
}

// Label returns the human readable name of the mode.
func (m PreviewMode) Label() string {
	if label, ok := previewLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid reports whether m is a known mode.
func (m PreviewMode) Valid() bool {
	_, ok := previewLabels[m]
	return ok
}

// Next cycles to the following mode in display order.
func (m PreviewMode) Next() PreviewMode {
	for i, mode := range PreviewModes {
		if mode == m {
			return PreviewModes[(i+1)%len(PreviewModes)]
		}
	}
	return PreviewBackground
}

// ParsePreviewMode converts user input into a PreviewMode. "background" and
// "button" are accepted as aliases.
func ParsePreviewMode(raw string) (PreviewMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "background":
		return PreviewBackground, nil
	case "button":
		return PreviewButton, nil
	}

	mode := PreviewMode(normalized)
	if !mode.Valid() {
		return "", chromaerrors.ErrInvalidValue.WithContext(map[string]interface{}{
			"field":    "preview mode",
			"value":    raw,
			"expected": fmt.Sprint(PreviewModes),
		})
	}
	return mode, nil
}
