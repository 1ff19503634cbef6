package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

func convertValidationError(err error, prefix string) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve, prefix)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return chromaerrors.NewValidationError(field, msg, err)
	}

	return chromaerrors.NewValidationError(prefix, err.Error(), err)
}

// fieldName lowercases the struct namespace and swaps the root struct name
// for prefix, e.g. "StopSpec.Position" -> "stop[2].position".
func fieldName(fe validator.FieldError, prefix string) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 && prefix != "" {
		parts[0] = prefix
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
