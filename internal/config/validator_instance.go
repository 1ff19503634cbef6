package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return Theme(fl.Field().String()).Valid()
		})

		// css_hex accepts anything the colour codec can decode: 3 or 6 digits,
		// with or without '#'.
		_ = v.RegisterValidation("css_hex", func(fl validator.FieldLevel) bool {
			_, err := color.HexToRGB(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
