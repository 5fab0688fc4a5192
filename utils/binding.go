package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"guest-admin/validation"
)

// RegisterBindingValidators adds the hhmm and isodate tags to gin's
// validator so request DTOs can reject malformed times and dates while
// binding.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return validation.IsClockTime(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := validation.ParseDate(fl.Field().String())
		return ok
	})
}
