package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

// registerCustomValidations adds the currencycode rule to gin's binding
// validator. Codes are accepted case-insensitively at the boundary; services
// uppercase them before use.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return currencyCodeRe.MatchString(fl.Field().String())
		})
	}
}
