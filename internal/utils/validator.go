package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground struct validation for request payloads and
// generated quiz content.
type Validator struct {
	structValidator *validator.Validate
}

// NewValidator creates a validator with custom rules registered
func NewValidator() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// Validate validates struct tags on the given value
func (v *Validator) Validate(s interface{}) error {
	return v.structValidator.Struct(s)
}

func registerCustomValidators(validate *validator.Validate) {
	// Report field names from json tags for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
