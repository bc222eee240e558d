package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validators.NotBlank)
}

// ValidateStruct checks the validate tags of obj.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

