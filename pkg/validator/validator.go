package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground struct validation for request DTOs.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
