package handler

import (
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a single failed validation constraint.
type ErrorResponse struct {
	FailedField string      `json:"failedField"`
	Tag         string      `json:"tag"`
	Value       interface{} `json:"value"`
}

var validate = validator.New()

// Validate checks the struct tags of data and returns one ErrorResponse per
// failed constraint. An empty slice means the payload is valid.
func Validate(data interface{}) []ErrorResponse {
	var validationErrors []ErrorResponse

	errs := validate.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) { //nolint:errorlint,errcheck // ok here
			validationErrors = append(validationErrors, ErrorResponse{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}

	return validationErrors
}
