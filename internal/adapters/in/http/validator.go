package http

import (
	"github.com/go-playground/validator/v10"

	"campuseats/internal/pkg/errs"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Failed fields surface as 400s via the errs taxonomy.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request payload structs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags on the bound request payload.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("request body", err)
	}
	return nil
}
