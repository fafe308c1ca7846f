// Package validator wraps go-playground/validator behind the application's
// error conventions.
package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/guardbill/guardbill/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// converts failures into marked validation errors.
func ValidateRequest(req any) error {
	if err := GetValidator().Struct(req); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation)
	}
	return nil
}
