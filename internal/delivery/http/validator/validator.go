// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "mesauth/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for use as echo.Echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound request struct against its validate tags.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
