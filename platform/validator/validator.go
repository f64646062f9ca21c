// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"blist_converter/platform/phone"
)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the application's custom rules:
//
//	phoneregion  two-letter region code known to the phone metadata
func New() *Validator {
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
	_ = val.RegisterValidation("phoneregion", func(fl validator.FieldLevel) bool {
		return phone.IsSupportedRegion(fl.Field().String())
	})
	return val
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// Describe turns validation errors into one human readable line, e.g.
// "Region failed phoneregion (got \"XX\")". Other errors are returned as is.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		part := fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		part += fmt.Sprintf(" (got %q)", fmt.Sprint(fe.Value()))
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
