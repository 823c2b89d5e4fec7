package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("provider_id", func(fl validator.FieldLevel) bool {
			_, err := provider.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("widget_type", func(fl validator.FieldLevel) bool {
			_, err := widget.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			switch provider.Mode(strings.ToLower(strings.TrimSpace(fl.Field().String()))) {
			case "", provider.Light, provider.Dark:
				return true
			}
			return false
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError names the first offending field.
type ValidationError struct {
	Field string
	Tag   string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s failed validation for tag %q (value %v)", e.Field, e.Tag, e.Value)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks cfg against the field rules.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fieldName(fe), Tag: fe.Tag(), Value: fe.Value()}
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// fieldName renders the struct namespace as a config key, e.g.
// theme.providers[1].
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
