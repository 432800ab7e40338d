package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("loglevel", validateLogLevel)
		validate.RegisterTagNameFunc(envTagName)
	})
	return validate
}

// envTagName reports fields by their environment variable
func envTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
	if name == "" {
		return field.Name
	}
	return name
}

func validateLogLevel(fl validator.FieldLevel) bool {
	return slices.Contains(ValidLogLevels, strings.ToLower(fl.Field().String()))
}

// formatValidationError turns validator errors into one readable line per variable
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s must be set", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "loglevel":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), strings.Join(ValidLogLevels, " "), e.Value()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", e.Field()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("%s must be numeric", e.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings returns non-fatal problems worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.StoreBackend == BackendPostgres && cfg.DBPassword == DefaultDBPassword && cfg.Environment == EnvironmentProd {
		warnings = append(warnings, "DB_PASSWORD is the default value in prod - please use a secure password")
	}
	if cfg.StoreBackend == BackendMemory {
		warnings = append(warnings, "STORE_BACKEND is memory - nothing is kept after the process exits")
	}

	return warnings
}
