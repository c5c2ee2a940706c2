package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/sirupsen/logrus"
)

// FieldError is a validation error for one configuration key.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError holds every field error found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks cfg and returns a ValidationError listing every problem, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	for _, f := range []struct {
		field, value string
	}{
		{"root_type", cfg.RootType},
		{"retention_annotation", cfg.RetentionAnnotation},
		{"closure_marker", cfg.ClosureMarker},
	} {
		if !isClassName(f.value) {
			errs = append(errs, FieldError{Field: f.field, Message: fmt.Sprintf("%q is not a class name", f.value)})
		}
	}

	if !token.IsIdentifier(cfg.OutputPackage) {
		errs = append(errs, FieldError{Field: "output_package", Message: fmt.Sprintf("%q is not a Go package name", cfg.OutputPackage)})
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, FieldError{Field: "log_level", Message: err.Error()})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// isClassName accepts a simple or dot-qualified class name.
func isClassName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if !token.IsIdentifier(part) {
			return false
		}
	}
	return true
}
