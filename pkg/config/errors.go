package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates the config file failed to parse.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidValue indicates a field's resolved value is out of range.
	ErrInvalidValue = errors.New("config: invalid field value")
)

// ValidationError wraps a single resolved-configuration failure with the
// component/field it belongs to, following the teacher's
// pkg/config/errors.go ValidationError shape.
type ValidationError struct {
	Component string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Component, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError.
func NewValidationError(component, field string, err error) *ValidationError {
	return &ValidationError{Component: component, Field: field, Err: err}
}

// LoadError wraps a failure loading the file at Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config: failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError builds a LoadError.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}
