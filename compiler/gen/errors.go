package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a quantity definition error.
	ErrInvalidSchema = errors.New("siunits: invalid quantity table")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("siunits: missing configuration")
	// ErrInvalidEdge indicates a conversion edge that is inconsistent or
	// lacks its inverse edges.
	ErrInvalidEdge = errors.New("siunits: invalid conversion edge")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("siunits: code generation failed")
	// ErrValidationFailed indicates a validation failure.
	ErrValidationFailed = errors.New("siunits: validation failed")
)

// SchemaError represents an error in a quantity definition.
type SchemaError struct {
	Quantity string
	Unit     string // Unit name (if applicable)
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("siunits: schema error")
	if e.Quantity != "" {
		b.WriteString(" on quantity ")
		b.WriteString(e.Quantity)
	}
	if e.Unit != "" {
		b.WriteString(" unit ")
		b.WriteString(e.Unit)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(quantity, unit, message string, cause error) *SchemaError {
	return &SchemaError{
		Quantity: quantity,
		Unit:     unit,
		Message:  message,
		Cause:    cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("siunits: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("siunits: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// EdgeError represents an error in a conversion edge.
type EdgeError struct {
	Left    string
	Op      string
	Right   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	var b strings.Builder
	b.WriteString("siunits: edge error")
	if e.Left != "" && e.Right != "" {
		fmt.Fprintf(&b, " on %s %s %s", e.Left, e.Op, e.Right)
	} else if e.Left != "" {
		b.WriteString(" from ")
		b.WriteString(e.Left)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EdgeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EdgeError.
func (e *EdgeError) Is(target error) bool {
	return target == ErrInvalidEdge
}

// NewEdgeError creates a new EdgeError.
func NewEdgeError(left, op, right, message string, cause error) *EdgeError {
	return &EdgeError{
		Left:    left,
		Op:      op,
		Right:   right,
		Message: message,
		Cause:   cause,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "quantities", "tests", "templates", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("siunits: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents an invalid value in a quantity definition.
type ValidationError struct {
	Quantity string
	Field    string
	Value    any
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("siunits: validation error")
	if e.Quantity != "" {
		b.WriteString(" on quantity ")
		b.WriteString(e.Quantity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new ValidationError.
func NewValidationError(quantity, field string, value any, message string) *ValidationError {
	return &ValidationError{
		Quantity: quantity,
		Field:    field,
		Value:    value,
		Message:  message,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEdgeError reports whether the error is an EdgeError.
func IsEdgeError(err error) bool {
	var edgeErr *EdgeError
	return errors.As(err, &edgeErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
