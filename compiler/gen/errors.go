package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the structured errors below.
var (
	// ErrInvalidSchema is matched by every SchemaError.
	ErrInvalidSchema = errors.New("veloxts: invalid schema")
	// ErrMissingConfig is matched by every ConfigError.
	ErrMissingConfig = errors.New("veloxts: missing configuration")
	// ErrInvalidEdge is matched by every EdgeError.
	ErrInvalidEdge = errors.New("veloxts: invalid edge definition")
	// ErrUnmappedType is wrapped when a field type has no TypeScript type.
	ErrUnmappedType = errors.New("veloxts: unmapped field type")
	// ErrUnhandledEdge is wrapped when an edge kind has no query rule.
	ErrUnhandledEdge = errors.New("veloxts: unhandled edge kind")
	// ErrGenerationFailed is matched by every GenerationError.
	ErrGenerationFailed = errors.New("veloxts: code generation failed")
	// ErrStale is returned in check mode when generated files differ from
	// their on-disk copies.
	ErrStale = errors.New("veloxts: generated files are stale")
)

// errorText renders "veloxts: <what><detail>: <message>: <cause>",
// leaving out the empty parts.
func errorText(what, detail, message string, cause error) string {
	parts := []string{"veloxts: " + what + detail}
	if message != "" {
		parts = append(parts, message)
	}
	if cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

// SchemaError reports a schema that cannot be turned into a model class.
type SchemaError struct {
	Model   string // Model type name
	Field   string // Field key, if the error is about one field
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	var detail string
	if e.Model != "" {
		detail += " on type " + e.Model
	}
	if e.Field != "" {
		detail += " field " + e.Field
	}
	return errorText("schema error", detail, e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// Is matches ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError returns a SchemaError for the given model and field key.
func NewSchemaError(model, fieldKey, message string, cause error) *SchemaError {
	return &SchemaError{Model: model, Field: fieldKey, Message: message, Cause: cause}
}

// EdgeError reports an edge whose query method cannot be generated.
type EdgeError struct {
	Model   string // Model declaring the edge
	Target  string // Model type the edge points to
	Edge    string // Edge key
	Message string
	Cause   error
}

func (e *EdgeError) Error() string {
	var detail string
	if e.Edge != "" {
		detail = " on edge " + e.Edge
	}
	switch {
	case e.Model != "" && e.Target != "":
		detail += fmt.Sprintf(" (%s -> %s)", e.Model, e.Target)
	case e.Model != "":
		detail += " from " + e.Model
	}
	return errorText("edge error", detail, e.Message, e.Cause)
}

func (e *EdgeError) Unwrap() error { return e.Cause }

// Is matches ErrInvalidEdge.
func (e *EdgeError) Is(target error) bool { return target == ErrInvalidEdge }

// NewEdgeError returns an EdgeError for the edge key of model pointing at target.
func NewEdgeError(model, target, edgeKey, message string, cause error) *EdgeError {
	return &EdgeError{Model: model, Target: target, Edge: edgeKey, Message: message, Cause: cause}
}

// ConfigError reports an invalid generation option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	detail := fmt.Sprintf(" for %q", e.Option)
	if e.Value != nil {
		detail += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return errorText("config error", detail, e.Message, nil)
}

// Is matches ErrMissingConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError returns a ConfigError for the named option.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError reports the failure of one pipeline phase: "load",
// "model" or "write".
type GenerationError struct {
	Phase   string
	File    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	var detail string
	if e.Phase != "" {
		detail = " in phase " + e.Phase
	}
	if e.File != "" {
		detail += " (file: " + e.File + ")"
	}
	return errorText("generation error", detail, e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Is matches ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError returns a GenerationError for the phase and file.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var target *SchemaError
	return errors.As(err, &target)
}

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsEdgeError reports whether err wraps an EdgeError.
func IsEdgeError(err error) bool {
	var target *EdgeError
	return errors.As(err, &target)
}

// IsGenerationError reports whether err wraps a GenerationError.
func IsGenerationError(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}
