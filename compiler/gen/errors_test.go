package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unknown type \"blob\"")
		err := NewSchemaError("Post", "body", "resolve type", cause)

		assert.Equal(t, `veloxts: schema error on type Post field body: resolve type: unknown type "blob"`, err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewSchemaError("Post", "", "model declared twice", nil)
		assert.Equal(t, "veloxts: schema error on type Post: model declared twice", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Post", "title", "", cause)
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError("Post", "", "", nil)
		assert.True(t, errors.Is(err, ErrInvalidSchema))
		assert.False(t, errors.Is(err, ErrInvalidEdge))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "workers must be positive")
		assert.Equal(t, `veloxts: config error for "Workers" (value: -1): workers must be positive`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		assert.True(t, errors.Is(NewConfigError("Target", nil, "missing"), ErrMissingConfig))
	})
}

func TestEdgeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("missing inverse")
		err := NewEdgeError("Post", "User", "author", "invalid reference", cause)
		assert.Equal(t, "veloxts: edge error on edge author (Post -> User): invalid reference: missing inverse", err.Error())
	})

	t.Run("Error message with model only", func(t *testing.T) {
		err := &EdgeError{Model: "Post", Edge: "author", Message: "test"}
		assert.Contains(t, err.Error(), "from Post")
		assert.NotContains(t, err.Error(), "->")
	})

	t.Run("Is matches ErrInvalidEdge", func(t *testing.T) {
		err := NewEdgeError("Post", "User", "author", "", nil)
		assert.True(t, errors.Is(err, ErrInvalidEdge))
	})

	t.Run("Unwrap reaches a wrapped sentinel", func(t *testing.T) {
		err := NewEdgeError("Post", "User", "author", "", fmt.Errorf("%w: kind(9)", ErrUnhandledEdge))
		assert.True(t, errors.Is(err, ErrUnhandledEdge))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewGenerationError("write", "Post.ts", "cannot write file", cause)
		assert.Equal(t, "veloxts: generation error in phase write (file: Post.ts): cannot write file: permission denied", err.Error())
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "model"}
		assert.Equal(t, "veloxts: generation error in phase model", err.Error())
	})

	t.Run("Is matches ErrGenerationFailed and the cause", func(t *testing.T) {
		err := NewGenerationError("model", "Post.ts", "", NewSchemaError("Post", "x", "", ErrUnmappedType))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, errors.Is(err, ErrInvalidSchema))
		assert.True(t, errors.Is(err, ErrUnmappedType))
	})
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isSchema bool
		isConfig bool
		isEdge   bool
		isGen    bool
	}{
		{name: "SchemaError", err: NewSchemaError("Post", "", "", nil), isSchema: true},
		{name: "ConfigError", err: NewConfigError("Target", nil, ""), isConfig: true},
		{name: "EdgeError", err: NewEdgeError("Post", "User", "author", "", nil), isEdge: true},
		{name: "GenerationError", err: NewGenerationError("write", "", "", nil), isGen: true},
		{name: "wrapped EdgeError", err: NewGenerationError("model", "", "", NewEdgeError("Post", "", "x", "", nil)), isEdge: true, isGen: true},
		{name: "plain error", err: errors.New("other")},
		{name: "nil", err: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isSchema, IsSchemaError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isEdge, IsEdgeError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("run: %w", NewGenerationError("model", "Post.ts", "", NewSchemaError("Post", "blob", "", ErrUnmappedType)))

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "Post.ts", genErr.File)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "blob", schemaErr.Field)
}
