package edge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxts/schema/edge"
)

func TestForeignKeyTo(t *testing.T) {
	d := edge.ForeignKeyTo("comments", "Comment", "post").Describe("Comments of the post")
	require.NoError(t, d.Validate())
	assert.Equal(t, "comments", d.Name)
	assert.Equal(t, edge.ForeignKey, d.Kind)
	assert.Equal(t, "Comment", d.Type)
	assert.Equal(t, "post", d.Inverse.Name)
	assert.Equal(t, "Comments of the post", d.Comment)
}

func TestFieldTo(t *testing.T) {
	d := edge.FieldTo("author", "User").QueryType("AuthorQuery")
	require.NoError(t, d.Validate())
	assert.Equal(t, edge.Field, d.Kind)
	assert.Nil(t, d.Inverse)
	assert.Equal(t, "AuthorQuery", d.Query)
}

func TestJunctionTo(t *testing.T) {
	d := edge.JunctionTo("tags", "Tag")
	require.NoError(t, d.Validate())
	assert.Equal(t, edge.Junction, d.Kind)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		d    *edge.Descriptor
		want string
	}{
		{"recorded error", &edge.Descriptor{Name: "x", Kind: edge.Field, Type: "X", Err: errors.New("boom")}, "boom"},
		{"empty name", edge.FieldTo("", "User"), "edge name cannot be empty"},
		{"invalid kind", &edge.Descriptor{Name: "x", Type: "X"}, "invalid kind invalid"},
		{"out of range kind", &edge.Descriptor{Name: "x", Kind: edge.Kind(9), Type: "X"}, "invalid kind kind(9)"},
		{"missing type", edge.FieldTo("x", ""), "missing referenced type"},
		{"nil inverse", &edge.Descriptor{Name: "x", Kind: edge.ForeignKey, Type: "X"}, "requires an inverse name"},
		{"empty inverse", edge.ForeignKeyTo("x", "X", ""), "requires an inverse name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.d.Validate(), tt.want)
		})
	}

	// An explicit query type stands in for the referenced type.
	assert.NoError(t, edge.FieldTo("x", "").QueryType("XQuery").Validate())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "foreign_key", edge.ForeignKey.String())
	assert.Equal(t, "field", edge.Field.String())
	assert.Equal(t, "junction", edge.Junction.String())
	assert.Equal(t, "invalid", edge.KindInvalid.String())
	assert.Equal(t, "kind(42)", edge.Kind(42).String())
	assert.False(t, edge.KindInvalid.Valid())
	assert.False(t, edge.Kind(42).Valid())
	assert.True(t, edge.Junction.Valid())
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]edge.Kind{
		"foreign_key": edge.ForeignKey,
		"foreignKey":  edge.ForeignKey,
		"FK":          edge.ForeignKey,
		"field":       edge.Field,
		"junction":    edge.Junction,
		"m2m":         edge.Junction,
	} {
		got, err := edge.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := edge.ParseKind("through")
	assert.Error(t, err)
}
