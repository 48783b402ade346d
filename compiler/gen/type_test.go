package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxts"
	"github.com/syssam/veloxts/compiler/load"
	"github.com/syssam/veloxts/schema/edge"
	"github.com/syssam/veloxts/schema/field"
)

func TestNewSchema(t *testing.T) {
	require := require.New(t)
	ls := &load.Schema{
		Name: "blog_post",
		Pos:  "schema/blog_post.yaml",
		Fields: load.Fields{
			{Name: "title", Type: "string", Decorators: []string{"@Searchable()"}},
			{Name: "tags", Type: "list", Of: &load.Field{Type: "string"}},
			{Name: "bio", Type: "text", Nillable: true},
		},
		Edges: load.Edges{
			{Name: "author", Kind: "field", To: "user"},
			{Name: "comments", Kind: "foreign_key", To: "blog_comment", Inverse: &load.Inverse{Name: "post"}},
			{Name: "tags", Kind: "m2m", To: "tag", Query: "PostTagQuery"},
		},
		Config: veloxts.Config{Class: veloxts.ClassConfig{Decorators: []string{"@Entity()"}}},
	}
	s, err := NewSchema(ls)
	require.NoError(err)
	require.Equal("blog_post", s.Name)
	require.Equal("Blog_post", s.ModelTypeName())
	require.Equal("Blog_post.ts", s.FileName())
	require.Equal("schema/blog_post.yaml", s.Pos)
	require.Equal([]string{"@Entity()"}, s.Config.Class.Decorators)

	require.Len(s.Fields, 3)
	require.Equal("title", s.Fields[0].Name)
	require.Equal(field.TypeString, s.Fields[0].Type.Type)
	require.Equal([]string{"@Searchable()"}, s.Fields[0].Decorators)
	require.Equal(field.TypeArray, s.Fields[1].Type.Type)
	require.Equal(field.TypeString, s.Fields[1].Type.Elem.Type)
	require.True(s.Fields[2].Type.Nillable)
	f, ok := s.Field("bio")
	require.True(ok)
	require.Equal(field.TypeText, f.Type.Type)
	_, ok = s.Field("missing")
	require.False(ok)

	require.Len(s.Edges, 3)
	require.Equal(edge.Field, s.Edges[0].Kind)
	require.Equal("User", s.Edges[0].Type)
	require.Equal("UserQuery", s.Edges[0].QueryTypeName())
	require.False(s.Edges[0].IsForeignKey())
	require.Equal(edge.ForeignKey, s.Edges[1].Kind)
	require.Equal("BlogComment", s.Edges[1].Type)
	require.Equal("post", s.Edges[1].Inverse.Name)
	require.True(s.Edges[1].IsForeignKey())
	require.Equal(edge.Junction, s.Edges[2].Kind)
	require.Equal("PostTagQuery", s.Edges[2].QueryTypeName())
}

func TestNewSchema_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema *load.Schema
		target error
	}{
		{
			name:   "empty name",
			schema: &load.Schema{},
			target: ErrInvalidSchema,
		},
		{
			name:   "path in name",
			schema: &load.Schema{Name: "../escaped"},
			target: ErrInvalidSchema,
		},
		{
			name:   "name with a space",
			schema: &load.Schema{Name: "blog post"},
			target: ErrInvalidSchema,
		},
		{
			name:   "name starting with a digit",
			schema: &load.Schema{Name: "9lives"},
			target: ErrInvalidSchema,
		},
		{
			name:   "unknown field type",
			schema: &load.Schema{Name: "Post", Fields: load.Fields{{Name: "body", Type: "blob"}}},
			target: ErrInvalidSchema,
		},
		{
			name:   "array without element type",
			schema: &load.Schema{Name: "Post", Fields: load.Fields{{Name: "tags", Type: "array"}}},
			target: ErrInvalidSchema,
		},
		{
			name:   "duplicate field",
			schema: &load.Schema{Name: "Post", Fields: load.Fields{{Name: "a", Type: "int"}, {Name: "a", Type: "string"}}},
			target: ErrInvalidSchema,
		},
		{
			name:   "empty field name",
			schema: &load.Schema{Name: "Post", Fields: load.Fields{{Type: "int"}}},
			target: ErrInvalidSchema,
		},
		{
			name:   "unknown edge kind",
			schema: &load.Schema{Name: "Post", Edges: load.Edges{{Name: "x", Kind: "through", To: "X"}}},
			target: ErrInvalidEdge,
		},
		{
			name:   "foreign key without inverse",
			schema: &load.Schema{Name: "Post", Edges: load.Edges{{Name: "comments", Kind: "fk", To: "Comment"}}},
			target: ErrInvalidEdge,
		},
		{
			name:   "edge without target",
			schema: &load.Schema{Name: "Post", Edges: load.Edges{{Name: "x", Kind: "field"}}},
			target: ErrInvalidEdge,
		},
		{
			name: "duplicate edge",
			schema: &load.Schema{Name: "Post", Edges: load.Edges{
				{Name: "x", Kind: "field", To: "X"},
				{Name: "x", Kind: "junction", To: "Y"},
			}},
			target: ErrInvalidEdge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.schema)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestNewSchema_ErrorsNameModelType(t *testing.T) {
	_, err := NewSchema(&load.Schema{Name: "post", Edges: load.Edges{{Name: "author", Kind: "fk", To: "user"}}})
	var eerr *EdgeError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "Post", eerr.Model)
	assert.Contains(t, err.Error(), "(Post -> user)")

	_, err = NewSchema(&load.Schema{Name: "post", Fields: load.Fields{{Name: "body", Type: "blob"}}})
	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "Post", serr.Model)

	_, err = NewSchema(&load.Schema{Name: "../escaped"})
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, `veloxts: schema error on type ../escaped: invalid model type name "../escaped"`, err.Error())
}
