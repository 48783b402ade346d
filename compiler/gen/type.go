package gen

import (
	"fmt"

	"github.com/go-openapi/inflect"

	"github.com/syssam/veloxts"
	"github.com/syssam/veloxts/compiler/load"
	"github.com/syssam/veloxts/schema/edge"
	"github.com/syssam/veloxts/schema/field"
)

// The following types are the read-only input of the model generator.
// Fields, edges and imports are kept in slices; their order is the order
// of the generated members.
type (
	// Schema describes one model type.
	Schema struct {
		// Name holds the schema name. The model type name is derived from it.
		Name string
		// Fields holds the fields of the model, in emission order.
		Fields []*Field
		// Edges holds the edges of the model, in emission order.
		Edges []*Edge
		// Config holds the class and module emission config.
		Config veloxts.Config
		// Pos is the source position of the schema, if known.
		Pos string
	}

	// Field is a typed attribute of a model.
	Field struct {
		// Name is the key of the field in the model data record.
		Name string
		// Type holds the semantic type of the field.
		Type *field.TypeInfo
		// Decorators are verbatim source lines emitted above the getter.
		Decorators []string
	}

	// Edge is a relationship to another model. Kind is the discriminant
	// of the closed set of edge variants.
	Edge struct {
		// Name is the key of the edge.
		Name string
		// Kind of the edge.
		Kind edge.Kind
		// Type is the model type the edge points to.
		Type string
		// Inverse holds the inverse relation of foreign-key edges.
		Inverse *edge.Inverse
		// Query is the explicit query type name, if any.
		Query string
	}
)

// ModelTypeName returns the name of the generated class.
func (s *Schema) ModelTypeName() string {
	return UpcaseAt(s.Name, 0)
}

// FileName returns the name of the generated file.
func (s *Schema) FileName() string {
	return s.ModelTypeName() + ".ts"
}

// Field returns the field with the given name, if it exists.
func (s *Schema) Field(name string) (*Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// QueryTypeName returns the name of the query class used to load the
// rows the edge points to.
func (e *Edge) QueryTypeName() string {
	if e.Query != "" {
		return e.Query
	}
	return e.Type + "Query"
}

// IsForeignKey reports if the edge is resolved through a foreign key
// owned by the referenced model.
func (e *Edge) IsForeignKey() bool { return e.Kind == edge.ForeignKey }

// NewSchema creates the generator input from a loaded schema. Field types
// and edge kinds are resolved; the query type of an edge without an
// explicit one is derived from its camelized target type.
func NewSchema(ls *load.Schema) (*Schema, error) {
	if ls.Name == "" {
		return nil, NewSchemaError("", "", "schema name cannot be empty", nil)
	}
	s := &Schema{
		Name:   ls.Name,
		Config: ls.Config,
		Pos:    ls.Pos,
		Fields: make([]*Field, 0, len(ls.Fields)),
		Edges:  make([]*Edge, 0, len(ls.Edges)),
	}
	model := s.ModelTypeName()
	if !IsValidClassName(model) {
		return nil, NewSchemaError(model, "", fmt.Sprintf("invalid model type name %q", model), nil)
	}
	names := make(map[string]struct{}, len(ls.Fields)+len(ls.Edges))
	for _, lf := range ls.Fields {
		if lf.Name == "" {
			return nil, NewSchemaError(model, "", "field name cannot be empty", nil)
		}
		if _, ok := names[lf.Name]; ok {
			return nil, NewSchemaError(model, lf.Name, fmt.Sprintf("field %q redeclared", lf.Name), nil)
		}
		names[lf.Name] = struct{}{}
		info, err := lf.TypeInfo()
		if err != nil {
			return nil, NewSchemaError(model, lf.Name, "resolve type", err)
		}
		s.Fields = append(s.Fields, &Field{
			Name:       lf.Name,
			Type:       info,
			Decorators: lf.Decorators,
		})
	}
	edges := make(map[string]struct{}, len(ls.Edges))
	for _, le := range ls.Edges {
		d, err := le.Descriptor()
		if err != nil {
			return nil, NewEdgeError(model, le.To, le.Name, "resolve kind", err)
		}
		if err := d.Validate(); err != nil {
			return nil, NewEdgeError(model, le.To, le.Name, "", err)
		}
		if _, ok := edges[d.Name]; ok {
			return nil, NewEdgeError(model, d.Type, d.Name, fmt.Sprintf("edge %q redeclared", d.Name), nil)
		}
		edges[d.Name] = struct{}{}
		e := &Edge{
			Name:    d.Name,
			Kind:    d.Kind,
			Type:    inflect.Camelize(d.Type),
			Inverse: d.Inverse,
			Query:   d.Query,
		}
		s.Edges = append(s.Edges, e)
	}
	return s, nil
}
