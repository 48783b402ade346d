package load

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/syssam/veloxts"
	"github.com/syssam/veloxts/schema/edge"
	"github.com/syssam/veloxts/schema/field"
)

// Schema represents a veloxts.Interface that was loaded from a schema
// document or a Go-defined schema.
type Schema struct {
	Name   string         `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Pos    string         `json:"-" yaml:"-" msgpack:"-"`
	Fields Fields         `json:"fields,omitempty" yaml:"fields,omitempty" msgpack:"fields,omitempty"`
	Edges  Edges          `json:"edges,omitempty" yaml:"edges,omitempty" msgpack:"edges,omitempty"`
	Config veloxts.Config `json:"config,omitempty" yaml:"config,omitempty" msgpack:"config,omitempty"`
}

// Fields is an ordered list of loaded fields. In YAML and JSON documents it
// may be written either as a list or as a mapping keyed by field name; the
// mapping order is preserved.
type Fields []*Field

// Edges is an ordered list of loaded edges, decoded like Fields.
type Edges []*Edge

// Field represents a field that was loaded from a schema document.
type Field struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Type       string   `json:"type" yaml:"type" msgpack:"type"`
	Nillable   bool     `json:"nillable,omitempty" yaml:"nillable,omitempty" msgpack:"nillable,omitempty"`
	Values     []string `json:"values,omitempty" yaml:"values,omitempty" msgpack:"values,omitempty"`
	Ident      string   `json:"ident,omitempty" yaml:"ident,omitempty" msgpack:"ident,omitempty"`
	Of         *Field   `json:"of,omitempty" yaml:"of,omitempty" msgpack:"of,omitempty"`
	Decorators []string `json:"decorators,omitempty" yaml:"decorators,omitempty" msgpack:"decorators,omitempty"`
	Comment    string   `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
}

// Edge represents an edge that was loaded from a schema document.
type Edge struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Kind    string   `json:"kind" yaml:"kind" msgpack:"kind"`
	To      string   `json:"to,omitempty" yaml:"to,omitempty" msgpack:"to,omitempty"`
	Inverse *Inverse `json:"inverse,omitempty" yaml:"inverse,omitempty" msgpack:"inverse,omitempty"`
	Query   string   `json:"query,omitempty" yaml:"query,omitempty" msgpack:"query,omitempty"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
}

// Inverse represents the inverse relation of a loaded edge. Documents may
// write it as a bare name or as an object with a name key.
type Inverse struct {
	Name string `json:"name" yaml:"name" msgpack:"name"`
}

// NewField creates a loaded field from field descriptor.
func NewField(fd *field.Descriptor) (*Field, error) {
	if err := fd.Validate(); err != nil {
		return nil, err
	}
	f := fieldOf(fd.Info)
	f.Name = fd.Name
	f.Decorators = fd.Decorators
	f.Comment = fd.Comment
	return f, nil
}

func fieldOf(info *field.TypeInfo) *Field {
	f := &Field{
		Type:     info.Type.String(),
		Nillable: info.Nillable,
		Values:   info.Enums,
		Ident:    info.Ident,
	}
	if info.Elem != nil {
		f.Of = fieldOf(info.Elem)
	}
	return f
}

// NewEdge creates a loaded edge from edge descriptor.
// It returns an error if the descriptor contains an error.
func NewEdge(ed *edge.Descriptor) (*Edge, error) {
	if ed.Err != nil {
		return nil, fmt.Errorf("edge %q: %w", ed.Name, ed.Err)
	}
	ne := &Edge{
		Name:    ed.Name,
		Kind:    ed.Kind.String(),
		To:      ed.Type,
		Query:   ed.Query,
		Comment: ed.Comment,
	}
	if ed.Inverse != nil {
		ne.Inverse = &Inverse{Name: ed.Inverse.Name}
	}
	return ne, nil
}

// TypeInfo resolves the semantic type of the loaded field.
func (f *Field) TypeInfo() (*field.TypeInfo, error) {
	t, err := field.ParseType(f.Type)
	if err != nil {
		return nil, err
	}
	info := &field.TypeInfo{
		Type:     t,
		Nillable: f.Nillable,
		Enums:    f.Values,
		Ident:    f.Ident,
	}
	if t.Composite() {
		if f.Of == nil {
			return nil, fmt.Errorf("missing element type for %s field", t)
		}
		if info.Elem, err = f.Of.TypeInfo(); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// Descriptor converts the loaded field back to a field descriptor.
func (f *Field) Descriptor() (*field.Descriptor, error) {
	info, err := f.TypeInfo()
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return &field.Descriptor{
		Name:       f.Name,
		Info:       info,
		Decorators: f.Decorators,
		Comment:    f.Comment,
	}, nil
}

// Descriptor converts the loaded edge back to an edge descriptor. The kind
// is resolved here, structural checks are left to the generator.
func (e *Edge) Descriptor() (*edge.Descriptor, error) {
	k, err := edge.ParseKind(e.Kind)
	if err != nil {
		return nil, fmt.Errorf("edge %q: %w", e.Name, err)
	}
	d := &edge.Descriptor{
		Name:    e.Name,
		Kind:    k,
		Type:    e.To,
		Query:   e.Query,
		Comment: e.Comment,
	}
	if e.Inverse != nil {
		d.Inverse = &edge.Inverse{Name: e.Inverse.Name}
	}
	return d, nil
}

// MarshalSchema encodes the veloxts.Interface into a JSON
// that can be decoded into the Schema objects declared above.
func MarshalSchema(schema veloxts.Interface) (b []byte, err error) {
	s, err := FromInterface(schema)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// FromInterface loads a Go-defined schema. The schema name is the name of
// its underlying type. Mixin fields and edges come first, in mixin order.
func FromInterface(schema veloxts.Interface) (*Schema, error) {
	s := &Schema{
		Name: indirect(reflect.TypeOf(schema)).Name(),
	}
	cfg, err := safeConfig(schema)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	s.Config = cfg
	mixins, err := safeMixin(schema)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	for i, mx := range mixins {
		if err := s.add(mx); err != nil {
			return nil, fmt.Errorf("schema %q: mixin %d (%T): %w", s.Name, i, mx, err)
		}
	}
	if err := s.add(schema); err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	return s, nil
}

// add appends the fields and edges of a schema or a mixin.
func (s *Schema) add(m veloxts.Mixin) error {
	fields, err := safeFields(m)
	if err != nil {
		return err
	}
	for _, fd := range fields {
		f, err := NewField(fd)
		if err != nil {
			return err
		}
		s.Fields = append(s.Fields, f)
	}
	edges, err := safeEdges(m)
	if err != nil {
		return err
	}
	for _, ed := range edges {
		e, err := NewEdge(ed)
		if err != nil {
			return err
		}
		s.Edges = append(s.Edges, e)
	}
	return nil
}

// UnmarshalSchema decodes the given buffer to a loaded schema.
func UnmarshalSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	return s, nil
}

// safeFields wraps the schema.Fields method with recover to ensure no panics in marshaling.
func safeFields(schema veloxts.Mixin) (fields []*field.Descriptor, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("schema.Fields panics: %v", v)
			fields = nil
		}
	}()
	return schema.Fields(), nil
}

// safeEdges wraps the schema.Edges method with recover to ensure no panics in marshaling.
func safeEdges(schema veloxts.Mixin) (edges []*edge.Descriptor, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("schema.Edges panics: %v", v)
			edges = nil
		}
	}()
	return schema.Edges(), nil
}

// safeMixin wraps the schema.Mixin method with recover to ensure no panics in marshaling.
func safeMixin(schema veloxts.Interface) (mixins []veloxts.Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("schema.Mixin panics: %v", v)
			mixins = nil
		}
	}()
	return schema.Mixin(), nil
}

// safeConfig wraps the schema.Config method with recover to ensure no panics in marshaling.
func safeConfig(schema veloxts.Interface) (cfg veloxts.Config, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("schema.Config panics: %v", v)
		}
	}()
	return schema.Config(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
