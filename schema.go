// Package veloxts holds the interfaces and the emission config shared by
// schema definitions and the velox-ts code generator.
package veloxts

import (
	"github.com/syssam/veloxts/schema/edge"
	"github.com/syssam/veloxts/schema/field"
)

// The Interface type describes the requirements for an exported type
// defined in the schema package. Schemas defined in Go embed Schema and
// override the methods they need:
//
//	type Post struct{ veloxts.Schema }
//
//	func (Post) Fields() []*field.Descriptor {
//		return []*field.Descriptor{
//			field.String("title"),
//		}
//	}
//
//	func (Post) Edges() []*edge.Descriptor {
//		return []*edge.Descriptor{
//			edge.ForeignKeyTo("author", "User", "posts").QueryType("UserQuery"),
//		}
//	}
type Interface interface {
	// Fields returns the fields of the schema, in emission order.
	Fields() []*field.Descriptor
	// Edges returns the edges of the schema, in emission order.
	Edges() []*edge.Descriptor
	// Config returns the emission config of the schema.
	Config() Config
	// Mixin returns the mixins of the schema. Their fields and edges are
	// emitted before the ones of the schema itself.
	Mixin() []Mixin
}

// The Mixin type describes a set of fields and edges shared by several
// schemas.
type Mixin interface {
	Fields() []*field.Descriptor
	Edges() []*edge.Descriptor
}

// Schema is the default implementation of Interface.
// It can be embedded in end-user schemas as follows:
//
//	type T struct {
//		veloxts.Schema
//	}
type Schema struct{}

// Fields of the schema.
func (Schema) Fields() []*field.Descriptor { return nil }

// Edges of the schema.
func (Schema) Edges() []*edge.Descriptor { return nil }

// Config of the schema.
func (Schema) Config() Config { return Config{} }

// Mixin of the schema.
func (Schema) Mixin() []Mixin { return nil }

// Config configures how the model class of a schema is emitted.
type Config struct {
	Class  ClassConfig  `json:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`
	Module ModuleConfig `json:"module,omitempty" yaml:"module,omitempty" msgpack:"module,omitempty"`
}

// ClassConfig holds the class-level emission options.
type ClassConfig struct {
	// Decorators are verbatim source lines emitted above the class declaration.
	Decorators []string `json:"decorators,omitempty" yaml:"decorators,omitempty" msgpack:"decorators,omitempty"`
}

// ModuleConfig holds the module-level emission options.
type ModuleConfig struct {
	// Imports are emitted after the base class import, in order.
	Imports []Import `json:"imports,omitempty" yaml:"imports,omitempty" msgpack:"imports,omitempty"`
}

// Import describes one module import of the generated file. Name and As are
// optional; an import with neither is emitted as "import from '<From>'".
type Import struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	As   string `json:"as,omitempty" yaml:"as,omitempty" msgpack:"as,omitempty"`
	From string `json:"from" yaml:"from" msgpack:"from"`
}

var _ Interface = (*Schema)(nil)
