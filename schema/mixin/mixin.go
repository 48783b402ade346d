package mixin

import (
	"github.com/syssam/veloxts"
	"github.com/syssam/veloxts/schema/edge"
	"github.com/syssam/veloxts/schema/field"
)

// Schema is the default implementation for the veloxts.Mixin interface.
// It should be embedded in all custom mixin definitions.
//
// Example:
//
//	type MyMixin struct {
//	    mixin.Schema
//	}
//
//	func (MyMixin) Fields() []*field.Descriptor {
//	    return []*field.Descriptor{
//	        field.String("custom_field"),
//	    }
//	}
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []*field.Descriptor { return nil }

// Edges returns the edges of the mixin.
func (Schema) Edges() []*edge.Descriptor { return nil }

// schema mixin must implement `Mixin` interface.
var _ veloxts.Mixin = (*Schema)(nil)

// Time adds created_at and updated_at timestamp fields to a schema.
//
// Example:
//
//	func (User) Mixin() []veloxts.Mixin {
//	    return []veloxts.Mixin{
//	        mixin.Time{},
//	    }
//	}
type Time struct {
	Schema
}

// Fields returns the time tracking fields.
func (Time) Fields() []*field.Descriptor {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// CreateTime adds only the created_at timestamp field to a schema.
type CreateTime struct {
	Schema
}

// Fields returns the created_at field.
func (CreateTime) Fields() []*field.Descriptor {
	return []*field.Descriptor{
		field.Time("created_at").
			Describe("Timestamp when the entity was created"),
	}
}

// UpdateTime adds only the updated_at timestamp field to a schema.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at field.
func (UpdateTime) Fields() []*field.Descriptor {
	return []*field.Descriptor{
		field.Time("updated_at").
			Describe("Timestamp when the entity was last updated"),
	}
}

// SoftDelete adds a nullable deleted_at field. A null value means the
// entity is not deleted.
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete field.
func (SoftDelete) Fields() []*field.Descriptor {
	return []*field.Descriptor{
		field.Time("deleted_at").
			Nillable().
			Describe("Timestamp when the entity was soft deleted"),
	}
}

// TimeSoftDelete combines Time and SoftDelete mixins.
type TimeSoftDelete struct {
	Schema
}

// Fields returns all timestamp and soft delete fields.
func (TimeSoftDelete) Fields() []*field.Descriptor {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// DecorateFields wraps a mixin and adds decorator lines to all its fields.
//
// Example:
//
//	mixin.DecorateFields(
//	    mixin.Time{},
//	    "@ReadOnly()",
//	)
func DecorateFields(m veloxts.Mixin, decorators ...string) veloxts.Mixin {
	return fieldDecorator{Mixin: m, decorators: decorators}
}

type fieldDecorator struct {
	veloxts.Mixin
	decorators []string
}

func (d fieldDecorator) Fields() []*field.Descriptor {
	fields := d.Mixin.Fields()
	for _, f := range fields {
		f.Decorate(d.decorators...)
	}
	return fields
}

// QueryEdges wraps a mixin and sets the query type of all its edges
// that do not declare one.
func QueryEdges(m veloxts.Mixin, query string) veloxts.Mixin {
	return edgeQuery{Mixin: m, query: query}
}

type edgeQuery struct {
	veloxts.Mixin
	query string
}

func (q edgeQuery) Edges() []*edge.Descriptor {
	edges := q.Mixin.Edges()
	for _, e := range edges {
		if e.Query == "" {
			e.QueryType(q.query)
		}
	}
	return edges
}
