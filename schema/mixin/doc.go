// Package mixin provides the base mixin implementation for schemas.
//
// A mixin is a reusable set of fields and edges that can be shared by
// multiple schema definitions. Mixin fields and edges come first in the
// generated model, in the order the mixins are listed.
//
// To create a custom mixin, embed Schema and override the methods you need:
//
//	type Owned struct {
//	    mixin.Schema
//	}
//
//	func (Owned) Fields() []*field.Descriptor {
//	    return []*field.Descriptor{
//	        field.ID("owner_id"),
//	    }
//	}
//
//	func (Owned) Edges() []*edge.Descriptor {
//	    return []*edge.Descriptor{
//	        edge.FieldTo("owner", "User"),
//	    }
//	}
//
// Using mixins:
//
//	func (Post) Mixin() []veloxts.Mixin {
//	    return []veloxts.Mixin{
//	        mixin.Time{},
//	        mixin.DecorateFields(Owned{}, "@Indexed()"),
//	    }
//	}
package mixin
