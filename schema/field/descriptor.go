package field

import (
	"errors"
	"fmt"
)

// A Descriptor for field configuration.
type Descriptor struct {
	Name       string    // field name.
	Info       *TypeInfo // field type info.
	Decorators []string  // verbatim decorator lines emitted above the accessor.
	Comment    string    // field comment.
	Err        error
}

// New returns a descriptor for the given field name and type.
func New(name string, t Type) *Descriptor {
	return &Descriptor{Name: name, Info: &TypeInfo{Type: t}}
}

// String returns a descriptor for a string field.
func String(name string) *Descriptor { return New(name, TypeString) }

// Text returns a descriptor for a long-form text field.
func Text(name string) *Descriptor { return New(name, TypeText) }

// Bool returns a descriptor for a bool field.
func Bool(name string) *Descriptor { return New(name, TypeBool) }

// Int returns a descriptor for an int field.
func Int(name string) *Descriptor { return New(name, TypeInt) }

// Int64 returns a descriptor for an int64 field.
func Int64(name string) *Descriptor { return New(name, TypeInt64) }

// Float64 returns a descriptor for a float64 field.
func Float64(name string) *Descriptor { return New(name, TypeFloat64) }

// Time returns a descriptor for a timestamp field.
func Time(name string) *Descriptor { return New(name, TypeTime) }

// ID returns a descriptor for an identifier field.
func ID(name string) *Descriptor { return New(name, TypeID) }

// Enum returns a descriptor for an enum field with the given values.
func Enum(name string, values ...string) *Descriptor {
	d := New(name, TypeEnum)
	d.Info.Enums = values
	if len(values) == 0 {
		d.Err = errors.New("missing values for enum field")
	}
	return d
}

// Array returns a descriptor for a list field of the given element type.
func Array(name string, elem *TypeInfo) *Descriptor {
	d := New(name, TypeArray)
	d.Info.Elem = elem
	return d
}

// Map returns a descriptor for a string-keyed map field of the given value type.
func Map(name string, elem *TypeInfo) *Descriptor {
	d := New(name, TypeMap)
	d.Info.Elem = elem
	return d
}

// Other returns a descriptor for a field with a verbatim target type.
func Other(name, ident string) *Descriptor {
	d := New(name, TypeOther)
	d.Info.Ident = ident
	if ident == "" {
		d.Err = errors.New("missing type identifier for custom field")
	}
	return d
}

// Nillable marks the field value as nullable.
func (d *Descriptor) Nillable() *Descriptor {
	d.Info.Nillable = true
	return d
}

// Decorate appends verbatim decorator lines to the field.
func (d *Descriptor) Decorate(lines ...string) *Descriptor {
	d.Decorators = append(d.Decorators, lines...)
	return d
}

// Describe sets the field comment.
func (d *Descriptor) Describe(c string) *Descriptor {
	d.Comment = c
	return d
}

// Validate returns the first error recorded on the descriptor, or an
// error if the descriptor is structurally incomplete.
func (d *Descriptor) Validate() error {
	switch {
	case d.Err != nil:
		return fmt.Errorf("field %q: %w", d.Name, d.Err)
	case d.Name == "":
		return errors.New("field name cannot be empty")
	case d.Info == nil:
		return fmt.Errorf("missing type info for field %q", d.Name)
	}
	return nil
}
