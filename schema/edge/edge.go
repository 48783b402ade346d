package edge

import (
	"errors"
	"fmt"
	"strings"
)

// A Kind is the discriminant of an edge. The set of kinds is closed;
// code dispatching on edges switches over every kind declared here.
type Kind uint8

// List of edge kinds.
const (
	KindInvalid Kind = iota
	// ForeignKey is a reference owned by another model through a foreign-key
	// column pointing at this model. Resolved through the inverse relation.
	ForeignKey
	// Field is a reference stored in a local field of this model.
	Field
	// Junction is a many-to-many reference kept in a junction table.
	Junction
	endKinds
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	ForeignKey:  "foreign_key",
	Field:       "field",
	Junction:    "junction",
}

// String returns the schema name of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports if the kind is a known edge kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < endKinds
}

// ParseKind returns the Kind for the given schema name. Both snake_case and
// camelCase spellings are accepted ("foreign_key", "foreignKey").
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	switch n {
	case "foreignkey", "fk":
		return ForeignKey, nil
	case "field":
		return Field, nil
	case "junction", "m2m":
		return Junction, nil
	}
	return KindInvalid, fmt.Errorf("edge: unknown kind %q", name)
}

// Inverse describes the relation on the other side of an edge.
type Inverse struct {
	// Name of the inverse relation (e.g. the foreign-key field on the
	// referencing model).
	Name string
}

// A Descriptor for edge configuration.
type Descriptor struct {
	Name    string   // edge name.
	Kind    Kind     // edge kind.
	Type    string   // type of the referenced model.
	Inverse *Inverse // inverse relation, required for ForeignKey edges.
	Query   string   // query type name; derived from Type when empty.
	Comment string   // edge comment.
	Err     error
}

// ForeignKeyTo returns a foreign-key edge descriptor to the given type,
// resolved through the inverse relation named ref.
func ForeignKeyTo(name, typ, ref string) *Descriptor {
	return &Descriptor{Name: name, Kind: ForeignKey, Type: typ, Inverse: &Inverse{Name: ref}}
}

// FieldTo returns a field edge descriptor to the given type.
func FieldTo(name, typ string) *Descriptor {
	return &Descriptor{Name: name, Kind: Field, Type: typ}
}

// JunctionTo returns a junction edge descriptor to the given type.
func JunctionTo(name, typ string) *Descriptor {
	return &Descriptor{Name: name, Kind: Junction, Type: typ}
}

// QueryType sets the query type name of the edge.
func (d *Descriptor) QueryType(name string) *Descriptor {
	d.Query = name
	return d
}

// Describe sets the edge comment.
func (d *Descriptor) Describe(c string) *Descriptor {
	d.Comment = c
	return d
}

// Validate returns an error if the descriptor is structurally incomplete.
func (d *Descriptor) Validate() error {
	switch {
	case d.Err != nil:
		return fmt.Errorf("edge %q: %w", d.Name, d.Err)
	case d.Name == "":
		return errors.New("edge name cannot be empty")
	case !d.Kind.Valid():
		return fmt.Errorf("edge %q: invalid kind %s", d.Name, d.Kind)
	case d.Type == "" && d.Query == "":
		return fmt.Errorf("edge %q: missing referenced type", d.Name)
	case d.Kind == ForeignKey && (d.Inverse == nil || d.Inverse.Name == ""):
		return fmt.Errorf("edge %q: foreign-key edge requires an inverse name", d.Name)
	}
	return nil
}
