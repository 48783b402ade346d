package field

import (
	"fmt"
	"strings"
)

// A Type represents a semantic field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeJSON
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeText
	TypeID
	TypeOther
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeArray
	TypeMap
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time",
	TypeJSON:    "json",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
	TypeEnum:    "enum",
	TypeString:  "string",
	TypeText:    "text",
	TypeID:      "id",
	TypeOther:   "other",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint:    "uint",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeArray:   "array",
	TypeMap:     "map",
}

// String returns the schema name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// Integer reports if the given type is an integral type.
func (t Type) Integer() bool {
	return t.Numeric() && t < TypeFloat32
}

// Float reports if the given type is a float type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// Composite reports if values of the type are built from other field types.
func (t Type) Composite() bool {
	return t == TypeArray || t == TypeMap
}

// aliases accepted by ParseType in addition to the canonical names.
var typeAliases = map[string]Type{
	"boolean":         TypeBool,
	"timestamp":       TypeTime,
	"datetime":        TypeTime,
	"naturallanguage": TypeText,
	"enumeration":     TypeEnum,
	"float":           TypeFloat64,
	"double":          TypeFloat64,
	"integer":         TypeInt,
	"list":            TypeArray,
	"custom":          TypeOther,
}

// ParseType returns the Type for the given schema name. Names are
// case-insensitive.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t := TypeBool; t < endTypes; t++ {
		if typeNames[t] == n {
			return t, nil
		}
	}
	if t, ok := typeAliases[n]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", name)
}

// TypeInfo holds the information regarding field type.
type TypeInfo struct {
	Type Type
	// Ident is the verbatim target type of a TypeOther field.
	Ident string
	// Nillable marks that the value may be null.
	Nillable bool
	// Enums holds the values of a TypeEnum field, in declaration order.
	Enums []string
	// Elem is the element type of TypeArray and the value type of TypeMap.
	Elem *TypeInfo
}

// String returns the string representation of a type.
func (t TypeInfo) String() string {
	switch t.Type {
	case TypeOther:
		if t.Ident != "" {
			return t.Ident
		}
	case TypeArray:
		if t.Elem != nil {
			return "[]" + t.Elem.String()
		}
	case TypeMap:
		if t.Elem != nil {
			return "map[string]" + t.Elem.String()
		}
	}
	return t.Type.String()
}

// Valid reports if the type and all of its element types are valid.
func (t TypeInfo) Valid() bool {
	if !t.Type.Valid() {
		return false
	}
	if t.Type.Composite() {
		return t.Elem != nil && t.Elem.Valid()
	}
	return true
}
