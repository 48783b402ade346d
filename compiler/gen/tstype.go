package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/veloxts/schema/field"
)

// tsTypes maps the scalar field types to their target-language types.
var tsTypes = [...]string{
	field.TypeBool:    "boolean",
	field.TypeTime:    "number",
	field.TypeJSON:    "unknown",
	field.TypeUUID:    "string",
	field.TypeBytes:   "Uint8Array",
	field.TypeString:  "string",
	field.TypeText:    "string",
	field.TypeID:      "string",
	field.TypeInt8:    "number",
	field.TypeInt16:   "number",
	field.TypeInt32:   "number",
	field.TypeInt:     "number",
	field.TypeInt64:   "bigint",
	field.TypeUint8:   "number",
	field.TypeUint16:  "number",
	field.TypeUint32:  "number",
	field.TypeUint:    "number",
	field.TypeUint64:  "bigint",
	field.TypeFloat32: "number",
	field.TypeFloat64: "number",
}

// TSType returns the target-language type expression of a field type.
// It fails with ErrUnmappedType for types that have no mapping.
func TSType(info *field.TypeInfo) (string, error) {
	if info == nil {
		return "", fmt.Errorf("%w: missing type info", ErrUnmappedType)
	}
	t, err := tsType(info)
	if err != nil {
		return "", err
	}
	if info.Nillable {
		t += " | null"
	}
	return t, nil
}

func tsType(info *field.TypeInfo) (string, error) {
	switch t := info.Type; t {
	case field.TypeEnum:
		if len(info.Enums) == 0 {
			return "", fmt.Errorf("%w: enum without values", ErrUnmappedType)
		}
		vs := make([]string, len(info.Enums))
		for i, v := range info.Enums {
			vs[i] = quote(v)
		}
		return strings.Join(vs, " | "), nil
	case field.TypeOther:
		if info.Ident == "" {
			return "", fmt.Errorf("%w: custom type without identifier", ErrUnmappedType)
		}
		return info.Ident, nil
	case field.TypeArray:
		elem, err := elemType(info)
		if err != nil {
			return "", err
		}
		return "ReadonlyArray<" + elem + ">", nil
	case field.TypeMap:
		elem, err := elemType(info)
		if err != nil {
			return "", err
		}
		return "{[key: string]: " + elem + "}", nil
	default:
		if int(t) < len(tsTypes) && tsTypes[t] != "" {
			return tsTypes[t], nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnmappedType, t)
	}
}

func elemType(info *field.TypeInfo) (string, error) {
	if info.Elem == nil {
		return "", fmt.Errorf("%w: %s without element type", ErrUnmappedType, info.Type)
	}
	return TSType(info.Elem)
}

// quote returns s as a single-quoted string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}
