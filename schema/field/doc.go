// Package field provides the semantic field types understood by velox-ts
// and small builders for describing model fields.
//
// Field keys are emitted as-is in the generated data shape, while accessor
// names are derived by upper-casing the first character of the key:
//
//	field.String("title")      // data shape: title: string, getter: getTitle()
//	field.Int("view-count")    // data shape: 'view-count': number, getter: getView-count()
//
// # Field Types
//
//	field.String("name")
//	field.Text("body")
//	field.Bool("published")
//	field.Int("count")
//	field.Int64("big_number")   // bigint
//	field.Time("created_at")    // epoch milliseconds
//	field.Enum("status", "draft", "live")
//	field.Array("tags", &field.TypeInfo{Type: field.TypeString})
//	field.Map("meta", &field.TypeInfo{Type: field.TypeJSON})
//	field.Other("amount", "Decimal")
//
// # Options
//
//	field.String("email").
//	    Nillable().                        // string | null
//	    Decorate("@Sensitive()")           // emitted above getEmail()
//
// Schema documents name types by their String() form; ParseType also accepts
// a few aliases such as "boolean", "timestamp" and "enumeration".
package field
