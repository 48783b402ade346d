package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/veloxts"
	"github.com/syssam/veloxts/schema/edge"
)

// DefaultRuntimeModule is the module the Model base class is imported from.
const DefaultRuntimeModule = "@aphrodite/runtime/Model.js"

// indent of class members and of their bodies.
const (
	memberIndent = "  "
	bodyIndent   = memberIndent + memberIndent
)

// File is a generated source file.
type File struct {
	// Name of the file, relative to the output directory.
	Name string
	// Contents holds the full source text.
	Contents string
}

// ModelGenerator generates the model class of a single schema.
// It holds no state besides its input and is safe for concurrent use.
type ModelGenerator struct {
	schema  *Schema
	runtime string
}

// NewModelGenerator creates a generator for the given schema.
func NewModelGenerator(s *Schema) *ModelGenerator {
	return &ModelGenerator{schema: s, runtime: DefaultRuntimeModule}
}

// WithRuntimeModule sets the module the Model base class is imported from.
func (g *ModelGenerator) WithRuntimeModule(path string) *ModelGenerator {
	if path != "" {
		g.runtime = path
	}
	return g
}

// Gen generates the model file. Either the whole file is returned or an
// error naming the model and the failing field or edge.
func (g *ModelGenerator) Gen() (*File, error) {
	spec, err := g.ClassSpec()
	if err != nil {
		return nil, err
	}
	return &File{
		Name:     g.schema.FileName(),
		Contents: spec.Render(),
	}, nil
}

// ClassSpec builds the intermediate representation of the model class.
func (g *ModelGenerator) ClassSpec() (*ClassSpec, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	shape, err := g.DataShape()
	if err != nil {
		return nil, err
	}
	fields, err := g.fieldAccessors()
	if err != nil {
		return nil, err
	}
	edges, err := g.edgeAccessors()
	if err != nil {
		return nil, err
	}
	return &ClassSpec{
		BaseImport: fmt.Sprintf("import Model from %s;", quote(g.runtime)),
		Imports:    g.importLines(),
		Decorators: g.schema.Config.Class.Decorators,
		Name:       g.schema.ModelTypeName(),
		Shape:      shape,
		Fields:     fields,
		Edges:      edges,
	}, nil
}

// DataShape renders the fields as the record type used as the type
// parameter of the Model base class.
func (g *ModelGenerator) DataShape() (string, error) {
	if len(g.schema.Fields) == 0 {
		return "{}", nil
	}
	props := make([]string, 0, len(g.schema.Fields))
	for _, f := range g.schema.Fields {
		t, err := g.fieldType(f)
		if err != nil {
			return "", err
		}
		props = append(props, propertyKey(f.Name)+": "+t)
	}
	return "{\n" + memberIndent + strings.Join(props, ",\n"+memberIndent) + "\n}", nil
}

// ImportCode renders the module imports of the schema config, one per line.
func (g *ModelGenerator) ImportCode() string {
	return strings.Join(g.importLines(), "\n")
}

func (g *ModelGenerator) importLines() []string {
	imports := g.schema.Config.Module.Imports
	lines := make([]string, 0, len(imports))
	for _, imp := range imports {
		lines = append(lines, importLine(imp))
	}
	return lines
}

func importLine(imp veloxts.Import) string {
	var b strings.Builder
	b.WriteString("import ")
	if imp.Name != "" {
		b.WriteString(imp.Name + " ")
	}
	if imp.As != "" {
		b.WriteString("as " + imp.As + " ")
	}
	b.WriteString("from " + quote(imp.From))
	return b.String()
}

func (g *ModelGenerator) validate() error {
	if g.schema.Name == "" {
		return NewSchemaError("", "", "schema name cannot be empty", nil)
	}
	if model := g.schema.ModelTypeName(); !IsValidClassName(model) {
		return NewSchemaError(model, "", fmt.Sprintf("invalid model type name %q", model), nil)
	}
	for i, imp := range g.schema.Config.Module.Imports {
		if imp.From == "" {
			return NewSchemaError(g.schema.ModelTypeName(), "", fmt.Sprintf("import #%d has no module path", i), nil)
		}
	}
	return nil
}

// FieldCode renders one getter per field, in field order.
func (g *ModelGenerator) FieldCode() (string, error) {
	members, err := g.fieldAccessors()
	if err != nil {
		return "", err
	}
	return strings.Join(members, "\n\n"), nil
}

func (g *ModelGenerator) fieldAccessors() ([]string, error) {
	members := make([]string, 0, len(g.schema.Fields))
	for _, f := range g.schema.Fields {
		t, err := g.fieldType(f)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		writeDecorators(&b, f.Decorators)
		fmt.Fprintf(&b, "%sget%s(): %s {\n", memberIndent, UpcaseAt(f.Name, 0), t)
		fmt.Fprintf(&b, "%sreturn this.data%s;\n", bodyIndent, propertyAccess(f.Name))
		b.WriteString(memberIndent + "}")
		members = append(members, b.String())
	}
	return members, nil
}

func (g *ModelGenerator) fieldType(f *Field) (string, error) {
	t, err := TSType(f.Type)
	if err != nil {
		return "", NewSchemaError(g.schema.ModelTypeName(), f.Name, "", err)
	}
	return t, nil
}

// writeDecorators writes each decorator source line at member indentation.
// Empty decorators are skipped.
func writeDecorators(b *strings.Builder, decorators []string) {
	for _, d := range decorators {
		if strings.TrimSpace(d) == "" {
			continue
		}
		for _, line := range strings.Split(d, "\n") {
			b.WriteString(memberIndent + line + "\n")
		}
	}
}

// EdgeCode renders one query method per edge, in edge order.
func (g *ModelGenerator) EdgeCode() (string, error) {
	members, err := g.edgeAccessors()
	if err != nil {
		return "", err
	}
	return strings.Join(members, "\n\n"), nil
}

func (g *ModelGenerator) edgeAccessors() ([]string, error) {
	members := make([]string, 0, len(g.schema.Edges))
	for _, e := range g.schema.Edges {
		call, err := g.queryCall(e)
		if err != nil {
			return nil, err
		}
		q := e.QueryTypeName()
		var b strings.Builder
		fmt.Fprintf(&b, "%squery%s(): %s {\n", memberIndent, UpcaseAt(e.Name, 0), q)
		fmt.Fprintf(&b, "%sreturn %s.%s;\n", bodyIndent, q, call)
		b.WriteString(memberIndent + "}")
		members = append(members, b.String())
	}
	return members, nil
}

// queryCall returns the query factory call of an edge.
func (g *ModelGenerator) queryCall(e *Edge) (string, error) {
	switch e.Kind {
	case edge.ForeignKey:
		if e.Inverse == nil || e.Inverse.Name == "" {
			return "", NewEdgeError(g.schema.ModelTypeName(), e.Type, e.Name, "foreign-key edge without inverse relation", nil)
		}
		return fmt.Sprintf("fromForeignId(this.getId(), %s)", quote(e.Inverse.Name)), nil
	case edge.Field, edge.Junction:
		return fmt.Sprintf("fromId(this.get%sId())", UpcaseAt(e.Name, 0)), nil
	default:
		return "", NewEdgeError(g.schema.ModelTypeName(), e.Type, e.Name, "", fmt.Errorf("%w %s", ErrUnhandledEdge, e.Kind))
	}
}

// propertyKey renders a key of the data shape.
func propertyKey(key string) string {
	if IsValidPropertyAccessor(key) {
		return key
	}
	return quote(key)
}

// propertyAccess renders the access of a key on the data record.
func propertyAccess(key string) string {
	if IsValidPropertyAccessor(key) {
		return "." + key
	}
	return "[" + quote(key) + "]"
}

// ClassSpec is the intermediate representation of a generated model class.
// Members are pre-rendered and indented; Render only assembles them.
type ClassSpec struct {
	BaseImport string
	Imports    []string
	Decorators []string
	Name       string
	Shape      string
	Fields     []string
	Edges      []string
}

// Render assembles the source text of the class.
func (c *ClassSpec) Render() string {
	var b strings.Builder
	b.WriteString(c.BaseImport + "\n")
	for _, l := range c.Imports {
		b.WriteString(l + "\n")
	}
	for _, d := range c.Decorators {
		b.WriteString(d + "\n")
	}
	fmt.Fprintf(&b, "export default class %s\n%sextends Model<%s> {\n", c.Name, memberIndent, c.Shape)
	members := make([]string, 0, len(c.Fields)+len(c.Edges))
	members = append(members, c.Fields...)
	members = append(members, c.Edges...)
	for i, m := range members {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}
