// Package golang generates Go type declarations from a parsed schema.
package golang

import (
	"strings"

	"github.com/gensmith-dev/gensmith/internal/codegen/writer"
	"github.com/gensmith-dev/gensmith/internal/schema"
	"github.com/gensmith-dev/gensmith/internal/template"
)

const enumTemplate = "type {{name}} string\n" +
	"\n" +
	"const (\n" +
	"{{#values}}\t{{enum}}{{value}} {{enum}} = \"{{value}}\"\n{{/values}}" +
	")"

const structTemplate = "type {{name}} struct {\n" +
	"{{#fields}}\t{{goName}} {{goType}} `json:\"{{jsonName}}{{#optional}},omitempty{{/optional}}\"`\n{{/fields}}" +
	"}"

const interfaceTemplate = "type {{name}} interface {\n" +
	"{{#fields}}\t{{goName}}() {{goType}}\n{{/fields}}" +
	"}"

const unionTemplate = "// {{name}} is one of: {{members}}.\n" +
	"type {{name}} interface {\n" +
	"\tis{{name}}()\n" +
	"}"

// Generator renders Go code from a schema session.
type Generator struct {
	packageName string
}

// NewGenerator creates a Go code generator for the given package name.
func NewGenerator(packageName string) *Generator {
	if packageName == "" {
		packageName = "types"
	}
	return &Generator{packageName: packageName}
}

// Language returns the target language name.
func (g *Generator) Language() string { return "go" }

// FileExtension returns the generated file extension.
func (g *Generator) FileExtension() string { return ".go" }

// Generate renders Go declarations for every type in the session's
// schema, in source order.
func (g *Generator) Generate(sess *schema.Session) ([]byte, error) {
	doc, err := sess.Schema()
	if err != nil {
		return nil, err
	}

	w := writer.New("\t")
	w.Linef("package %s", g.packageName)

	for _, decl := range doc.Types {
		w.Blank()
		w.Doc(decl.Description)
		switch decl.Kind {
		case schema.DeclEnum:
			w.Raw(template.Render(enumTemplate, enumContext(decl)))
		case schema.DeclObject, schema.DeclInputObject:
			w.Raw(template.Render(structTemplate, structContext(decl)))
		case schema.DeclInterface:
			w.Raw(template.Render(interfaceTemplate, structContext(decl)))
		case schema.DeclUnion:
			w.Raw(template.Render(unionTemplate, template.Context{
				"name":    exportName(decl.Name),
				"members": strings.Join(decl.PossibleTypes, " | "),
			}))
		case schema.DeclScalar:
			w.Linef("type %s string", exportName(decl.Name))
		}
	}

	return w.Bytes(), nil
}

func enumContext(decl schema.TypeDecl) template.Context {
	values := make([]map[string]any, len(decl.EnumValues))
	for i, v := range decl.EnumValues {
		values[i] = map[string]any{"value": v.Name}
	}
	return template.Context{
		"name":   exportName(decl.Name),
		"enum":   exportName(decl.Name),
		"values": values,
	}
}

func structContext(decl schema.TypeDecl) template.Context {
	var fields []map[string]any
	for _, f := range decl.Fields {
		fields = append(fields, fieldContext(f.Name, f.Type))
	}
	for _, f := range decl.InputFields {
		fields = append(fields, fieldContext(f.Name, f.Type))
	}
	return template.Context{
		"name":   exportName(decl.Name),
		"fields": fields,
	}
}

func fieldContext(name string, ref *schema.TypeRef) map[string]any {
	return map[string]any{
		"goName":   exportName(name),
		"goType":   goType(ref),
		"jsonName": name,
		"optional": !ref.IsNonNull(),
	}
}

// goType maps a type reference to its Go representation. Non-null
// references map to the bare type; nullable non-list references become
// pointers so absence stays representable.
func goType(ref *schema.TypeRef) string {
	if ref.IsNonNull() {
		return bareType(ref.OfType)
	}
	bare := bareType(ref)
	if strings.HasPrefix(bare, "[]") {
		return bare
	}
	return "*" + bare
}

func bareType(ref *schema.TypeRef) string {
	switch ref.Kind {
	case schema.RefList:
		return "[]" + goType(ref.OfType)
	case schema.RefNonNull:
		return bareType(ref.OfType)
	default:
		return scalarType(ref.Name)
	}
}

func scalarType(name string) string {
	switch name {
	case "String", "ID":
		return "string"
	case "Int":
		return "int"
	case "Float":
		return "float64"
	case "Boolean":
		return "bool"
	default:
		return exportName(name)
	}
}

func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
