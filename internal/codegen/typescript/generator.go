// Package typescript generates TypeScript type declarations from a parsed
// schema.
package typescript

import (
	"strings"

	"github.com/gensmith-dev/gensmith/internal/codegen/writer"
	"github.com/gensmith-dev/gensmith/internal/schema"
	"github.com/gensmith-dev/gensmith/internal/template"
)

const enumTemplate = "export enum {{name}} {\n" +
	"{{#values}}  {{value}} = \"{{value}}\",\n{{/values}}" +
	"}"

const interfaceTemplate = "export interface {{name}} {\n" +
	"{{#fields}}  {{tsName}}{{#optional}}?{{/optional}}: {{tsType}};\n{{/fields}}" +
	"}"

const unionTemplate = "export type {{name}} = {{members}};"

// Generator renders TypeScript code from a schema session.
type Generator struct {
	namespace string
}

// NewGenerator creates a TypeScript generator. The namespace is kept for
// header comments only; declarations are module-level exports.
func NewGenerator(namespace string) *Generator {
	return &Generator{namespace: namespace}
}

// Language returns the target language name.
func (g *Generator) Language() string { return "typescript" }

// FileExtension returns the generated file extension.
func (g *Generator) FileExtension() string { return ".ts" }

// Generate renders TypeScript declarations for every type in the
// session's schema, in source order.
func (g *Generator) Generate(sess *schema.Session) ([]byte, error) {
	doc, err := sess.Schema()
	if err != nil {
		return nil, err
	}

	w := writer.New("  ")
	first := true
	for _, decl := range doc.Types {
		if !first {
			w.Blank()
		}
		first = false

		if decl.Description != "" {
			w.Linef("/** %s */", decl.Description)
		}
		switch decl.Kind {
		case schema.DeclEnum:
			w.Raw(template.Render(enumTemplate, enumContext(decl)))
		case schema.DeclObject, schema.DeclInterface, schema.DeclInputObject:
			w.Raw(template.Render(interfaceTemplate, interfaceContext(decl)))
		case schema.DeclUnion:
			w.Raw(template.Render(unionTemplate, template.Context{
				"name":    decl.Name,
				"members": strings.Join(decl.PossibleTypes, " | "),
			}))
		case schema.DeclScalar:
			w.Linef("export type %s = string;", decl.Name)
		}
	}

	return w.Bytes(), nil
}

func enumContext(decl schema.TypeDecl) template.Context {
	values := make([]map[string]any, len(decl.EnumValues))
	for i, v := range decl.EnumValues {
		values[i] = map[string]any{"value": v.Name}
	}
	return template.Context{"name": decl.Name, "values": values}
}

func interfaceContext(decl schema.TypeDecl) template.Context {
	var fields []map[string]any
	for _, f := range decl.Fields {
		fields = append(fields, fieldContext(f.Name, f.Type))
	}
	for _, f := range decl.InputFields {
		fields = append(fields, fieldContext(f.Name, f.Type))
	}
	return template.Context{"name": decl.Name, "fields": fields}
}

func fieldContext(name string, ref *schema.TypeRef) map[string]any {
	return map[string]any{
		"tsName":   name,
		"tsType":   tsType(ref),
		"optional": !ref.IsNonNull(),
	}
}

func tsType(ref *schema.TypeRef) string {
	switch ref.Kind {
	case schema.RefNonNull:
		return tsType(ref.OfType)
	case schema.RefList:
		inner := tsType(ref.OfType)
		if strings.ContainsAny(inner, " |") {
			return "(" + inner + ")[]"
		}
		return inner + "[]"
	default:
		switch ref.Name {
		case "String", "ID":
			return "string"
		case "Int", "Float":
			return "number"
		case "Boolean":
			return "boolean"
		default:
			return ref.Name
		}
	}
}
