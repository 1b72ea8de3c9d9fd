package document

import (
	"encoding/json"
	"strings"
)

// supportedTypes is the closed set of schema types the model accepts.
var supportedTypes = map[string]bool{
	"string":  true,
	"integer": true,
	"number":  true,
	"boolean": true,
	"array":   true,
	"object":  true,
}

// Parse decodes a JSON API description into the Document model and
// validates its component schemas. A payload that is not JSON (e.g. a
// YAML serialization) fails fast with the "format not supported" error
// rather than a best-effort parse.
func Parse(data []byte) (*Document, error) {
	if !looksLikeJSON(data) {
		return nil, ErrUnsupportedFormat
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Kind: ErrInvalidSchema, Detail: err.Error()}
	}

	if doc.Components != nil {
		for name, entry := range doc.Components.Schemas {
			if err := validateSchemaOrRef(name, entry); err != nil {
				return nil, err
			}
		}
	}

	return &doc, nil
}

// looksLikeJSON checks that the first significant byte opens a JSON
// object or array.
func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func validateSchemaOrRef(name string, entry *SchemaOrRef) error {
	if entry == nil {
		return &Error{Kind: ErrInvalidSchema, Detail: name + " is empty"}
	}
	if entry.IsRef() {
		return nil // resolved lazily
	}
	return validateSchema(name, entry.Schema)
}

func validateSchema(name string, schema *Schema) error {
	if schema == nil {
		return &Error{Kind: ErrInvalidSchema, Detail: name + " is empty"}
	}
	if schema.Type != "" && !supportedTypes[schema.Type] {
		return &Error{Kind: ErrUnsupportedType, Detail: schema.Type}
	}
	if schema.Type == "array" && schema.Items == nil {
		return &Error{Kind: ErrInvalidSchema, Detail: name + ": array type requires items"}
	}
	for propName, prop := range schema.Properties {
		if err := validateSchemaOrRef(name+"."+propName, prop); err != nil {
			return err
		}
	}
	if schema.Items != nil {
		if err := validateSchemaOrRef(name+".items", schema.Items); err != nil {
			return err
		}
	}
	return nil
}

const schemaPointerPrefix = "#/components/schemas/"

// Resolve looks up a reference pointer against the document's components.
// Resolution is lazy: pointers are only checked when asked for, and a
// missing target fails with "reference not found" carrying the original
// pointer text. A reference chain is followed until an inline schema is
// reached.
func (d *Document) Resolve(pointer string) (*Schema, error) {
	if d == nil {
		return nil, ErrNoDocumentParsed
	}

	seen := map[string]bool{}
	current := pointer
	for {
		if seen[current] {
			return nil, &Error{Kind: ErrReferenceNotFound, Detail: pointer}
		}
		seen[current] = true

		name, ok := strings.CutPrefix(current, schemaPointerPrefix)
		if !ok || name == "" || strings.Contains(name, "/") {
			return nil, &Error{Kind: ErrReferenceNotFound, Detail: pointer}
		}
		if d.Components == nil {
			return nil, &Error{Kind: ErrReferenceNotFound, Detail: pointer}
		}
		entry, found := d.Components.Schemas[name]
		if !found || entry == nil {
			return nil, &Error{Kind: ErrReferenceNotFound, Detail: pointer}
		}
		if !entry.IsRef() {
			return entry.Schema, nil
		}
		current = entry.Ref
	}
}

// ResolveEntry returns the inline schema behind a SchemaOrRef, following
// the reference against the document when needed.
func (d *Document) ResolveEntry(entry *SchemaOrRef) (*Schema, error) {
	if entry == nil {
		return nil, &Error{Kind: ErrInvalidSchema, Detail: "empty schema entry"}
	}
	if entry.IsRef() {
		return d.Resolve(entry.Ref)
	}
	return entry.Schema, nil
}
