// Package document models an OpenAPI-style API description with lazy
// reference resolution. Parsing decodes a JSON payload straight into the
// model; the structural work sits in the Schema/Reference sum type and the
// AnyValue wrapper for free-form defaults and examples.
package document

import "encoding/json"

// Document is the root of a parsed API description.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Servers    []Server            `json:"servers,omitempty"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
}

// Info holds the document metadata block.
type Info struct {
	Title          string   `json:"title"`
	Version        string   `json:"version"`
	Description    string   `json:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty"`
	License        *License `json:"license,omitempty"`
}

// Contact identifies the API owner.
type Contact struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// License names the API license.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Server is one server entry.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem holds at most one operation per HTTP verb.
type PathItem struct {
	Get     *Operation `json:"get,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Options *Operation `json:"options,omitempty"`
	Head    *Operation `json:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
}

// Operations returns the verb/operation pairs present on the item, in a
// fixed verb order for deterministic iteration.
func (p PathItem) Operations() []VerbOperation {
	candidates := []VerbOperation{
		{"get", p.Get}, {"put", p.Put}, {"post", p.Post}, {"delete", p.Delete},
		{"options", p.Options}, {"head", p.Head}, {"patch", p.Patch},
	}
	present := make([]VerbOperation, 0, len(candidates))
	for _, c := range candidates {
		if c.Operation != nil {
			present = append(present, c)
		}
	}
	return present
}

// VerbOperation pairs an HTTP verb with its operation.
type VerbOperation struct {
	Verb      string
	Operation *Operation
}

// Operation is one HTTP operation on a path.
type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	OperationID string              `json:"operationId,omitempty"`
	Responses   map[string]Response `json:"responses,omitempty"`
}

// Response describes one status-code outcome.
type Response struct {
	Description string `json:"description"`
}

// Components holds the reusable schemas.
type Components struct {
	Schemas map[string]*SchemaOrRef `json:"schemas,omitempty"`
}

// Schema is an inline component schema.
type Schema struct {
	Type       string                  `json:"type,omitempty"`
	Properties map[string]*SchemaOrRef `json:"properties,omitempty"`
	Items      *SchemaOrRef            `json:"items,omitempty"`
	Required   []string                `json:"required,omitempty"`
	Default    *AnyValue               `json:"default,omitempty"`
	Example    *AnyValue               `json:"example,omitempty"`
}

// SchemaOrRef is the sum of an inline schema and a named reference.
// Decoding tries the "$ref" key first and falls back to an inline schema.
type SchemaOrRef struct {
	Ref    string
	Schema *Schema
}

// IsRef reports whether this side of the sum is the reference.
func (s *SchemaOrRef) IsRef() bool { return s.Ref != "" }

func (s *SchemaOrRef) UnmarshalJSON(data []byte) error {
	var ref struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &ref); err == nil && ref.Ref != "" {
		s.Ref = ref.Ref
		return nil
	}

	var inline Schema
	if err := json.Unmarshal(data, &inline); err != nil {
		return err
	}
	s.Schema = &inline
	return nil
}

func (s *SchemaOrRef) MarshalJSON() ([]byte, error) {
	if s.IsRef() {
		return json.Marshal(struct {
			Ref string `json:"$ref"`
		}{Ref: s.Ref})
	}
	return json.Marshal(s.Schema)
}
