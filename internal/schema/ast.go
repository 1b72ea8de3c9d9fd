// Package schema parses interface-description (SDL) text into a typed AST.
package schema

// DeclKind identifies one of the six type declaration forms.
type DeclKind int

const (
	DeclObject DeclKind = iota
	DeclInterface
	DeclUnion
	DeclEnum
	DeclInputObject
	DeclScalar
)

func (k DeclKind) String() string {
	switch k {
	case DeclObject:
		return "object"
	case DeclInterface:
		return "interface"
	case DeclUnion:
		return "union"
	case DeclEnum:
		return "enum"
	case DeclInputObject:
		return "input"
	case DeclScalar:
		return "scalar"
	}
	return "unknown"
}

// Document is the result of a successful schema parse: the declarations in
// source order plus the designated root operation types and directive
// definitions.
type Document struct {
	Types      []TypeDecl     `json:"types"`
	Directives []DirectiveDef `json:"directives,omitempty"`

	Query        string `json:"query,omitempty"`
	Mutation     string `json:"mutation,omitempty"`
	Subscription string `json:"subscription,omitempty"`
}

// TypeDecl is a single type declaration. Which attribute slices are
// populated depends on Kind: objects and interfaces carry Fields, unions
// carry PossibleTypes, enums carry EnumValues, input objects carry
// InputFields, scalars carry only the name and description.
type TypeDecl struct {
	Kind        DeclKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`

	Interfaces    []string     `json:"interfaces,omitempty"`
	Fields        []Field      `json:"fields,omitempty"`
	PossibleTypes []string     `json:"possibleTypes,omitempty"`
	EnumValues    []EnumValue  `json:"enumValues,omitempty"`
	InputFields   []InputField `json:"inputFields,omitempty"`
}

// Field is an output field on an object or interface declaration.
type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Args              []InputField `json:"args,omitempty"`
	Type              *TypeRef     `json:"type"`
	Deprecated        bool         `json:"deprecated,omitempty"`
	DeprecationReason string       `json:"deprecationReason,omitempty"`
}

// InputField is a named, typed input position: an argument on a field or a
// field of an input object.
type InputField struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        *TypeRef `json:"type"`
	Default     *Value   `json:"default,omitempty"`
}

// EnumValue is one member of an enum declaration.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Deprecated        bool   `json:"deprecated,omitempty"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
}

// DirectiveDef is a directive declaration: name, allowed locations and
// arguments.
type DirectiveDef struct {
	Name      string       `json:"name"`
	Locations []string     `json:"locations"`
	Args      []InputField `json:"args,omitempty"`
}

// Directive is a directive applied at a use site, e.g. @deprecated.
type Directive struct {
	Name string     `json:"name"`
	Args []Argument `json:"args,omitempty"`
}

// Argument is a named value at a call or directive site.
type Argument struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}
