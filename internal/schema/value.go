package schema

import (
	"strconv"
	"strings"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	ValueVariable ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
	ValueBoolean
	ValueNull
	ValueEnum
	ValueList
	ValueObject
)

// Value is a literal value as written in schema or operation text: a
// variable reference, scalar literal, enum literal, list or object. Object
// entries keep insertion order for deterministic re-emission.
type Value struct {
	Kind ValueKind `json:"kind"`

	Name   string  `json:"name,omitempty"` // variable or enum literal
	Int    int64   `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
	Str    string  `json:"string,omitempty"`
	Bool   bool    `json:"bool,omitempty"`
	List   []Value `json:"list,omitempty"`
	Fields []ObjectField `json:"fields,omitempty"`
}

// ObjectField is one name/value entry of an object value.
type ObjectField struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// String renders the value back to its source form.
func (v Value) String() string {
	switch v.Kind {
	case ValueVariable:
		return "$" + v.Name
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueString:
		return `"` + v.Str + `"`
	case ValueBoolean:
		return strconv.FormatBool(v.Bool)
	case ValueNull:
		return "null"
	case ValueEnum:
		return v.Name
	case ValueList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueObject:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.Name + ": " + f.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}
