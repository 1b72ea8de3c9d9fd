package schema

// OperationType is one of the three executable operation forms.
type OperationType string

const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)

// Operation is a single executable operation from an operations file.
type Operation struct {
	Type       OperationType `json:"type"`
	Name       string        `json:"name,omitempty"`
	Variables  []VariableDef `json:"variables,omitempty"`
	Selections SelectionSet  `json:"selections"`
}

// VariableDef declares an operation variable with its type and optional
// default.
type VariableDef struct {
	Name    string   `json:"name"`
	Type    *TypeRef `json:"type"`
	Default *Value   `json:"default,omitempty"`
}

// SelectionSet is an ordered sequence of selections. Sets nest to
// arbitrary depth; the strict bracket nesting of the source text makes
// cycles impossible.
type SelectionSet []Selection

// Selection is either a field selection or a fragment spread. A non-empty
// Fragment name marks a spread; every other field describes a field
// selection.
type Selection struct {
	Fragment string `json:"fragment,omitempty"`

	Alias      string       `json:"alias,omitempty"`
	Name       string       `json:"name,omitempty"`
	Args       []Argument   `json:"args,omitempty"`
	Selections SelectionSet `json:"selections,omitempty"`
}

// IsFragment reports whether the selection is a fragment spread.
func (s Selection) IsFragment() bool { return s.Fragment != "" }
