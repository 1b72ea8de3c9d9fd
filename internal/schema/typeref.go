package schema

// TypeRefKind identifies one of the three type reference wrappers.
type TypeRefKind int

const (
	RefNamed TypeRefKind = iota
	RefList
	RefNonNull
)

// TypeRef is a recursive type reference: a finite chain of list and
// non-null wrappers terminating in exactly one named node. "[String!]!"
// parses as nonNull(list(nonNull(named("String")))).
type TypeRef struct {
	Kind   TypeRefKind `json:"kind"`
	Name   string      `json:"name,omitempty"`
	OfType *TypeRef    `json:"ofType,omitempty"`
}

// NamedRef returns a bare named reference.
func NamedRef(name string) *TypeRef {
	return &TypeRef{Kind: RefNamed, Name: name}
}

// ListRef wraps inner as a list reference.
func ListRef(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefList, OfType: inner}
}

// NonNullRef wraps inner as a non-null reference.
func NonNullRef(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefNonNull, OfType: inner}
}

// BaseName returns the name at the terminal named node, regardless of
// wrapper order or nesting depth.
func (r *TypeRef) BaseName() string {
	for r.Kind != RefNamed {
		r = r.OfType
	}
	return r.Name
}

// IsNonNull reports whether the outermost wrapper is non-null. An inner
// non-null ("[String!]") does not make the reference itself non-null.
func (r *TypeRef) IsNonNull() bool {
	return r.Kind == RefNonNull
}

// IsList reports whether a list wrapper occurs anywhere in the chain.
func (r *TypeRef) IsList() bool {
	for r != nil {
		if r.Kind == RefList {
			return true
		}
		r = r.OfType
	}
	return false
}

// String renders the reference back to SDL form.
func (r *TypeRef) String() string {
	switch r.Kind {
	case RefList:
		return "[" + r.OfType.String() + "]"
	case RefNonNull:
		return r.OfType.String() + "!"
	default:
		return r.Name
	}
}
