package document

import "fmt"

// ErrorKind enumerates the closed set of document parse/resolve failures.
type ErrorKind int

const (
	// ErrNoDocument is returned when generation runs with no parsed
	// document behind it.
	ErrNoDocument ErrorKind = iota
	// ErrInvalidSchema marks a structurally invalid component schema;
	// Detail carries the reason.
	ErrInvalidSchema
	// ErrUnsupportedType marks a schema type outside the supported set;
	// Detail carries the type name.
	ErrUnsupportedType
	// ErrFormatNotSupported marks a payload in a serialization the model
	// does not decode (e.g. YAML).
	ErrFormatNotSupported
	// ErrReferenceNotFound marks a $ref pointer with no target; Detail
	// carries the original pointer text.
	ErrReferenceNotFound
)

// Error is a document failure. Messages render deterministically from the
// kind and detail and are stable contract text.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNoDocument:
		return "no document parsed yet"
	case ErrInvalidSchema:
		return fmt.Sprintf("invalid schema: %s", e.Detail)
	case ErrUnsupportedType:
		return fmt.Sprintf("unsupported type: %s", e.Detail)
	case ErrFormatNotSupported:
		return "format not supported"
	case ErrReferenceNotFound:
		return fmt.Sprintf("reference not found: %s", e.Detail)
	}
	return "unknown document error"
}

// ErrNoDocumentParsed is the sentinel for generation before any parse.
var ErrNoDocumentParsed = &Error{Kind: ErrNoDocument}

// ErrUnsupportedFormat is the sentinel for non-JSON payloads.
var ErrUnsupportedFormat = &Error{Kind: ErrFormatNotSupported}
