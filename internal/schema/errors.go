package schema

import "fmt"

// ErrorKind enumerates the closed set of schema parse failures. Every
// variant is terminal: parse failures are deterministic for a given input,
// so nothing is retried.
type ErrorKind int

const (
	// ErrNoSchema is returned when generation runs against a session that
	// has no successful parse behind it.
	ErrNoSchema ErrorKind = iota
	// ErrExpectedName marks a position where a name token was required.
	ErrExpectedName
	// ErrExpectedTypeRef marks a position where a type reference was
	// required.
	ErrExpectedTypeRef
	// ErrExpectedPunctuator marks a missing structural character; Detail
	// carries the expected punctuator.
	ErrExpectedPunctuator
	// ErrInvalidToken marks a token the grammar has no use for; Detail
	// carries the offending text.
	ErrInvalidToken
	// ErrUnexpectedEOF marks input that ended mid-construct.
	ErrUnexpectedEOF
)

// Error is a schema parse failure. The message is rendered from the kind
// and detail alone and is part of the observable contract; callers match
// on Kind, humans read Error().
type Error struct {
	Kind   ErrorKind
	Detail string
	Pos    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNoSchema:
		return "no schema parsed yet"
	case ErrExpectedName:
		return "expected a name token"
	case ErrExpectedTypeRef:
		return "expected a type reference"
	case ErrExpectedPunctuator:
		return fmt.Sprintf("expected punctuator: %s", e.Detail)
	case ErrInvalidToken:
		return fmt.Sprintf("invalid token: %s", e.Detail)
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	}
	return "unknown schema error"
}

// ErrNoSchemaParsed is the sentinel returned when code generation is
// invoked before any successful parse.
var ErrNoSchemaParsed = &Error{Kind: ErrNoSchema}
