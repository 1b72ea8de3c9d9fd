package lexer

// Kind classifies a token produced by Tokenize.
type Kind int

const (
	// KindName is an identifier run, including keyword-like names such as
	// "type" or "enum". Keywords are not special at this level; the parser
	// disambiguates them from context.
	KindName Kind = iota

	// KindInt is a numeric literal with no fractional or exponent part.
	KindInt

	// KindFloat is a numeric literal containing '.' or an exponent marker.
	KindFloat

	// KindString is a double-quoted literal. Text holds the content between
	// the quotes, passed through verbatim.
	KindString

	// KindPunctuator is a structural character ("{", "!", "...") or any
	// character the lexer did not recognize. The parser decides validity.
	KindPunctuator

	// KindComment is a '#' line comment. The scanner classifies comment
	// runs with this kind but never emits them into the token stream.
	KindComment
)

// Token is a single lexical unit. Tokens are owned by the slice returned
// from Tokenize and are consumed and discarded by the parser.
type Token struct {
	Kind Kind
	Text string
	Pos  int // byte offset of the token's first character
}

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindPunctuator:
		return "punctuator"
	case KindComment:
		return "comment"
	}
	return "unknown"
}
