package schema

// Session is the explicit handle produced by a successful parse and
// threaded into code generation. Generators that receive an empty session
// fail with ErrNoSchemaParsed; there is no hidden "last parse" state
// anywhere else.
//
// A Session is owned by a single generation task. Concurrent tasks each
// parse into their own session; nothing here needs locking under that
// discipline.
type Session struct {
	doc        *Document
	operations []Operation
}

// NewSession wraps a parsed schema document.
func NewSession(doc *Document) *Session {
	return &Session{doc: doc}
}

// ParseIntoSession parses SDL text and returns the session for it.
func ParseIntoSession(input string) (*Session, error) {
	doc, err := ParseSchema(input)
	if err != nil {
		return nil, err
	}
	return &Session{doc: doc}, nil
}

// Schema returns the parsed document, or ErrNoSchemaParsed when the
// session has no successful parse behind it.
func (s *Session) Schema() (*Document, error) {
	if s == nil || s.doc == nil {
		return nil, ErrNoSchemaParsed
	}
	return s.doc, nil
}

// AddOperations attaches parsed operations to the session.
func (s *Session) AddOperations(ops []Operation) {
	s.operations = append(s.operations, ops...)
}

// Operations returns the operations attached so far, in order.
func (s *Session) Operations() []Operation {
	if s == nil {
		return nil
	}
	return s.operations
}
