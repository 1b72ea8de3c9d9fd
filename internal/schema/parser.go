package schema

import (
	"strconv"

	"github.com/gensmith-dev/gensmith/internal/lexer"
)

// ParseSchema parses SDL text into a schema Document. The parse is
// fail-fast: the first unexpected token aborts with a typed *Error and no
// partial result.
func ParseSchema(input string) (*Document, error) {
	p := &parser{tokens: lexer.Tokenize(input)}
	return p.parseDocument()
}

// ParseOperations parses an operations file (queries, mutations,
// subscriptions) into the operation sequence, in source order.
func ParseOperations(input string) ([]Operation, error) {
	p := &parser{tokens: lexer.Tokenize(input)}
	return p.parseOperations()
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *parser) isPunct(text string) bool {
	tok := p.peek()
	return tok != nil && tok.Kind == lexer.KindPunctuator && tok.Text == text
}

func (p *parser) acceptPunct(text string) bool {
	if p.isPunct(text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectPunct(text string) error {
	tok := p.peek()
	if tok == nil {
		return &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
	}
	if tok.Kind != lexer.KindPunctuator || tok.Text != text {
		return &Error{Kind: ErrExpectedPunctuator, Detail: text, Pos: tok.Pos}
	}
	p.pos++
	return nil
}

func (p *parser) expectName() (string, error) {
	tok := p.peek()
	if tok == nil {
		return "", &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
	}
	if tok.Kind != lexer.KindName {
		return "", &Error{Kind: ErrExpectedName, Pos: tok.Pos}
	}
	p.pos++
	return tok.Text, nil
}

func (p *parser) endPos() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Pos + len(last.Text)
}

// acceptDescription consumes a leading string token, if present, as the
// description of the construct that follows.
func (p *parser) acceptDescription() string {
	if tok := p.peek(); tok != nil && tok.Kind == lexer.KindString {
		p.pos++
		return tok.Text
	}
	return ""
}

// ---- document ----

func (p *parser) parseDocument() (*Document, error) {
	doc := &Document{}
	seen := map[string]bool{}

	for p.peek() != nil {
		desc := p.acceptDescription()

		tok := p.peek()
		if tok == nil {
			return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
		}
		if tok.Kind != lexer.KindName {
			return nil, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}

		switch tok.Text {
		case "type", "interface", "union", "enum", "input", "scalar":
			decl, err := p.parseTypeDecl(desc)
			if err != nil {
				return nil, err
			}
			if seen[decl.Name] {
				return nil, &Error{Kind: ErrInvalidToken, Detail: decl.Name, Pos: tok.Pos}
			}
			seen[decl.Name] = true
			doc.Types = append(doc.Types, *decl)
		case "schema":
			p.pos++
			if err := p.parseSchemaBlock(doc); err != nil {
				return nil, err
			}
		case "directive":
			p.pos++
			def, err := p.parseDirectiveDef()
			if err != nil {
				return nil, err
			}
			doc.Directives = append(doc.Directives, *def)
		default:
			return nil, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}
	}

	return doc, nil
}

func (p *parser) parseTypeDecl(desc string) (*TypeDecl, error) {
	keyword := p.next().Text

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	decl := &TypeDecl{Name: name, Description: desc}

	switch keyword {
	case "type", "interface":
		if keyword == "type" {
			decl.Kind = DeclObject
		} else {
			decl.Kind = DeclInterface
		}
		if err := p.parseImplements(decl); err != nil {
			return nil, err
		}
		if _, err := p.parseDirectives(); err != nil {
			return nil, err
		}
		if err := p.expectPunct("{"); err != nil {
			return nil, err
		}
		if err := p.parseFields(decl); err != nil {
			return nil, err
		}
	case "union":
		decl.Kind = DeclUnion
		if _, err := p.parseDirectives(); err != nil {
			return nil, err
		}
		if err := p.expectPunct("="); err != nil {
			return nil, err
		}
		p.acceptPunct("|")
		for {
			member, err := p.expectName()
			if err != nil {
				return nil, err
			}
			decl.PossibleTypes = append(decl.PossibleTypes, member)
			if !p.acceptPunct("|") {
				break
			}
		}
	case "enum":
		decl.Kind = DeclEnum
		if _, err := p.parseDirectives(); err != nil {
			return nil, err
		}
		if err := p.expectPunct("{"); err != nil {
			return nil, err
		}
		if err := p.parseEnumValues(decl); err != nil {
			return nil, err
		}
	case "input":
		decl.Kind = DeclInputObject
		if _, err := p.parseDirectives(); err != nil {
			return nil, err
		}
		if err := p.expectPunct("{"); err != nil {
			return nil, err
		}
		for !p.acceptPunct("}") {
			if p.peek() == nil {
				return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
			}
			field, err := p.parseInputField()
			if err != nil {
				return nil, err
			}
			decl.InputFields = append(decl.InputFields, *field)
		}
	case "scalar":
		decl.Kind = DeclScalar
		if _, err := p.parseDirectives(); err != nil {
			return nil, err
		}
	}

	return decl, nil
}

func (p *parser) parseImplements(decl *TypeDecl) error {
	if tok := p.peek(); tok == nil || tok.Kind != lexer.KindName || tok.Text != "implements" {
		return nil
	}
	p.pos++
	p.acceptPunct("&")
	for {
		name, err := p.expectName()
		if err != nil {
			return err
		}
		decl.Interfaces = append(decl.Interfaces, name)
		if !p.acceptPunct("&") {
			return nil
		}
	}
}

func (p *parser) parseFields(decl *TypeDecl) error {
	for !p.acceptPunct("}") {
		if p.peek() == nil {
			return &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
		}
		field, err := p.parseField()
		if err != nil {
			return err
		}
		decl.Fields = append(decl.Fields, *field)
	}
	return nil
}

func (p *parser) parseField() (*Field, error) {
	field := &Field{Description: p.acceptDescription()}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	field.Name = name

	if p.acceptPunct("(") {
		for !p.acceptPunct(")") {
			if p.peek() == nil {
				return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
			}
			arg, err := p.parseInputField()
			if err != nil {
				return nil, err
			}
			field.Args = append(field.Args, *arg)
		}
	}

	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	ref, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	field.Type = ref

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	field.Deprecated, field.DeprecationReason = deprecationOf(directives)

	return field, nil
}

func (p *parser) parseInputField() (*InputField, error) {
	field := &InputField{Description: p.acceptDescription()}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	field.Name = name

	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	ref, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	field.Type = ref

	if p.acceptPunct("=") {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		field.Default = &value
	}

	if _, err := p.parseDirectives(); err != nil {
		return nil, err
	}

	return field, nil
}

func (p *parser) parseEnumValues(decl *TypeDecl) error {
	for !p.acceptPunct("}") {
		if p.peek() == nil {
			return &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
		}
		value := EnumValue{Description: p.acceptDescription()}
		name, err := p.expectName()
		if err != nil {
			return err
		}
		value.Name = name

		directives, err := p.parseDirectives()
		if err != nil {
			return err
		}
		value.Deprecated, value.DeprecationReason = deprecationOf(directives)

		decl.EnumValues = append(decl.EnumValues, value)
	}
	return nil
}

func (p *parser) parseSchemaBlock(doc *Document) error {
	if err := p.expectPunct("{"); err != nil {
		return err
	}
	for !p.acceptPunct("}") {
		if p.peek() == nil {
			return &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
		}
		tok := p.peek()
		role, err := p.expectName()
		if err != nil {
			return err
		}
		if err := p.expectPunct(":"); err != nil {
			return err
		}
		target, err := p.expectName()
		if err != nil {
			return err
		}
		switch role {
		case "query":
			doc.Query = target
		case "mutation":
			doc.Mutation = target
		case "subscription":
			doc.Subscription = target
		default:
			return &Error{Kind: ErrInvalidToken, Detail: role, Pos: tok.Pos}
		}
	}
	return nil
}

func (p *parser) parseDirectiveDef() (*DirectiveDef, error) {
	if err := p.expectPunct("@"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	def := &DirectiveDef{Name: name}

	if p.acceptPunct("(") {
		for !p.acceptPunct(")") {
			if p.peek() == nil {
				return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
			}
			arg, err := p.parseInputField()
			if err != nil {
				return nil, err
			}
			def.Args = append(def.Args, *arg)
		}
	}

	on, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if on != "on" {
		return nil, &Error{Kind: ErrInvalidToken, Detail: on, Pos: p.tokens[p.pos-1].Pos}
	}

	p.acceptPunct("|")
	for {
		location, err := p.expectName()
		if err != nil {
			return nil, err
		}
		def.Locations = append(def.Locations, location)
		if !p.acceptPunct("|") {
			break
		}
	}

	return def, nil
}

// parseDirectives consumes zero or more use-site directives.
func (p *parser) parseDirectives() ([]Directive, error) {
	var directives []Directive
	for p.acceptPunct("@") {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		directive := Directive{Name: name}
		if p.acceptPunct("(") {
			for !p.acceptPunct(")") {
				if p.peek() == nil {
					return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
				}
				arg, err := p.parseArgument()
				if err != nil {
					return nil, err
				}
				directive.Args = append(directive.Args, *arg)
			}
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

func (p *parser) parseArgument() (*Argument, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &Argument{Name: name, Value: value}, nil
}

func deprecationOf(directives []Directive) (bool, string) {
	for _, d := range directives {
		if d.Name != "deprecated" {
			continue
		}
		for _, arg := range d.Args {
			if arg.Name == "reason" && arg.Value.Kind == ValueString {
				return true, arg.Value.Str
			}
		}
		return true, ""
	}
	return false, ""
}

// ---- type references ----

// parseTypeRef handles the three wrapper forms. A leading '[' opens a list
// whose inner reference parses recursively; trailing '!' wraps the
// preceding reference as non-null, so "[String!]!" nests as
// nonNull(list(nonNull(named("String")))).
func (p *parser) parseTypeRef() (*TypeRef, error) {
	tok := p.peek()
	if tok == nil {
		return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
	}

	var ref *TypeRef
	switch {
	case tok.Kind == lexer.KindPunctuator && tok.Text == "[":
		p.pos++
		inner, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct("]"); err != nil {
			return nil, err
		}
		ref = ListRef(inner)
	case tok.Kind == lexer.KindName:
		p.pos++
		ref = NamedRef(tok.Text)
	default:
		return nil, &Error{Kind: ErrExpectedTypeRef, Pos: tok.Pos}
	}

	for p.acceptPunct("!") {
		ref = NonNullRef(ref)
	}
	return ref, nil
}

// ---- values ----

func (p *parser) parseValue() (Value, error) {
	tok := p.peek()
	if tok == nil {
		return Value{}, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
	}

	switch tok.Kind {
	case lexer.KindInt:
		p.pos++
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}
		return Value{Kind: ValueInt, Int: n}, nil
	case lexer.KindFloat:
		p.pos++
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Value{}, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}
		return Value{Kind: ValueFloat, Float: f}, nil
	case lexer.KindString:
		p.pos++
		return Value{Kind: ValueString, Str: tok.Text}, nil
	case lexer.KindName:
		p.pos++
		switch tok.Text {
		case "true":
			return Value{Kind: ValueBoolean, Bool: true}, nil
		case "false":
			return Value{Kind: ValueBoolean, Bool: false}, nil
		case "null":
			return Value{Kind: ValueNull}, nil
		default:
			return Value{Kind: ValueEnum, Name: tok.Text}, nil
		}
	case lexer.KindPunctuator:
		switch tok.Text {
		case "$":
			p.pos++
			name, err := p.expectName()
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: ValueVariable, Name: name}, nil
		case "[":
			p.pos++
			value := Value{Kind: ValueList, List: []Value{}}
			for !p.acceptPunct("]") {
				if p.peek() == nil {
					return Value{}, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
				}
				element, err := p.parseValue()
				if err != nil {
					return Value{}, err
				}
				value.List = append(value.List, element)
			}
			return value, nil
		case "{":
			p.pos++
			value := Value{Kind: ValueObject, Fields: []ObjectField{}}
			for !p.acceptPunct("}") {
				if p.peek() == nil {
					return Value{}, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
				}
				name, err := p.expectName()
				if err != nil {
					return Value{}, err
				}
				if err := p.expectPunct(":"); err != nil {
					return Value{}, err
				}
				entry, err := p.parseValue()
				if err != nil {
					return Value{}, err
				}
				value.Fields = append(value.Fields, ObjectField{Name: name, Value: entry})
			}
			return value, nil
		}
	}

	return Value{}, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
}

// ---- operations ----

func (p *parser) parseOperations() ([]Operation, error) {
	operations := []Operation{}
	for p.peek() != nil {
		tok := p.peek()
		if tok.Kind != lexer.KindName {
			return nil, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}
		switch tok.Text {
		case "query", "mutation", "subscription":
			op, err := p.parseOperation(OperationType(tok.Text))
			if err != nil {
				return nil, err
			}
			operations = append(operations, *op)
		default:
			return nil, &Error{Kind: ErrInvalidToken, Detail: tok.Text, Pos: tok.Pos}
		}
	}
	return operations, nil
}

func (p *parser) parseOperation(opType OperationType) (*Operation, error) {
	p.pos++ // operation keyword

	op := &Operation{Type: opType}

	if tok := p.peek(); tok != nil && tok.Kind == lexer.KindName {
		p.pos++
		op.Name = tok.Text
	}

	if p.acceptPunct("(") {
		for !p.acceptPunct(")") {
			if p.peek() == nil {
				return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
			}
			variable, err := p.parseVariableDef()
			if err != nil {
				return nil, err
			}
			op.Variables = append(op.Variables, *variable)
		}
	}

	selections, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	op.Selections = selections
	return op, nil
}

func (p *parser) parseVariableDef() (*VariableDef, error) {
	if err := p.expectPunct("$"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	ref, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	variable := &VariableDef{Name: name, Type: ref}
	if p.acceptPunct("=") {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		variable.Default = &value
	}
	return variable, nil
}

func (p *parser) parseSelectionSet() (SelectionSet, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	set := SelectionSet{}
	for !p.acceptPunct("}") {
		if p.peek() == nil {
			return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
		}
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		set = append(set, *selection)
	}
	return set, nil
}

func (p *parser) parseSelection() (*Selection, error) {
	if p.acceptPunct("...") {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		return &Selection{Fragment: name}, nil
	}

	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	selection := &Selection{Name: name}

	// "alias: field": a colon after the first name promotes it to alias.
	if p.acceptPunct(":") {
		actual, err := p.expectName()
		if err != nil {
			return nil, err
		}
		selection.Alias = name
		selection.Name = actual
	}

	if p.acceptPunct("(") {
		for !p.acceptPunct(")") {
			if p.peek() == nil {
				return nil, &Error{Kind: ErrUnexpectedEOF, Pos: p.endPos()}
			}
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			selection.Args = append(selection.Args, *arg)
		}
	}

	if _, err := p.parseDirectives(); err != nil {
		return nil, err
	}

	if p.isPunct("{") {
		nested, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		selection.Selections = nested
	}

	return selection, nil
}
