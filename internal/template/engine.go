// Package template implements a section-based template language rendered
// against a nested key/value context.
//
// Rendering has two pure phases: tokenizing the "{{...}}" delimiters and
// evaluating the token sequence. The engine never reports errors:
// unresolved keys produce empty output and malformed delimiters pass
// through as literal text.
package template

import (
	"fmt"
	"reflect"
	"strings"
)

// Context is the nested key/value mapping a template renders against.
type Context = map[string]any

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

type tokenType int

const (
	tokenText tokenType = iota
	tokenVariable
	tokenSectionOpen
	tokenSectionClose
	tokenInvertedOpen
	tokenComment
)

type token struct {
	typ  tokenType
	text string // literal text, or the variable/section key
}

// Render expands the template against the context. It never fails and is
// idempotent: the same template and context always produce byte-identical
// output.
func Render(template string, ctx Context) string {
	tokens := tokenize(template)
	var out strings.Builder
	evaluate(&out, tokens, ctx)
	return out.String()
}

// tokenize splits the template into text and tag tokens. An unterminated
// "{{" with no matching "}}" is kept as literal text.
func tokenize(template string) []token {
	var tokens []token
	rest := template

	for {
		open := strings.Index(rest, openDelim)
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+len(openDelim):], closeDelim)
		if end < 0 {
			break // no matching "}}", trailing text stays literal
		}

		if open > 0 {
			tokens = append(tokens, token{typ: tokenText, text: rest[:open]})
		}

		tag := strings.TrimSpace(rest[open+len(openDelim) : open+len(openDelim)+end])
		switch {
		case strings.HasPrefix(tag, "#"):
			tokens = append(tokens, token{typ: tokenSectionOpen, text: strings.TrimSpace(tag[1:])})
		case strings.HasPrefix(tag, "/"):
			tokens = append(tokens, token{typ: tokenSectionClose, text: strings.TrimSpace(tag[1:])})
		case strings.HasPrefix(tag, "^"):
			tokens = append(tokens, token{typ: tokenInvertedOpen, text: strings.TrimSpace(tag[1:])})
		case strings.HasPrefix(tag, "!"):
			tokens = append(tokens, token{typ: tokenComment})
		default:
			tokens = append(tokens, token{typ: tokenVariable, text: tag})
		}

		rest = rest[open+len(openDelim)+end+len(closeDelim):]
	}

	if rest != "" {
		tokens = append(tokens, token{typ: tokenText, text: rest})
	}
	return tokens
}

func evaluate(out *strings.Builder, tokens []token, ctx Context) {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.typ {
		case tokenText:
			out.WriteString(tok.text)
			i++
		case tokenComment, tokenSectionClose:
			// Comments vanish; a close with no matching open is ignored.
			i++
		case tokenVariable:
			if value, ok := lookup(ctx, tok.text); ok {
				out.WriteString(stringify(value))
			}
			i++
		case tokenSectionOpen, tokenInvertedOpen:
			bodyEnd := findSectionClose(tokens, i+1, tok.text)
			body := tokens[i+1 : bodyEnd]

			value, present := lookup(ctx, tok.text)
			if tok.typ == tokenSectionOpen {
				renderSection(out, body, ctx, value, present)
			} else if !present || !truthy(value) {
				evaluate(out, body, ctx)
			}

			if bodyEnd < len(tokens) {
				i = bodyEnd + 1 // skip the close tag
			} else {
				i = bodyEnd
			}
		}
	}
}

func renderSection(out *strings.Builder, body []token, ctx Context, value any, present bool) {
	if !present || !truthy(value) {
		return
	}

	// A sequence of mappings is the loop form: the body renders once per
	// element with that element's keys overriding the outer context.
	if elements, ok := mappingSequence(value); ok {
		for _, element := range elements {
			merged := make(Context, len(ctx)+len(element))
			for k, v := range ctx {
				merged[k] = v
			}
			for k, v := range element {
				merged[k] = v
			}
			evaluate(out, body, merged)
		}
		return
	}

	// Any other truthy value renders the body once against the outer
	// context unchanged.
	evaluate(out, body, ctx)
}

// findSectionClose scans for the close tag matching the section opened
// with name. Matching is keyed by section name with a nesting depth
// counter, so an inner same-named section does not close the outer one.
// A missing close consumes the rest of the token sequence.
func findSectionClose(tokens []token, start int, name string) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].typ {
		case tokenSectionOpen, tokenInvertedOpen:
			if tokens[i].text == name {
				depth++
			}
		case tokenSectionClose:
			if tokens[i].text == name {
				if depth == 0 {
					return i
				}
				depth--
			}
		}
	}
	return len(tokens)
}

// lookup resolves a dotted key path, each segment narrowing into a nested
// mapping. The second result reports whether the full path resolved.
func lookup(ctx Context, path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = ctx
	for _, segment := range segments {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = mapping[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// mappingSequence reports whether value is an ordered sequence of
// mappings and returns the elements if so.
func mappingSequence(value any) ([]map[string]any, bool) {
	switch seq := value.(type) {
	case []map[string]any:
		return seq, true
	case []any:
		elements := make([]map[string]any, 0, len(seq))
		for _, e := range seq {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			elements = append(elements, m)
		}
		if len(elements) == 0 {
			return nil, false
		}
		return elements, true
	}
	return nil, false
}

// truthy implements the section-rendering test: booleans use their own
// value, strings are falsy only when empty, integers only when zero,
// sequences only when empty; every other value kind (including mappings
// and floating-point zero) is truthy.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len() > 0
	}
	return true
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
