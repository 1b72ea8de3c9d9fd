// Package lexer turns raw schema text into a flat token sequence.
//
// The scanner walks the source left to right and classifies runs of
// characters into names, numbers, strings and punctuators. It never fails:
// anything it does not recognize is emitted as a single-character
// punctuator token and judged by the parser. Whitespace, commas and '#'
// line comments are skipped.
package lexer

// Tokenize scans src and returns the complete, in-order token sequence.
// No token is dropped and no error is possible at this stage.
func Tokenize(src string) []Token {
	l := &scanner{src: src, tokens: make([]Token, 0, len(src)/4)}
	for !l.atEnd() {
		l.start = l.cur
		l.scanOne()
	}
	return l.tokens
}

type scanner struct {
	src    string
	start  int
	cur    int
	tokens []Token
}

func (l *scanner) atEnd() bool { return l.cur >= len(l.src) }

func (l *scanner) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *scanner) peekAt(offset int) byte {
	if l.cur+offset >= len(l.src) {
		return 0
	}
	return l.src[l.cur+offset]
}

func (l *scanner) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	return ch
}

func (l *scanner) emit(kind Kind) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: l.src[l.start:l.cur], Pos: l.start})
}

func (l *scanner) scanOne() {
	ch := l.advance()
	switch {
	case isSpace(ch):
		// Commas are insignificant separators, same as whitespace.
		return
	case ch == '#':
		l.skipComment()
		return
	case ch == '"':
		l.scanString()
		return
	case isNameStart(ch):
		l.scanName()
		return
	case isDigit(ch) || (ch == '-' && isDigit(l.peek())):
		l.scanNumber()
		return
	case ch == '.' && l.peek() == '.' && l.peekAt(1) == '.':
		l.advance()
		l.advance()
		l.emit(KindPunctuator)
		return
	default:
		// Known punctuators and unrecognized characters alike become
		// single-character tokens; the parser rejects the invalid ones.
		l.emit(KindPunctuator)
		return
	}
}

// skipComment consumes a '#' line comment. The run is classified as
// KindComment but never emitted; comments carry no structure.
func (l *scanner) skipComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// scanString consumes up to the closing quote. Content passes through
// verbatim: a backslash keeps itself and the following character. An
// unterminated string runs to end of input.
func (l *scanner) scanString() {
	contentStart := l.cur
	for !l.atEnd() {
		ch := l.advance()
		if ch == '\\' && !l.atEnd() {
			l.advance()
			continue
		}
		if ch == '"' {
			l.tokens = append(l.tokens, Token{
				Kind: KindString,
				Text: l.src[contentStart : l.cur-1],
				Pos:  l.start,
			})
			return
		}
	}
	l.tokens = append(l.tokens, Token{Kind: KindString, Text: l.src[contentStart:l.cur], Pos: l.start})
}

func (l *scanner) scanName() {
	for !l.atEnd() && isNameChar(l.peek()) {
		l.advance()
	}
	l.emit(KindName)
}

func (l *scanner) scanNumber() {
	kind := KindInt
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		kind = KindFloat
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	if ch := l.peek(); ch == 'e' || ch == 'E' {
		next := l.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
			kind = KindFloat
			l.advance()
			if ch := l.peek(); ch == '+' || ch == '-' {
				l.advance()
			}
			for !l.atEnd() && isDigit(l.peek()) {
				l.advance()
			}
		}
	}
	l.emit(kind)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == ','
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isNameStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isNameChar(ch byte) bool { return isNameStart(ch) || isDigit(ch) }
