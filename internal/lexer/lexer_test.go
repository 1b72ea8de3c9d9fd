package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Names(t *testing.T) {
	// Test plan:
	// - Identifier runs become name tokens
	// - Keywords are ordinary names, not special tokens

	tokens := Tokenize("type User enum _private field123")
	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.Equal(t, KindName, tok.Kind)
	}
	assert.Equal(t, "type", tokens[0].Text)
	assert.Equal(t, "User", tokens[1].Text)
	assert.Equal(t, "enum", tokens[2].Text)
	assert.Equal(t, "_private", tokens[3].Text)
	assert.Equal(t, "field123", tokens[4].Text)
}

func TestTokenize_Punctuators(t *testing.T) {
	input := "{ } ( ) [ ] : ! = | & @ $"
	tokens := Tokenize(input)
	require.Len(t, tokens, 13)
	expected := []string{"{", "}", "(", ")", "[", "]", ":", "!", "=", "|", "&", "@", "$"}
	for i, tok := range tokens {
		assert.Equal(t, KindPunctuator, tok.Kind)
		assert.Equal(t, expected[i], tok.Text)
	}
}

func TestTokenize_Spread(t *testing.T) {
	// Test: "..." is a single punctuator token, not three dots
	tokens := Tokenize("...UserFields")
	require.Len(t, tokens, 2)
	assert.Equal(t, KindPunctuator, tokens[0].Kind)
	assert.Equal(t, "...", tokens[0].Text)
	assert.Equal(t, KindName, tokens[1].Kind)
	assert.Equal(t, "UserFields", tokens[1].Text)
}

func TestTokenize_Numbers(t *testing.T) {
	// Test plan:
	// - Plain digit runs are int tokens
	// - '.' or an exponent marker selects float
	// - Leading minus is part of the literal

	cases := []struct {
		input string
		kind  Kind
	}{
		{"42", KindInt},
		{"-7", KindInt},
		{"0", KindInt},
		{"3.14", KindFloat},
		{"-0.5", KindFloat},
		{"1e10", KindFloat},
		{"2.5e-3", KindFloat},
		{"6E+2", KindFloat},
	}
	for _, tc := range cases {
		tokens := Tokenize(tc.input)
		require.Len(t, tokens, 1, "input %q", tc.input)
		assert.Equal(t, tc.kind, tokens[0].Kind, "input %q", tc.input)
		assert.Equal(t, tc.input, tokens[0].Text)
	}
}

func TestTokenize_Strings(t *testing.T) {
	tokens := Tokenize(`"hello world"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindString, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Text)

	// Test: escaped quote does not terminate the literal; content passes
	// through verbatim with no escape decoding
	tokens = Tokenize(`"say \"hi\""`)
	require.Len(t, tokens, 1)
	assert.Equal(t, `say \"hi\"`, tokens[0].Text)

	// Test: unterminated string runs to end of input rather than failing
	tokens = Tokenize(`"open`)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindString, tokens[0].Kind)
	assert.Equal(t, "open", tokens[0].Text)
}

func TestTokenize_CommentsAndWhitespaceSkipped(t *testing.T) {
	input := "type User # the user record\n{ id: ID }"
	tokens := Tokenize(input)
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	assert.Equal(t, []string{"type", "User", "{", "id", ":", "ID", "}"}, texts)
}

func TestTokenize_CommasAreSeparators(t *testing.T) {
	tokens := Tokenize("a, b, c")
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
	assert.Equal(t, "c", tokens[2].Text)
}

func TestTokenize_UnrecognizedCharacters(t *testing.T) {
	// Test: the lexer never fails; unknown characters become
	// single-character punctuator tokens for the parser to reject
	tokens := Tokenize("a ~ b")
	require.Len(t, tokens, 3)
	assert.Equal(t, KindPunctuator, tokens[1].Kind)
	assert.Equal(t, "~", tokens[1].Text)
}

func TestTokenize_Offsets(t *testing.T) {
	input := `type User`
	tokens := Tokenize(input)
	require.Len(t, tokens, 2)
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 5, tokens[1].Pos)
}

func TestTokenize_FullDeclaration(t *testing.T) {
	input := `type User {
  id: ID!
  tags: [String!]!
}`
	tokens := Tokenize(input)
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	assert.Equal(t, []string{
		"type", "User", "{",
		"id", ":", "ID", "!",
		"tags", ":", "[", "String", "!", "]", "!",
		"}",
	}, texts)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
	assert.Empty(t, Tokenize("# only a comment"))
}
