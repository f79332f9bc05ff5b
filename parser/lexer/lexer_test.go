package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

func lexAll(t *testing.T, source string) []*token.Token {
	t.Helper()
	lex := New(token.NewScanner("test", strings.NewReader(source)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks
		}
		require.Less(t, len(toks), 1000, "lexer did not terminate")
	}
}

func TestLexer(t *testing.T) {
	toks := lexAll(t, "(+ 1 2.5 #t #f foo)")
	types := make([]token.Type, len(toks))
	texts := make([]string, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
		texts[i] = tok.Text
	}
	assert.Equal(t, []token.Type{
		token.PAREN_L,
		token.SYMBOL,
		token.NUMBER,
		token.NUMBER,
		token.TRUE,
		token.FALSE,
		token.SYMBOL,
		token.PAREN_R,
		token.EOF,
	}, types)
	assert.Equal(t, []string{"(", "+", "1", "2.5", "#t", "#f", "foo", ")", ""}, texts)
}

func TestLexerAtomsEndAtDelimiters(t *testing.T) {
	toks := lexAll(t, "abc(1)")
	assert.Equal(t, token.SYMBOL, toks[0].Type)
	assert.Equal(t, "abc", toks[0].Text)
	assert.Equal(t, token.PAREN_L, toks[1].Type)
	assert.Equal(t, token.NUMBER, toks[2].Type)
	assert.Equal(t, token.PAREN_R, toks[3].Type)
}

func TestLexerHashLiterals(t *testing.T) {
	// #t and #f are two-rune tokens; a following word rune starts a new
	// token rather than extending the literal
	toks := lexAll(t, "#tt")
	require.Len(t, toks, 3)
	assert.Equal(t, token.TRUE, toks[0].Type)
	assert.Equal(t, token.SYMBOL, toks[1].Type)
	assert.Equal(t, "t", toks[1].Text)

	// a lone # is just a symbol
	toks = lexAll(t, "#x")
	assert.Equal(t, token.SYMBOL, toks[0].Type)
	assert.Equal(t, "#x", toks[0].Text)
}

func TestLexerLocations(t *testing.T) {
	toks := lexAll(t, "a\n  b")
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Line)
	assert.Equal(t, 3, toks[1].Source.Col)
}

func TestNumberClassification(t *testing.T) {
	for _, test := range []struct {
		text     string
		isNumber bool
	}{
		{"0", true},
		{"42", true},
		{"-1", true},
		{"+1", true},
		{"2.5", true},
		{".5", true},
		{"5.", true},
		{"-.25", true},
		{"1.2.3", false}, // a second dot makes it a symbol
		{"-", false},
		{"+", false},
		{".", false},
		{"1e3", false}, // no exponent syntax
		{"12a", false},
		{"foo", false},
	} {
		assert.Equal(t, test.isNumber, isNumberToken(test.text), "token %q", test.text)
	}
}
