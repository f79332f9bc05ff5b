package lexer

import (
	"io"
	"unicode"

	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

// Lexer splits source text into tokens.  The grammar has three token shapes
// beyond the parentheses: the two-rune literals #t and #f, and maximal runs
// of non-space, non-parenthesis runes, which cover symbols and numbers.
type Lexer struct {
	scanner *token.Scanner
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

func (lex *Lexer) NextToken() *token.Token {
	if err := lex.scanner.Err(); err != nil {
		return lex.emitError(err)
	}
	lex.skipWhitespace()
	c, ok := lex.scanner.Peek()
	if !ok {
		return lex.scanner.EmitToken(token.EOF)
	}
	switch c {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case '#':
		if err := lex.scanner.ScanRune(); err != nil {
			return lex.emitError(err)
		}
		switch p, _ := lex.scanner.Peek(); p {
		case 't':
			if err := lex.scanner.ScanRune(); err != nil {
				return lex.emitError(err)
			}
			// #t ends after two runes even when word runes follow.
			return lex.scanner.EmitToken(token.TRUE)
		case 'f':
			if err := lex.scanner.ScanRune(); err != nil {
				return lex.emitError(err)
			}
			return lex.scanner.EmitToken(token.FALSE)
		default:
			return lex.readAtom()
		}
	default:
		if err := lex.scanner.ScanRune(); err != nil {
			return lex.emitError(err)
		}
		return lex.readAtom()
	}
}

// readAtom consumes the remainder of a maximal run of atom runes.  The first
// rune has already been scanned.
func (lex *Lexer) readAtom() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isAtomRune(c) {
			break
		}
		if err := lex.scanner.ScanRune(); err != nil {
			return lex.emitError(err)
		}
	}
	if isNumberToken(lex.scanner.Text()) {
		return lex.scanner.EmitToken(token.NUMBER)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	if err := lex.scanner.ScanRune(); err != nil {
		return lex.emitError(err)
	}
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) emitError(err error) *token.Token {
	if err == io.EOF {
		return lex.scanner.EmitToken(token.EOF)
	}
	tok := &token.Token{
		Type:   token.ERROR,
		Text:   err.Error(),
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		if lex.scanner.ScanRune() != nil {
			break
		}
	}
	lex.scanner.Ignore()
}

func isAtomRune(c rune) bool {
	return !unicode.IsSpace(c) && c != '(' && c != ')'
}

// isNumberToken classifies an atom.  A token is a number iff it optionally
// starts with a sign, contains at least one digit, at most one '.', and
// nothing else.
func isNumberToken(text string) bool {
	rest := text
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	hasDigit := false
	hasDot := false
	for i := 0; i < len(rest); i++ {
		switch {
		case '0' <= rest[i] && rest[i] <= '9':
			hasDigit = true
		case rest[i] == '.' && !hasDot:
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
