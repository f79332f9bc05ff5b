// Package parser implements a recursive-descent parser turning source text
// into lisp values.
package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/lexer"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to plug into a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parse returns the sequence of top-level forms contained in source.
func Parse(name string, source []byte) ([]*lisp.LVal, error) {
	return NewReader().Read(name, bytes.NewReader(source))
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses top-level forms until the source is exhausted.  The
// parser is re-entrant across forms: each call to ParseExpression consumes
// exactly one form, which is what lets load walk a whole file.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			break
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses one expression, leaving any following forms
// unconsumed.
func (p *Parser) ParseExpression() *lisp.LVal {
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseLiteralNumber()
	case token.TRUE:
		p.ReadToken()
		return p.tokenLVal(lisp.Symbol(lisp.TrueSymbol))
	case token.FALSE:
		// #f and the empty list are the same value.
		p.ReadToken()
		return p.tokenLVal(lisp.Nil())
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseList()
	case token.PAREN_R:
		p.ReadToken()
		return p.errorf(lisp.ErrUnmatchedSyntax, "%s unmatched %s", p.Token().Source, p.Token().Text)
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return p.errorf(lisp.ErrSyntax, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return p.errorf(lisp.ErrSyntax, "%s unexpected %s", p.Token().Source, p.Token().Type)
	}
}

func (p *Parser) ParseLiteralNumber() *lisp.LVal {
	if !p.expect(token.NUMBER) {
		return p.errorf(lisp.ErrSyntax, "invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return p.errorf(lisp.ErrSyntax, "invalid number literal: %v", text)
	}
	return p.tokenLVal(lisp.Number(x))
}

func (p *Parser) ParseSymbol() *lisp.LVal {
	if !p.expect(token.SYMBOL) {
		return p.errorf(lisp.ErrSyntax, "invalid symbol: %v", p.PeekType())
	}
	return p.tokenLVal(lisp.Symbol(p.Token().Text))
}

// ParseList parses a parenthesized sequence into a right-nested pair chain
// terminated by Nil.
func (p *Parser) ParseList() *lisp.LVal {
	if !p.expect(token.PAREN_L) {
		return p.errorf(lisp.ErrSyntax, "invalid list: %v", p.PeekType())
	}
	open := p.Token()
	var cells []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			return p.errorf(lisp.ErrUnmatchedSyntax, "%s unmatched %s", open.Source, open.Text)
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x := p.ParseExpression()
		if x.Type == lisp.LError {
			return x
		}
		cells = append(cells, x)
	}
	lis := lisp.List(cells...)
	lis.Source = open.Source
	return lis
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	err := lisp.ErrorConditionf(condition, format, v...)
	err.Source = p.Token().Source
	return err
}
