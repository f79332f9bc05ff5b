package token

import "fmt"

// Token is one lexeme of source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used by the lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic expressions & literals
	SYMBOL
	NUMBER
	TRUE  // #t
	FALSE // #f

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		NUMBER:  "number",
		TRUE:    "#t",
		FALSE:   "#f",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location points at the source text a token came from.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
