package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text.  Every input
// handed to the interpreter (an interactive form, a loaded file) is fully
// buffered before reading starts, so the Scanner holds the whole source and
// walks it rune by rune.
type Scanner struct {
	file string
	src  string

	readErr error

	start     int // byte offset of the current token
	startLine int
	startCol  int
	pos       int // byte offset of the next unread rune
	line      int
	col       int
}

// NewScanner initializes and returns a new Scanner reading from r.  A read
// failure is deferred and reported by Err.
func NewScanner(file string, r io.Reader) *Scanner {
	s := &Scanner{
		file:      file,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
	b, err := io.ReadAll(r)
	if err != nil {
		s.readErr = err
		return s
	}
	s.src = string(b)
	return s
}

// Err returns the error encountered while buffering the source, if any.
func (s *Scanner) Err() error {
	return s.readErr
}

// EOF returns true once the scanner has consumed all source text.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.src)
}

// Peek returns the next rune to be scanned without consuming it.  At the end
// of the source Peek returns a false second value.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return c, true
}

// ScanRune consumes the next rune for inclusion in the current token.
func (s *Scanner) ScanRune() error {
	if s.EOF() {
		return io.EOF
	}
	c, n := utf8.DecodeRuneInString(s.src[s.pos:])
	if c == utf8.RuneError && n == 1 {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %q", s.src[s.pos])
	}
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return s.src[s.start:s.pos]
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

// LocStart returns a Location referencing the beginning of the current
// token, just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}
