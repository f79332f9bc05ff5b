// Package repl implements the interactive line-editing loop around the
// interpreter.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
)

// Run evaluates forms read interactively until EOF.  Lines accumulate until
// their parentheses balance, then the buffer is handed to the reader as a
// complete textual form.  The balance count is naive -- the language has no
// strings or comments to confuse it.
func Run(prompt string, config ...lisp.Config) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		errln(lisp.GoError(lerr))
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			break
		}
		buf = append(buf, line...)
		buf = append(buf, '\n')
		if !complete(buf) {
			rl.SetPrompt(contPrompt)
			continue
		}
		evalBuffer(env, buf)
		buf = nil
		rl.SetPrompt(prompt)
	}
	if err != io.EOF {
		errln(err)
	}
}

// evalBuffer parses and evaluates every form in buf, printing each result.
// An error in one form never prevents the loop from reading the next one.
func evalBuffer(env *lisp.LEnv, buf []byte) {
	exprs, err := parser.Parse("repl", buf)
	if err != nil {
		errln(err)
		return
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if v.Type == lisp.LError {
			errln(lisp.GoError(v))
			continue
		}
		fmt.Println(v)
	}
}

// complete reports whether buf holds only complete top-level forms.  The
// count is naive but sufficient: an unmatched close parenthesis makes the
// buffer "complete" and the parser reports the error.
func complete(buf []byte) bool {
	open, closed := 0, 0
	for _, c := range buf {
		switch c {
		case '(':
			open++
		case ')':
			closed++
		}
	}
	return open <= closed
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
