// Package lisptest provides a table-driven harness for exercising the
// interpreter through its textual surface.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// by a single lisp.LEnv.
type TestSequence []struct {
	Expr   string // an expression
	Result string // the printed result of evaluating Expr
	Output string // text Expr writes to the runtime's stdout (display)
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewTestEnv returns an initialized environment whose display output and
// error reports accumulate in the returned buffers.
func NewTestEnv(t *testing.T) (*lisp.LEnv, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithStderr(stderr),
	)
	if lerr.Type == lisp.LError {
		t.Fatalf("failed to initialize environment: %v", lerr)
	}
	return env, stdout, stderr
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, stdout, _ := NewTestEnv(t)
		for j, expr := range test.TestSequence {
			v, err := parser.Parse("test", []byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression parsed (got %d)", i, test.Name, j, len(v))
				continue
			}
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			output := stdout.String()
			stdout.Reset()
			if output != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, output)
			}
		}
	}
}
