package lisptest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"number literals", TestSequence{
			{"5", "5", ""},
			{"5.0", "5", ""},
			{"-3", "-3", ""},
			{"+4", "4", ""},
			{"2.5", "2.5", ""},
			{"-0.125", "-0.125", ""},
		}},
		{"literals", TestSequence{
			{"()", "()", ""},
			{"#t", "#t", ""},
			{"#f", "()", ""},
		}},
		{"quote", TestSequence{
			{"(quote x)", "x", ""},
			// quoting works for symbols that are unbound
			{"(quote undefined-symbol)", "undefined-symbol", ""},
			{"(quote (1 2 3))", "(1 2 3)", ""},
			{"(quote (quote x))", "(quote x)", ""},
			{"(quote ())", "()", ""},
		}},
		{"if", TestSequence{
			{"(if #t 1 2)", "1", ""},
			{"(if #f 1 2)", "2", ""},
			{"(if () 1 2)", "2", ""},
			// every non-nil value is true, including zero
			{"(if 0 1 2)", "1", ""},
			{"(if (quote sym) 1 2)", "1", ""},
			{"(if (< 1 2) (+ 1 1) (+ 2 2))", "2", ""},
		}},
		{"define", TestSequence{
			// define returns the symbol, not the value
			{"(define x 5)", "x", ""},
			{"x", "5", ""},
			{"(define y (+ x 1))", "y", ""},
			{"y", "6", ""},
			// redefinition in the same frame
			{"(define x 10)", "x", ""},
			{"x", "10", ""},
		}},
		{"procedures", TestSequence{
			{"(lambda (x) x)", "<lambda>", ""},
			{"+", "<primitive>", ""},
			{"((lambda (x) x) 1)", "1", ""},
			{"((lambda () 7))", "7", ""},
			{"((lambda (x y) (+ x y)) 1 2)", "3", ""},
			{"(define square (lambda (x) (* x x)))", "square", ""},
			{"(square 7)", "49", ""},
		}},
		{"pairs", TestSequence{
			{"(cons 1 2)", "(1 . 2)", ""},
			{"(car (cons 1 2))", "1", ""},
			{"(cdr (cons 1 2))", "2", ""},
			{"(cons 1 (cons 2 (cons 3 ())))", "(1 2 3)", ""},
			{"(cons 1 (quote (2 3)))", "(1 2 3)", ""},
			{"(list 1 2 3)", "(1 2 3)", ""},
			{"(list)", "()", ""},
			{"(car (quote (1 2 3)))", "1", ""},
			{"(cdr (quote (1 2 3)))", "(2 3)", ""},
		}},
		{"null?", TestSequence{
			{"(null? ())", "#t", ""},
			{"(null? #f)", "#t", ""},
			{"(null? 1)", "()", ""},
			{"(null? (quote (1)))", "()", ""},
			{"(null? (cdr (quote (1))))", "#t", ""},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2 3)", "6", ""},
			{"(- 10 1 2)", "7", ""},
			{"(* 2 3 4)", "24", ""},
			{"(/ 10 4)", "2.5", ""},
			{"(+ 0.5 0.25)", "0.75", ""},
			// one argument seeds the fold and is returned unchanged
			{"(- 5)", "5", ""},
			{"(/ 5)", "5", ""},
			// the zero-argument identity is 0 for all four operators
			{"(+)", "0", ""},
			{"(-)", "0", ""},
			{"(*)", "0", ""},
			{"(/)", "0", ""},
		}},
		{"comparisons", TestSequence{
			{"(= 1 1)", "#t", ""},
			{"(= 1 2)", "()", ""},
			{"(< 1 2)", "#t", ""},
			{"(< 2 1)", "()", ""},
			{"(> 2 1)", "#t", ""},
			{"(> 1 2)", "()", ""},
			{"(= 2.0 2)", "#t", ""},
		}},
		{"eval", TestSequence{
			{"(eval (quote (+ 1 2)))", "3", ""},
			{"(define x 5)", "x", ""},
			{"(eval (quote x))", "5", ""},
			{"(eval 3)", "3", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestDisplay(t *testing.T) {
	tests := TestSuite{
		{"display", TestSequence{
			{"(display 5)", "()", "5\n"},
			{"(display (quote (1 2 3)))", "()", "(1 2 3)\n"},
			{"(display (cons 1 2))", "()", "(1 . 2)\n"},
			{"(display (lambda (x) x))", "()", "<lambda>\n"},
			{"(display ())", "()", "()\n"},
		}},
		{"if evaluates exactly one branch", TestSequence{
			{"(if #t (display 1) (display 2))", "()", "1\n"},
			{"(if #f (display 1) (display 2))", "()", "2\n"},
		}},
		{"arguments evaluate left to right", TestSequence{
			{"(list (display 1) (display 2) (display 3))", "(() () ())", "1\n2\n3\n"},
		}},
	}
	RunTestSuite(t, tests)
}
