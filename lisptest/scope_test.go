package lisptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"closures capture their environment by reference", TestSequence{
			{"(define x 5)", "x", ""},
			{"(define f (lambda (y) (+ x y)))", "f", ""},
			// redefining x is visible through the captured frame; the capture
			// is live, not a snapshot
			{"(define x 10)", "x", ""},
			{"(f 1)", "11", ""},
		}},
		{"parameters shadow outer bindings", TestSequence{
			{"(define x 1)", "x", ""},
			{"(define f (lambda (x) (* x x)))", "f", ""},
			{"(f 4)", "16", ""},
			{"x", "1", ""},
		}},
		{"define binds in the current frame only", TestSequence{
			{"((lambda (y) (define z y)) 5)", "z", ""},
			{"z", "unbound symbol: z", ""},
		}},
		{"nested closures", TestSequence{
			{"(define adder (lambda (n) (lambda (x) (+ x n))))", "adder", ""},
			{"(define add2 (adder 2))", "add2", ""},
			{"(define add10 (adder 10))", "add10", ""},
			{"(add2 5)", "7", ""},
			{"(add10 5)", "15", ""},
		}},
		{"recursion through the defining frame", TestSequence{
			{`(define fact
				(lambda (n)
					(if (< n 2)
						1
						(* n (fact (- n 1))))))`, "fact", ""},
			{"(fact 10)", "3628800", ""},
			{`(define fib
				(lambda (n)
					(if (< n 2)
						n
						(+ (fib (- n 1)) (fib (- n 2))))))`, "fib", ""},
			{"(fib 15)", "610", ""},
		}},
	}
	RunTestSuite(t, tests)
}
