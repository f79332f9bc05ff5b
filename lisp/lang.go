package lisp

// Special form keywords recognized by the evaluator.  They are checked in the
// operator position of a pair before the operator is evaluated, so they
// cannot be shadowed by bindings.
const (
	KeywordQuote  = "quote"
	KeywordIf     = "if"
	KeywordDefine = "define"
	KeywordLambda = "lambda"
	KeywordLoad   = "load"
)

// TrueSymbol is the true literal.  The false literal is indistinguishable
// from the empty list.
const TrueSymbol = "#t"

// VarArgSymbol marks the rest parameter in a primitive's list of formal
// arguments.
const VarArgSymbol = "&"
