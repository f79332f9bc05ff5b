package lisp

import "fmt"

// Error conditions reported by the interpreter and its primitives.  The
// condition of an LError is stored in its Str field so tests and callers can
// distinguish failure kinds without parsing messages.
const (
	ErrUnboundSymbol   = "unbound-symbol"
	ErrNotAProcedure   = "not-a-procedure"
	ErrArity           = "arity-error"
	ErrType            = "type-error"
	ErrSyntax          = "syntax-error"
	ErrUnmatchedSyntax = "unmatched-syntax"
	ErrIO              = "io-error"
	ErrStackOverflow   = "stack-overflow"
)

// Error returns an LVal with the given condition representing err.
func Error(condition string, err error) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  err,
	}
}

// ErrorConditionf returns an error LVal with the given condition and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return Error(condition, fmt.Errorf(format, v...))
}

// Condition returns the error condition of v, or the empty string if v is not
// an error.
func (v *LVal) Condition() string {
	if v.Type != LError {
		return ""
	}
	return v.Str
}

// ErrorVal implements the error interface so error LVals can cross API
// boundaries that traffic in Go errors.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	if e.Str != "" {
		return fmt.Sprintf("%s: %v", e.Str, e.Err)
	}
	return e.Err.Error()
}

// GoError converts an error LVal to a Go error.  It returns nil if v is not
// an error.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
