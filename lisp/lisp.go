package lisp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LNumber
	LSymbol
	LPair
	LFun
	LError
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LNumber:  "number",
	LSymbol:  "symbol",
	LPair:    "pair",
	LFun:     "function",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is a Go function that implements a lisp procedure.  The args list
// passed to an LBuiltin has already been evaluated.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value
type LVal struct {
	Type   LType
	Num    float64
	Str    string // symbol name, or the error condition of an LError
	Err    error
	Source *token.Location

	// Pair cells.  Proper lists are right-nested Car/Cdr chains terminated
	// by a nil value.
	Car *LVal
	Cdr *LVal

	// Fields needed for function values.  Env is shared with every other
	// closure created in the same scope, never copied.
	FID     string
	Builtin LBuiltin
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Nil returns an LVal representing the empty list, which also serves as the
// false value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Bool returns the true literal when ok is true and Nil otherwise.  The
// interpreter has no dedicated boolean type -- anything other than the empty
// list counts as true.
func Bool(ok bool) *LVal {
	if ok {
		return Symbol(TrueSymbol)
	}
	return Nil()
}

// Cons returns a pair with the given head and tail.
func Cons(car, cdr *LVal) *LVal {
	return &LVal{
		Type: LPair,
		Car:  car,
		Cdr:  cdr,
	}
}

// List returns a proper list containing the given values, Nil when called
// with no arguments.
func List(cells ...*LVal) *LVal {
	lis := Nil()
	for i := len(cells) - 1; i >= 0; i-- {
		lis = Cons(cells[i], lis)
	}
	return lis
}

// Fun returns an LVal representing a primitive procedure.
func Fun(fid string, formals *LVal, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Formals: formals,
		Builtin: fn,
	}
}

// Lambda returns a closure with the given list of formal parameters and a
// single body expression.  The defining environment is captured by reference
// so bindings visible at definition time remain live, not snapshotted.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     env.getFID(),
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// Len returns the number of pairs in the list headed by v.  An improper tail
// does not contribute to the length.
func (v *LVal) Len() int {
	n := 0
	for v.Type == LPair {
		n++
		v = v.Cdr
	}
	return n
}

// Cells returns the elements of the list headed by v as a slice.
func (v *LVal) Cells() []*LVal {
	var cells []*LVal
	for v.Type == LPair {
		cells = append(cells, v.Car)
		v = v.Cdr
	}
	return cells
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "()"
	case LNumber:
		return formatNumber(v.Num)
	case LSymbol:
		return v.Str
	case LPair:
		return pairString(v)
	case LFun:
		if v.Builtin != nil {
			return "<primitive>"
		}
		return "<lambda>"
	case LError:
		return v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// formatNumber prints integral values without a fractional part so that
// reading a numeric literal and printing it round-trips.
func formatNumber(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) < 1e15 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func pairString(v *LVal) string {
	var buf strings.Builder
	buf.WriteString("(")
	buf.WriteString(v.Car.String())
	for v = v.Cdr; v.Type == LPair; v = v.Cdr {
		buf.WriteString(" ")
		buf.WriteString(v.Car.String())
	}
	if !v.IsNil() {
		buf.WriteString(" . ")
		buf.WriteString(v.String())
	}
	buf.WriteString(")")
	return buf.String()
}
