package lisp

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// LBuiltinDef is a built-in procedure definition.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

// Formals returns a list of formal argument symbols for a builtin.
func Formals(names ...string) *LVal {
	cells := make([]*LVal, len(names))
	for i, name := range names {
		cells[i] = Symbol(name)
	}
	return List(cells...)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"eval", Formals("expr"), builtinEval},
	{"display", Formals("expr"), builtinDisplay},
	{"cons", Formals("head", "tail"), builtinCons},
	{"car", Formals("pair"), builtinCAR},
	{"cdr", Formals("pair"), builtinCDR},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"null?", Formals("expr"), builtinNullP},
	{"=", Formals("a", "b"), builtinEqNum},
	{"<", Formals("a", "b"), builtinLT},
	{">", Formals("a", "b"), builtinGT},
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals(VarArgSymbol, "x"), builtinSub},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"/", Formals(VarArgSymbol, "x"), builtinDiv},
	{"debug-print", Formals(VarArgSymbol, "args"), builtinDebugPrint},
	{"debug-dump", Formals("expr"), builtinDebugDump},
	{"debug-stack", Formals(), builtinDebugStack},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, formals *LVal, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, formals, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, 0, len(langBuiltins)+len(userBuiltins))
	for _, f := range langBuiltins {
		funs = append(funs, f)
	}
	for _, f := range userBuiltins {
		funs = append(funs, f)
	}
	return funs
}

func builtinEval(env *LEnv, args *LVal) *LVal {
	// The argument has already been evaluated once; re-dispatch the resulting
	// value through the evaluator in the caller's environment.
	return env.Eval(args.Car)
}

func builtinDisplay(env *LEnv, args *LVal) *LVal {
	fmt.Fprintln(env.Runtime.Stdout, args.Car)
	return Nil()
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	return Cons(args.Car, args.Cdr.Car)
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	if args.Car.Type != LPair {
		return ErrorConditionf(ErrType, "car: argument is not a pair: %v", args.Car.Type)
	}
	return args.Car.Car
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	if args.Car.Type != LPair {
		return ErrorConditionf(ErrType, "cdr: argument is not a pair: %v", args.Car.Type)
	}
	return args.Car.Cdr
}

func builtinList(env *LEnv, args *LVal) *LVal {
	// The evaluated argument list is already a proper list.
	return args
}

func builtinNullP(env *LEnv, args *LVal) *LVal {
	return Bool(args.Car.IsNil())
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	return builtinCompare(env, args, "=")
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return builtinCompare(env, args, "<")
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return builtinCompare(env, args, ">")
}

func builtinCompare(env *LEnv, args *LVal, op string) *LVal {
	a, b := args.Car, args.Cdr.Car
	if a.Type != LNumber {
		return ErrorConditionf(ErrType, "%s: first argument is not a number: %v", op, a.Type)
	}
	if b.Type != LNumber {
		return ErrorConditionf(ErrType, "%s: second argument is not a number: %v", op, b.Type)
	}
	switch op {
	case "=":
		return Bool(a.Num == b.Num)
	case "<":
		return Bool(a.Num < b.Num)
	default:
		return Bool(a.Num > b.Num)
	}
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return builtinArith(env, args, "+")
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return builtinArith(env, args, "-")
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return builtinArith(env, args, "*")
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return builtinArith(env, args, "/")
}

// builtinArith folds the argument list left to right, seeding the
// accumulator with the first argument.  Zero arguments yields 0 for all four
// operators; mathematically dubious for * - and /, but existing scripts
// depend on it.
func builtinArith(env *LEnv, args *LVal, op string) *LVal {
	for _, c := range args.Cells() {
		if c.Type != LNumber {
			return ErrorConditionf(ErrType, "%s: argument is not a number: %v", op, c.Type)
		}
	}
	if args.IsNil() {
		return Number(0)
	}
	acc := args.Car.Num
	for v := args.Cdr; v.Type == LPair; v = v.Cdr {
		switch op {
		case "+":
			acc += v.Car.Num
		case "-":
			acc -= v.Car.Num
		case "*":
			acc *= v.Car.Num
		case "/":
			acc /= v.Car.Num
		}
	}
	return Number(acc)
}

func builtinDebugPrint(env *LEnv, args *LVal) *LVal {
	fmtargs := make([]interface{}, 0, args.Len())
	for _, c := range args.Cells() {
		fmtargs = append(fmtargs, c)
	}
	fmt.Fprintln(env.Runtime.Stderr, fmtargs...)
	return Nil()
}

func builtinDebugDump(env *LEnv, args *LVal) *LVal {
	spew.Fdump(env.Runtime.Stderr, args.Car)
	return Nil()
}

func builtinDebugStack(env *LEnv, args *LVal) *LVal {
	env.Runtime.Stack.DebugPrint(env.Runtime.Stderr)
	return Nil()
}
