package lisp

// specialOp handles a special form.  Unlike an LBuiltin the args list is the
// form's unevaluated operands.
type specialOp func(env *LEnv, args *LVal) *LVal

var specialOps map[string]specialOp

// The handlers reach Eval, so the table is filled here rather than in the
// declaration to keep the initialization acyclic.
func init() {
	specialOps = map[string]specialOp{
		KeywordQuote:  opQuote,
		KeywordIf:     opIf,
		KeywordDefine: opDefine,
		KeywordLambda: opLambda,
		KeywordLoad:   opLoad,
	}
}

func opQuote(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorConditionf(ErrSyntax, "quote expects 1 argument (got %d)", args.Len())
	}
	return args.Car
}

func opIf(env *LEnv, args *LVal) *LVal {
	if args.Len() != 3 {
		return ErrorConditionf(ErrSyntax, "if expects 3 arguments (got %d)", args.Len())
	}
	test := env.Eval(args.Car)
	if test.Type == LError {
		return test
	}
	// Exactly one branch is evaluated.  Anything other than the empty list
	// counts as true.
	if !test.IsNil() {
		return env.Eval(args.Cdr.Car)
	}
	return env.Eval(args.Cdr.Cdr.Car)
}

func opDefine(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorConditionf(ErrSyntax, "define expects 2 arguments (got %d)", args.Len())
	}
	sym := args.Car
	if sym.Type != LSymbol {
		return ErrorConditionf(ErrSyntax, "define: first argument is not a symbol: %v", sym.Type)
	}
	v := env.Eval(args.Cdr.Car)
	if v.Type == LError {
		return v
	}
	// The binding goes in the current frame only, never an ancestor, and the
	// result is the symbol rather than the bound value.
	env.Put(sym, v)
	return sym
}

func opLambda(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorConditionf(ErrSyntax, "lambda expects a parameter list and a single body expression")
	}
	formals := args.Car
	if formals.Type != LPair && !formals.IsNil() {
		return ErrorConditionf(ErrSyntax, "lambda: parameter list is not a list: %v", formals.Type)
	}
	for p := formals; p.Type == LPair; p = p.Cdr {
		if p.Car.Type != LSymbol {
			return ErrorConditionf(ErrSyntax, "lambda: parameter is not a symbol: %v", p.Car)
		}
	}
	return Lambda(formals, args.Cdr.Car, env)
}

// opLoad dispatches before operand evaluation.  The filename is a bare
// symbol token, as in (load examples/lib.scm), and evaluating it would
// resolve it as a binding instead.
func opLoad(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorConditionf(ErrArity, "load expects 1 argument (got %d)", args.Len())
	}
	if args.Car.Type != LSymbol {
		return ErrorConditionf(ErrType, "load: first argument is not a symbol: %v", args.Car.Type)
	}
	return env.LoadFile(args.Car.Str)
}
