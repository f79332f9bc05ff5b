package lisp

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Errors are returned as LError values and short-circuit evaluation of
// any containing expression; they are not printed here.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LPair:
		return env.evalPair(v)
	default:
		// Nil, numbers, functions, and errors are self-evaluating.
		return v
	}
}

// evalPair interprets a pair as (operator . operands).  The operator position
// is checked against the special form keywords before it is evaluated, so
// special form dispatch cannot be shadowed by bindings.
func (env *LEnv) evalPair(s *LVal) *LVal {
	if s.Car.Type == LSymbol {
		if op, ok := specialOps[s.Car.Str]; ok {
			return op(env, s.Cdr)
		}
	}
	f := env.Eval(s.Car)
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return ErrorConditionf(ErrNotAProcedure, "first element of expression is not a procedure: %v", f)
	}
	args := env.evalList(s.Cdr)
	if args.Type == LError {
		return args
	}
	return env.Call(f, args)
}

// evalList evaluates the operands left to right, eagerly.  The first error
// stops evaluation; operands after it are untouched.
func (env *LEnv) evalList(v *LVal) *LVal {
	head := Nil()
	tail := head
	for ; v.Type == LPair; v = v.Cdr {
		x := env.Eval(v.Car)
		if x.Type == LError {
			return x
		}
		cell := Cons(x, Nil())
		if head.IsNil() {
			head = cell
		} else {
			tail.Cdr = cell
		}
		tail = cell
	}
	return head
}

// Call invokes the procedure fun with the list of evaluated arguments args.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	stack := env.Runtime.Stack
	if lerr := stack.Push(fun.FID); lerr != nil {
		return lerr
	}
	defer stack.Pop()

	if fun.Builtin != nil {
		if lerr := checkFormals(fun, args); lerr != nil {
			return lerr
		}
		return fun.Builtin(env, args)
	}

	fenv := NewEnv(fun.Env)
	params := fun.Formals
	for ; params.Type == LPair; params = params.Cdr {
		if args.Type != LPair {
			return ErrorConditionf(ErrArity, "function expects %d arguments (got %d)",
				fun.Formals.Len(), fun.Formals.Len()-params.Len())
		}
		fenv.Put(params.Car, args.Car)
		args = args.Cdr
	}
	// Arguments beyond the parameter list are ignored, not consumed.
	return fenv.Eval(fun.Body)
}

// checkFormals verifies the argument count of a primitive call against the
// primitive's declared formals.  A rest parameter introduced by VarArgSymbol
// absorbs any number of trailing arguments.
func checkFormals(fun *LVal, args *LVal) *LVal {
	nfixed := 0
	variadic := false
	for p := fun.Formals; p.Type == LPair; p = p.Cdr {
		if p.Car.Type == LSymbol && p.Car.Str == VarArgSymbol {
			variadic = true
			break
		}
		nfixed++
	}
	nargs := args.Len()
	if nargs < nfixed {
		return ErrorConditionf(ErrArity, "%s expects %d arguments (got %d)", fun.FID, nfixed, nargs)
	}
	if nargs > nfixed && !variadic {
		return ErrorConditionf(ErrArity, "%s expects %d arguments (got %d)", fun.FID, nfixed, nargs)
	}
	return nil
}
