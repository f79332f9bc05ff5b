package lisp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Runtime holds state shared by every environment frame descending from one
// root: the source reader, the call stack, and the streams used by display
// and error reporting.  There is exactly one Runtime per interpreter session.
type Runtime struct {
	Reader Reader
	Stack  *CallStack
	Stdout io.Writer
	Stderr io.Writer
}

func newRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{MaxHeight: DefaultMaxStackHeight},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LEnv is one frame in a chain of lexical environments.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv with the given parent.  Passing a
// nil parent creates a root (global) frame with a fresh Runtime.
func NewEnv(parent *LEnv) *LEnv {
	rt := newRuntime()
	if parent != nil {
		rt = parent.Runtime
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

func (env *LEnv) getFID() string {
	return fmt.Sprintf("anon%d", env.ID)
}

// Get takes a symbol k and returns the LVal it is bound to, searching env's
// own frame and then the parent chain.  A failed search is an unbound-symbol
// error, never a silent default.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return ErrorConditionf(ErrType, "cannot resolve non-symbol: %v", k.Type)
	}
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[k.Str]; ok {
			return v
		}
	}
	return ErrorConditionf(ErrUnboundSymbol, "unbound symbol: %v", k.Str)
}

// Put binds k to v in env's own frame, shadowing any binding for k in an
// ancestor frame.  Redefinition within one frame overwrites in place, which
// is observably the same as a newest-first search of the frame.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k.Str] = v
}

// GetGlobal takes a symbol k and returns the value it is bound to in the root
// environment (global scope).
func (env *LEnv) GetGlobal(k *LVal) *LVal {
	return env.root().Get(k)
}

// PutGlobal takes a symbol k and binds it to v in the root environment
// (global scope).
func (env *LEnv) PutGlobal(k, v *LVal) {
	env.root().Put(k, v)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds the given funs to their names in env.  When called with
// no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		if _, ok := env.Scope[k.Str]; ok {
			panic("symbol already defined: " + f.Name())
		}
		fid := fmt.Sprintf("<builtin-function ``%s''>", f.Name())
		env.Put(k, Fun(fid, f.Formals(), f.Eval))
	}
}

// InitializeUserEnv binds the default builtins and the true literal in env
// and applies the given configuration.  It is the single bootstrap point for
// an interpreter session.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	env.Put(Symbol(TrueSymbol), Symbol(TrueSymbol))
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

// Load reads top-level forms from r and evaluates them in env sequentially.
// Each form is a recovery boundary: an erroring form is reported on the
// runtime's stderr and contributes Nil, and evaluation proceeds with the next
// form.  Load returns the last form's value, Nil for an empty source.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return ErrorConditionf(ErrIO, "load: no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		if lerr, ok := err.(*ErrorVal); ok {
			return (*LVal)(lerr)
		}
		return Error(ErrSyntax, err)
	}
	last := Nil()
	for _, expr := range exprs {
		v := env.Eval(expr)
		if v.Type == LError {
			fmt.Fprintln(env.Runtime.Stderr, GoError(v))
			last = Nil()
			continue
		}
		last = v
	}
	return last
}

// LoadFile reads and evaluates the named file with Load.  The entire file is
// buffered before any form is evaluated.
func (env *LEnv) LoadFile(path string) *LVal {
	b, err := os.ReadFile(path)
	if err != nil {
		return Error(ErrIO, fmt.Errorf("load: %w", err))
	}
	return env.Load(path, bytes.NewReader(b))
}

// LoadString evaluates the forms contained in source with Load.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, bytes.NewReader([]byte(source)))
}
