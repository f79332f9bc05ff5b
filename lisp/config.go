package lisp

import "io"

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) *LVal

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Reader = r
		return Nil()
	}
}

// WithStdout returns a Config that makes display and other printing
// primitives write to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stdout = w
		return Nil()
	}
}

// WithStderr returns a Config that makes environments write error reports and
// debugging output to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the call stack height to exceed n.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stack.MaxHeight = n
		return Nil()
	}
}
