package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxStackHeight bounds the call stack of a new Runtime.  The
// evaluator performs no tail-call elimination, so deep recursion consumes one
// frame per call; the bound turns runaway recursion into a stack-overflow
// error instead of exhausting the host stack.
const DefaultMaxStackHeight = 10000

// CallStack tracks the procedures currently being applied.
type CallStack struct {
	Frames    []CallFrame
	MaxHeight int // non-positive means unbounded
}

// CallFrame is one frame in the CallStack.
type CallFrame struct {
	FID string
}

// Push adds a frame for fid.  It returns a stack-overflow error when the
// stack has reached its maximum height.
func (s *CallStack) Push(fid string) *LVal {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return ErrorConditionf(ErrStackOverflow, "call stack exceeds maximum height %d", s.MaxHeight)
	}
	s.Frames = append(s.Frames, CallFrame{FID: fid})
	return nil
}

// Pop removes the top frame.
func (s *CallStack) Pop() {
	if len(s.Frames) == 0 {
		panic("pop of empty stack")
	}
	s.Frames = s.Frames[:len(s.Frames)-1]
}

// Top returns the top frame or nil when the stack is empty.
func (s *CallStack) Top() *CallFrame {
	if len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	return len(s.Frames)
}

// DebugPrint writes the stack contents to w, outermost call first.
func (s *CallStack) DebugPrint(w io.Writer) {
	fmt.Fprintf(w, "call stack [%d frames]:\n", len(s.Frames))
	for i, frame := range s.Frames {
		fmt.Fprintf(w, "  height %d: %s\n", i, frame.FID)
	}
}
