package testutil

import "github.com/roach88/ease/internal/callsite"

// StaticCapturer returns the same stack on every capture, ignoring skip.
// Stack index 0 then selects Stack[0] directly.
type StaticCapturer struct {
	Stack callsite.Stack
}

// Capture returns a copy of c.Stack.
func (c StaticCapturer) Capture(int) callsite.Stack {
	out := make(callsite.Stack, len(c.Stack))
	copy(out, c.Stack)
	return out
}
