package lexer

import "fmt"

// UnconsumedInputError is raised when no terminal RuleSet matches at the
// current cursor and the cursor has not reached the end of input.
type UnconsumedInputError struct {
	Remainder string // the unmatched suffix, from the failing offset onward
	Line      int
	Offset    int
}

func (e *UnconsumedInputError) Error() string {
	rem := e.Remainder
	if len(rem) > 40 {
		rem = rem[:40] + "..."
	}
	return fmt.Sprintf("unconsumed input at line %d, offset %d: %q", e.Line, e.Offset, rem)
}
