package grammar

import "fmt"

// Error is a grammar-construction error: an invariant violated while
// building or validating a grammar (undefined symbol, conflicting rule
// declarations, misplaced regex component, ...). These are developer
// errors; they are never retried, and callers should treat them as fatal
// to the grammar they were raised against. See spec-level error taxonomy
// in package gram for where these surface to a caller.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError formats and returns an *Error, the grammar-package analogue of
// errors/errors.go's Format helper used elsewhere in this codebase's
// lineage.
func newError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// NewError formats and returns an *Error. It is exported so sibling
// packages (table, parser) that detect grammar-shaped problems at
// table-build time - a reduce/reduce conflict, an undefined symbol found
// mid-walk - can raise the same error type Grammar.Validate does.
func NewError(format string, args ...interface{}) *Error {
	return newError(format, args...)
}
