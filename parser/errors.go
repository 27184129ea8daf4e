package parser

import (
	"fmt"
	"strings"
)

// ParseError reports a parse failure at a specific point in the input: the
// lookahead actually seen, the symbols that would have been accepted
// instead, and a caret-marked excerpt of the offending source line.
type ParseError struct {
	Line     int
	Offset   int
	Received string
	Expected []string
	Excerpt  string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error at line %d: unexpected %s\n%s", e.Line, e.Received, e.Excerpt)
	}
	return fmt.Sprintf("parse error at line %d: expected one of [%s], got %s\n%s",
		e.Line, strings.Join(e.Expected, ", "), e.Received, e.Excerpt)
}

// NonAssocError reports that the parser reached a non-associative operator
// in a position where associativity would be needed to disambiguate
// (NonAssoc conflict resolution).
type NonAssocError struct {
	Line   int
	Symbol string
}

func (e *NonAssocError) Error() string {
	return fmt.Sprintf("parse error at line %d: %q is non-associative and cannot be chained without parentheses", e.Line, e.Symbol)
}

// excerptContext is how many bytes of the offending line excerpt keeps on
// either side of the caret before eliding the rest as "...".
const excerptContext = 5

// excerpt renders the source line containing offset, with a caret under
// the column where the error was detected. More than excerptContext bytes
// before the caret are elided as a leading "... ", and more than
// excerptContext bytes after the caret's own character as a trailing " ...".
func excerpt(input string, offset int) string {
	lineStart := strings.LastIndexByte(input[:offset], '\n') + 1
	lineEnd := len(input)
	if idx := strings.IndexByte(input[offset:], '\n'); idx >= 0 {
		lineEnd = offset + idx
	}
	line := input[lineStart:lineEnd]
	col := offset - lineStart
	if col > excerptContext {
		line = "... " + line[col-excerptContext:]
		col = len("... ") + excerptContext
	}
	if len(line) > col+1+excerptContext {
		line = line[:col+1+excerptContext] + " ..."
	}
	return line + "\n" + strings.Repeat(" ", col) + "^"
}
