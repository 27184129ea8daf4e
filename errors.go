package gram

import (
	"github.com/arborist-lang/gram/grammar"
	"github.com/arborist-lang/gram/lexer"
	"github.com/arborist-lang/gram/parser"
)

// Re-exported error types, so callers
// never need to import the subpackages directly to type-switch on them.
type (
	// GrammarError is raised at table-construction time: an unreferenced
	// symbol, a reduce/reduce conflict, a malformed component. See
	// grammar.Error.
	GrammarError = grammar.Error
	// ParseError is raised by the driver when no action matches the
	// current (state, lookahead), or a reduce completes with no GOTO
	// defined for the state that follows. See parser.ParseError.
	ParseError = parser.ParseError
	// NonAssocError is raised when a non-associative operator is used in
	// a position that would need associativity to disambiguate. See
	// parser.NonAssocError.
	NonAssocError = parser.NonAssocError
	// UnconsumedInputError is raised by the lexer when no terminal
	// matches at the cursor and the cursor has not reached end of
	// input. See lexer.UnconsumedInputError.
	UnconsumedInputError = lexer.UnconsumedInputError
)
