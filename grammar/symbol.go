/*
Package grammar implements the in-memory representation of a context-free
grammar: symbols, productions (rules), alternative sets (rule sets), and the
builder clients use to assemble a grammar before it is handed to package
table for parse-table synthesis.

Grammars are built once, synchronously, by a single goroutine, and are
treated as immutable afterwards — exactly as the table and parser packages
expect (see package table's doc comment for the construction pipeline).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gram.grammar")
}

// Symbol identifies a terminal or nonterminal in a grammar. Symbols compare
// by identity of name: two Symbols with the same name refer to the same
// RuleSet.
//
// Symbol also carries the two reserved sentinels every grammar implicitly
// defines: Start (the synthetic top rule, used only internally by package
// table) and End (the end-of-input lookahead).
type Symbol struct {
	name string
}

// NewSymbol returns the Symbol for name. Two calls with the same name
// produce equal Symbols.
func NewSymbol(name string) Symbol {
	return Symbol{name: name}
}

// Name returns the symbol's identifier.
func (s Symbol) Name() string {
	return s.name
}

// IsZero reports whether s is the zero-value Symbol (no symbol at all).
func (s Symbol) IsZero() bool {
	return s.name == ""
}

func (s Symbol) String() string {
	return s.name
}

// reserved sentinel names; chosen so they can never collide with a
// user-supplied rule name (control character prefix).
const (
	startName = "\x00START"
	endName   = "\x00END"
)

// Start is the synthetic top-level symbol package table wraps around the
// grammar's declared start symbol.
var Start = Symbol{name: startName}

// End is the end-of-input sentinel, used as a lookahead symbol and as the
// "received" symbol name for errors at end of input.
var End = Symbol{name: endName}

// IsEnd reports whether s is the End sentinel.
func (s Symbol) IsEnd() bool {
	return s.name == endName
}

// IsStart reports whether s is the synthetic Start sentinel.
func (s Symbol) IsStart() bool {
	return s.name == startName
}
