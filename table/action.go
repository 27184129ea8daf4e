package table

import "github.com/arborist-lang/gram/grammar"

// Kind distinguishes the four action shapes a table entry can hold.
type Kind int

const (
	// Shift consumes the lookahead and pushes Next.
	Shift Kind = iota
	// Reduce pops |Rule.Components| stack entries, applies Rule's
	// action, and pushes the result before a GOTO.
	Reduce
	// Goto is pushed after a reduce, keyed by the reducing nonterminal;
	// it is never triggered directly by a lookahead token.
	Goto
	// Accept is the final reduction of the (synthetic) start rule.
	Accept
)

func (k Kind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Goto:
		return "goto"
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

// Action is one cell of the parse table.
type Action struct {
	Kind Kind

	// Next is the target state for Shift and Goto.
	Next StateID

	// Rule is the production being reduced or accepted, for Reduce and
	// Accept.
	Rule *grammar.Rule

	// Prec and Assoc are the terminal's own precedence/associativity for
	// Shift, or the "running precedence" of the reducing production for
	// Reduce; see the table builder's conflict resolution.
	Prec  int
	Assoc grammar.Associativity

	// NonAssocError is set by conflict resolution on a NonAssoc shift of
	// equal precedence to the state's default reduce: the shift is kept,
	// and using this entry at parse time is itself a parse error.
	NonAssocError bool
}
