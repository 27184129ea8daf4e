package grammar

import "regexp"

// ComponentKind tags what kind of reference a Component is: another Symbol,
// a literal string terminal, or a regex terminal.
type ComponentKind int

const (
	// CompSymbol references another RuleSet by name (terminal or
	// nonterminal; which it is is only known once the grammar is
	// complete).
	CompSymbol ComponentKind = iota
	// CompLiteral is an inline literal-string terminal, e.g. "+".
	CompLiteral
	// CompRegex is an inline regex terminal; only legal as the sole
	// component of a rule declared through Grammar.Pattern.
	CompRegex
)

// Component is one element of a Rule's right-hand side: a tagged union of
// Symbol | literal string | regex pattern, per the grammar's data model.
type Component struct {
	Kind    ComponentKind
	Symbol  Symbol         // CompSymbol
	Literal string         // CompLiteral
	Pattern *regexp.Regexp // CompRegex
}

// SymbolName returns the name under which this component's RuleSet is
// registered: the Symbol's own name for CompSymbol, or the literal text
// itself for CompLiteral (every literal terminal is auto-registered as a
// RuleSet named after its own text). CompRegex components have no name of
// their own — they only ever appear inline in the terminal rule that owns
// them.
func (c Component) SymbolName() string {
	switch c.Kind {
	case CompSymbol:
		return c.Symbol.Name()
	case CompLiteral:
		return c.Literal
	default:
		return ""
	}
}

func (c Component) String() string {
	switch c.Kind {
	case CompSymbol:
		return c.Symbol.Name()
	case CompLiteral:
		return "\"" + c.Literal + "\""
	case CompRegex:
		return "/" + c.Pattern.String() + "/"
	default:
		return "?"
	}
}
