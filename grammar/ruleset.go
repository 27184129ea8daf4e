package grammar

// RuleSet is the bag of productions sharing one name: the alternatives a
// user wrote with repeated calls to Grammar.Rule(name).Add(...). Order is
// preserved, and Grammar.Dump lists alternatives in it. Lexer priority
// between terminal RuleSets follows the order the RuleSets themselves were
// declared (first-declared wins a tie, see package lexer). Package table
// never picks a winner between two alternatives completing in the same
// state: that is reported as a reduce/reduce conflict error.
type RuleSet struct {
	Name  Symbol
	Rules []*Rule

	// declaredAsTerminal remembers whether this RuleSet was created via
	// Grammar.Terminal/Grammar.Pattern (as opposed to Grammar.Rule), so
	// that mixing the two declaration styles for the same name can be
	// rejected as a grammar-construction error.
	declaredAsTerminal bool
}

// IsTerminal reports whether rs is a terminal RuleSet: exactly one rule,
// and that rule is terminal. Its precedence and associativity are that of
// its single rule.
func (rs *RuleSet) IsTerminal() bool {
	return len(rs.Rules) == 1 && rs.Rules[0].IsTerminal()
}

// Precedence returns the precedence of a terminal RuleSet's single rule, or
// 0 for nonterminal RuleSets.
func (rs *RuleSet) Precedence() int {
	if rs.IsTerminal() {
		return rs.Rules[0].Precedence
	}
	return 0
}

// Associativity returns the associativity of a terminal RuleSet's single
// rule, or the default (Right) for nonterminal RuleSets.
func (rs *RuleSet) Associativity() Associativity {
	if rs.IsTerminal() {
		return rs.Rules[0].Assoc
	}
	return Right
}
