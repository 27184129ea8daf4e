package grammar

import (
	"fmt"
	"regexp"
)

// RuleBuilder accumulates alternatives for one nonterminal name, returned
// by Grammar.Rule. Each call to Add starts a new alternative; the returned
// AltBuilder installs its reduction action.
type RuleBuilder struct {
	g    *Grammar
	name Symbol
}

// Rule declares or extends a nonterminal RuleSet named name, returning a
// builder for its alternatives. Calling Rule with the same name more than
// once appends further alternatives to the same RuleSet, in call order.
func (g *Grammar) Rule(name string) *RuleBuilder {
	sym := NewSymbol(name)
	rs := g.ensureRuleSet(sym)
	if rs.declaredAsTerminal {
		g.fail(newError("rule %q already declared as a terminal (pattern or literal) — cannot also add block alternatives", name))
	}
	return &RuleBuilder{g: g, name: sym}
}

// Add appends a new alternative with the given components and returns an
// AltBuilder to install its action. A component may be a string (a literal
// terminal reference — or, if alone in a single-component rule created
// through Grammar.Terminal, that literal's own definition), a Symbol (a
// reference to another RuleSet, terminal or nonterminal), or a
// *regexp.Regexp (legal only as the sole component of a rule created
// through Grammar.Pattern).
func (rb *RuleBuilder) Add(components ...interface{}) *AltBuilder {
	g := rb.g
	comps := make([]Component, 0, len(components))
	for _, c := range components {
		switch v := c.(type) {
		case string:
			comps = append(comps, Component{Kind: CompLiteral, Literal: v})
			g.ensureLiteralTerminal(NewSymbol(v), v)
		case Symbol:
			comps = append(comps, Component{Kind: CompSymbol, Symbol: v})
		case *regexp.Regexp:
			comps = append(comps, Component{Kind: CompRegex, Pattern: v})
		default:
			g.fail(newError("rule %q: invalid component %v (%T): must be a string, Symbol, or *regexp.Regexp", rb.name.Name(), c, c))
			comps = append(comps, Component{Kind: CompLiteral, Literal: fmt.Sprintf("%v", c)})
		}
	}
	if err := validateComponents(rb.name.Name(), comps); err != nil {
		g.fail(err)
	}
	r := &Rule{
		Name:       rb.name,
		Components: comps,
		ActionKind: ActionIdentity,
	}
	if len(comps) == 1 && comps[0].Kind == CompRegex {
		r.Pattern = comps[0].Pattern
	}
	g.addRule(r)
	return &AltBuilder{g: g, rule: r}
}

// validateComponents enforces the DSL's immediate construction errors: a regex
// may only appear as the sole component of a rule, and a regex as the sole
// component of a rule declared through the nonterminal-oriented Rule/Add
// path (rather than Grammar.Pattern) is rejected too, since that path is
// reserved for nonterminal productions.
func validateComponents(ruleName string, comps []Component) error {
	for i, c := range comps {
		if c.Kind == CompRegex && len(comps) > 1 {
			return newError("rule %q: regex component in a multi-component production (component %d)", ruleName, i)
		}
	}
	if len(comps) == 1 && comps[0].Kind == CompRegex {
		return newError("rule %q: regex terminal declared through Rule/Add — use Grammar.Pattern for terminal rules", ruleName)
	}
	return nil
}

// AltBuilder installs the reduction action for one alternative just added
// with RuleBuilder.Add or the terminal shorthands Terminal/Pattern.
type AltBuilder struct {
	g    *Grammar
	rule *Rule
}

// As installs a custom reduction action.
func (ab *AltBuilder) As(fn ReduceFunc) *AltBuilder {
	ab.rule.ActionKind = ActionCustom
	ab.rule.Action = fn
	return ab
}

// AsValue installs the identity action explicitly (the default for
// terminal rules, but sometimes useful to state for a single-component
// nonterminal alternative such as expr := num). The identity action
// returns the first component's value.
func (ab *AltBuilder) AsValue() *AltBuilder {
	ab.rule.ActionKind = ActionIdentity
	return ab
}

// Skip marks this terminal as discarded: the lexer advances over matches
// but never delivers them to the driver (whitespace, comments, ...). Only
// meaningful on terminal rules.
func (ab *AltBuilder) Skip() *AltBuilder {
	ab.rule.ActionKind = ActionDiscard
	return ab
}

// Prec sets a terminal rule's precedence (default 0). No-op, logged, on
// nonterminal rules.
func (ab *AltBuilder) Prec(p int) *AltBuilder {
	if !ab.rule.IsTerminal() {
		tracer().Errorf("rule %q: Prec set on a nonterminal rule, ignored", ab.rule.Name.Name())
		return ab
	}
	ab.rule.Precedence = p
	return ab
}

// Assoc sets a terminal rule's associativity (default Right). No-op,
// logged, on nonterminal rules.
func (ab *AltBuilder) Assoc(a Associativity) *AltBuilder {
	if !ab.rule.IsTerminal() {
		tracer().Errorf("rule %q: Assoc set on a nonterminal rule, ignored", ab.rule.Name.Name())
		return ab
	}
	ab.rule.Assoc = a
	return ab
}

// Terminal declares a terminal RuleSet matched by a literal string. This is
// a shorthand equivalent to
// Rule(literal).Add(literal), but also marks the RuleSet as
// terminal-declared so that a later Rule(literal) call for the same name is
// rejected as a conflicting declaration.
func (g *Grammar) Terminal(literal string) *AltBuilder {
	sym := NewSymbol(literal)
	rs := g.ensureRuleSet(sym)
	if len(rs.Rules) > 0 {
		g.fail(newError("terminal %q already declared", literal))
	}
	rs.declaredAsTerminal = true
	r := &Rule{
		Name:       sym,
		Components: []Component{{Kind: CompLiteral, Literal: literal}},
		ActionKind: ActionIdentity,
	}
	g.addRule(r)
	return &AltBuilder{g: g, rule: r}
}

// Pattern declares a named terminal RuleSet matched by pattern, anchored so
// it can only match starting exactly at the lexer's cursor. This is the
// shorthand for a named regex-backed terminal.
func (g *Grammar) Pattern(name, pattern string) *AltBuilder {
	sym := NewSymbol(name)
	rs := g.ensureRuleSet(sym)
	if len(rs.Rules) > 0 {
		g.fail(newError("terminal %q already declared", name))
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		g.fail(newError("terminal %q: invalid pattern %q: %v", name, pattern, err))
		re = regexp.MustCompile(`\A\z.`) // never matches; keeps the grammar buildable enough to report g.err
	}
	rs.declaredAsTerminal = true
	r := &Rule{
		Name:       sym,
		Components: []Component{{Kind: CompRegex, Pattern: re}},
		ActionKind: ActionIdentity,
		Pattern:    re,
	}
	g.addRule(r)
	return &AltBuilder{g: g, rule: r}
}
