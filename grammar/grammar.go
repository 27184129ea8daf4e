package grammar

import "strings"

// Grammar is the in-memory representation of a complete set of RuleSets
// plus a declared start symbol. Grammars are mutated only during
// construction (via the builder methods in builder.go); once handed to
// package table for parse-table synthesis they are treated as read-only and
// are safe to share across goroutines.
type Grammar struct {
	Name string

	ruleSets map[string]*RuleSet
	order    []string // declaration order, for Dump and lexer priority

	start    Symbol
	hasStart bool

	nextSerial int

	// err remembers the first construction error encountered by any
	// builder call, so that fluent chains never need to thread an error
	// return through every method. It surfaces at Validate/first parse,
	// matching the rule that grammar errors surface at the first parse
	// call" propagation rule.
	err error
}

// New creates an empty, named grammar. The name is cosmetic (used in Dump
// output and trace messages), mirroring gorgo's NewGrammarBuilder(name).
func New(name string) *Grammar {
	return &Grammar{
		Name:     name,
		ruleSets: make(map[string]*RuleSet),
	}
}

// Err returns the first construction error recorded by any DSL call, or
// nil.
func (g *Grammar) Err() error {
	return g.err
}

func (g *Grammar) fail(err error) {
	if g.err == nil {
		g.err = err
		tracer().Errorf("grammar %q: %v", g.Name, err)
	}
}

// RuleSet looks up the RuleSet registered under sym, if any.
func (g *Grammar) RuleSet(sym Symbol) (*RuleSet, bool) {
	rs, ok := g.ruleSets[sym.Name()]
	return rs, ok
}

// RuleSetByName looks up a RuleSet by its plain name string.
func (g *Grammar) RuleSetByName(name string) (*RuleSet, bool) {
	rs, ok := g.ruleSets[name]
	return rs, ok
}

// RuleSets returns every RuleSet in declaration order.
func (g *Grammar) RuleSets() []*RuleSet {
	out := make([]*RuleSet, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.ruleSets[name])
	}
	return out
}

// ensureRuleSet returns the RuleSet for sym, creating an empty one (and
// recording declaration order) if this is the first time sym is seen.
func (g *Grammar) ensureRuleSet(sym Symbol) *RuleSet {
	rs, ok := g.ruleSets[sym.Name()]
	if !ok {
		rs = &RuleSet{Name: sym}
		g.ruleSets[sym.Name()] = rs
		g.order = append(g.order, sym.Name())
	}
	return rs
}

// ensureLiteralTerminal makes sure sym is backed by a terminal rule
// matching literal verbatim, creating one the first time a bare string
// component refers to a name nothing has explicitly declared via Terminal
// or Pattern yet. This is what lets Add("a", "b", "c") name its own
// terminals inline instead of requiring a separate Terminal call first.
func (g *Grammar) ensureLiteralTerminal(sym Symbol, literal string) {
	rs := g.ensureRuleSet(sym)
	if len(rs.Rules) > 0 || rs.declaredAsTerminal {
		return
	}
	rs.declaredAsTerminal = true
	g.addRule(&Rule{
		Name:       sym,
		Components: []Component{{Kind: CompLiteral, Literal: literal}},
		ActionKind: ActionIdentity,
	})
}

func (g *Grammar) addRule(r *Rule) {
	r.Serial = g.nextSerial
	g.nextSerial++
	rs := g.ensureRuleSet(r.Name)
	rs.Rules = append(rs.Rules, r)
}

// SetStart declares name as the grammar's start symbol. May be called
// before the referenced RuleSet exists.
func (g *Grammar) SetStart(name string) {
	g.start = NewSymbol(name)
	g.hasStart = true
}

// Start returns the declared start symbol and whether one was set.
func (g *Grammar) Start() (Symbol, bool) {
	return g.start, g.hasStart
}

// Validate checks every construction invariant that is not already
// enforced at DSL-call time: a start symbol is declared and has rules, and
// every Symbol or literal referenced by a component resolves to a defined
// RuleSet. It also returns the first error any DSL call recorded. Regex
// components are not checked here; builder.go rejects misplaced ones when
// they are added.
func (g *Grammar) Validate() error {
	if g.err != nil {
		return g.err
	}
	if !g.hasStart {
		return newError("grammar %q: no start symbol declared", g.Name)
	}
	if _, ok := g.ruleSets[g.start.Name()]; !ok {
		return newError("grammar %q: start symbol %q has no rules", g.Name, g.start.Name())
	}
	for _, name := range g.order {
		rs := g.ruleSets[name]
		for _, r := range rs.Rules {
			for _, c := range r.Components {
				if c.Kind == CompRegex {
					continue
				}
				refName := c.SymbolName()
				if _, ok := g.ruleSets[refName]; !ok {
					return newError("grammar %q: rule %s references undefined symbol %q", g.Name, r, refName)
				}
			}
		}
	}
	return nil
}

// Dump renders every RuleSet and its alternatives as
// "<name> := [<components…>]", one per line, in declaration order. Intended
// for debugging and for the reduce/reduce error message format, which
// reuses Rule.String.
func (g *Grammar) Dump() string {
	var b strings.Builder
	for _, name := range g.order {
		rs := g.ruleSets[name]
		for _, r := range rs.Rules {
			b.WriteString(r.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
