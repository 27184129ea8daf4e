package table

import (
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/arborist-lang/gram/grammar"
)

// Builder compiles a grammar.Grammar into a Table. Build memoizes nothing
// itself; callers (the gram package) are expected to call it once per
// Grammar and cache the result.
type Builder struct {
	g *grammar.Grammar
}

// NewBuilder returns a Builder for g. Build runs g.Validate itself.
func NewBuilder(g *grammar.Grammar) *Builder {
	return &Builder{g: g}
}

// item is one position within one rule: the dot offset after Serial's
// first Dot components have matched.
type item struct {
	Serial int
	Dot    int
}

// itemSet is a state of the automaton the builder constructs: the set of
// items reachable at some point in the parse, closed over nonterminal
// expansion. Two different recursive paths that land on the identical set
// of items are, by construction, the same state.
type itemSet map[item]bool

func (s itemSet) sorted() []item {
	out := make([]item, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Serial != out[j].Serial {
			return out[i].Serial < out[j].Serial
		}
		return out[i].Dot < out[j].Dot
	})
	return out
}

func (s itemSet) id() StateID {
	h, err := structhash.Hash(s.sorted(), 1)
	if err != nil {
		panic("gram: table: hashing item set: " + err.Error())
	}
	return StateID(h)
}

// build carries the state threaded through one Builder.Build call.
type build struct {
	g         *grammar.Grammar
	rules     map[int]*grammar.Rule // by Serial, including the synthesized start rule
	t         *Table
	startRule *grammar.Rule
	seen      *treeset.Set // of string(StateID), states already visited
	err       error
}

// Build compiles g's rules into a Table, or returns the first
// *grammar.Error encountered — either one raised by g.Validate, or a
// reduce/reduce conflict synthesized while walking the automaton.
func (b *Builder) Build() (*Table, error) {
	if err := b.g.Validate(); err != nil {
		return nil, err
	}
	startSym, _ := b.g.Start()

	// A synthetic START rule gives the driver one deterministic entry
	// state and an ACCEPT that fires only under the END lookahead,
	// whether or not the grammar's own start symbol is itself terminal.
	startRule := &grammar.Rule{
		Serial:     -1,
		Name:       grammar.Start,
		Components: []grammar.Component{{Kind: grammar.CompSymbol, Symbol: startSym}},
		ActionKind: grammar.ActionIdentity,
	}

	rules := map[int]*grammar.Rule{startRule.Serial: startRule}
	for _, rs := range b.g.RuleSets() {
		for _, r := range rs.Rules {
			rules[r.Serial] = r
		}
	}

	bd := &build{
		g:         b.g,
		rules:     rules,
		t:         &Table{Actions: map[StateID]map[string]*Action{}, Default: map[StateID]*Action{}},
		startRule: startRule,
		seen:      treeset.NewWith(utils.StringComparator),
	}

	start := bd.closure(itemSet{{startRule.Serial, 0}: true})
	bd.t.Start = start.id()
	bd.visit(start)
	if bd.err != nil {
		return nil, bd.err
	}
	resolveShiftReduceConflicts(bd.t)
	tracer().Debugf("built table: %d states", bd.seen.Size())
	return bd.t, nil
}

// closure expands set with every item reachable by descending into a
// nonterminal's productions at dot 0, to a fixpoint. A grammar has only
// finitely many (rule, dot) pairs, so this always terminates.
func (bd *build) closure(set itemSet) itemSet {
	for changed := true; changed; {
		changed = false
		for it := range set {
			r := bd.rules[it.Serial]
			if it.Dot >= len(r.Components) {
				continue
			}
			name := r.Components[it.Dot].SymbolName()
			rs, ok := bd.g.RuleSetByName(name)
			if !ok {
				bd.err = grammar.NewError("gram: table: undefined symbol %q referenced by %s", name, r)
				return set
			}
			if rs.IsTerminal() {
				continue
			}
			for _, prod := range rs.Rules {
				key := item{prod.Serial, 0}
				if !set[key] {
					set[key] = true
					changed = true
				}
			}
		}
	}
	return set
}

// visit populates table[set.id()] with every shift, goto, reduce and
// accept entry set's items produce, then recurses into every state
// reachable from it. States already populated are skipped.
func (bd *build) visit(set itemSet) {
	if bd.err != nil {
		return
	}
	id := set.id()
	key := string(id)
	if bd.seen.Contains(key) {
		return
	}
	bd.seen.Add(key)

	byTerminal := map[string][]item{}
	byNonterm := map[string][]item{}
	for it := range set {
		r := bd.rules[it.Serial]
		if it.Dot == len(r.Components) {
			bd.reduce(id, r)
			continue
		}
		name := r.Components[it.Dot].SymbolName()
		rs, ok := bd.g.RuleSetByName(name)
		if !ok {
			bd.err = grammar.NewError("gram: table: undefined symbol %q referenced by %s", name, r)
			return
		}
		advanced := item{it.Serial, it.Dot + 1}
		if rs.IsTerminal() {
			byTerminal[name] = append(byTerminal[name], advanced)
		} else {
			byNonterm[name] = append(byNonterm[name], advanced)
		}
	}

	for name, items := range byTerminal {
		rs, _ := bd.g.RuleSetByName(name)
		term := rs.Rules[0]
		target := bd.closure(rawSet(items))
		bd.setShift(id, rs.Name, target.id(), term.Precedence, term.Assoc)
		bd.visit(target)
	}
	for name, items := range byNonterm {
		rs, _ := bd.g.RuleSetByName(name)
		target := bd.closure(rawSet(items))
		bd.setGoto(id, rs.Name, target.id())
		bd.visit(target)
	}
}

func rawSet(items []item) itemSet {
	set := make(itemSet, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// reduce records rule's completion at state id: ACCEPT if rule is the
// synthesized start rule, else the state's default reduce.
func (bd *build) reduce(id StateID, rule *grammar.Rule) {
	if rule == bd.startRule {
		bd.setAccept(id, rule)
		return
	}
	bd.setDefaultReduce(id, rule, bd.runningPrecedence(rule))
}

// runningPrecedence is the highest precedence among rule's own terminal
// components — the "running precedence" tracked while walking
// a production, recovered here directly from the completed rule's shape
// rather than threaded through the recursion.
func (bd *build) runningPrecedence(rule *grammar.Rule) int {
	max := 0
	for _, c := range rule.Components {
		name := c.SymbolName()
		if name == "" {
			continue
		}
		rs, ok := bd.g.RuleSetByName(name)
		if !ok || !rs.IsTerminal() {
			continue
		}
		if p := rs.Precedence(); p > max {
			max = p
		}
	}
	return max
}

func (bd *build) ensureRow(id StateID) map[string]*Action {
	row, ok := bd.t.Actions[id]
	if !ok {
		row = map[string]*Action{}
		bd.t.Actions[id] = row
	}
	return row
}

func (bd *build) setShift(id StateID, sym grammar.Symbol, next StateID, prec int, assoc grammar.Associativity) {
	row := bd.ensureRow(id)
	row[sym.Name()] = &Action{Kind: Shift, Next: next, Prec: prec, Assoc: assoc}
}

func (bd *build) setGoto(id StateID, sym grammar.Symbol, next StateID) {
	row := bd.ensureRow(id)
	row[sym.Name()] = &Action{Kind: Goto, Next: next}
}

func (bd *build) setAccept(id StateID, rule *grammar.Rule) {
	row := bd.ensureRow(id)
	row[grammar.End.Name()] = &Action{Kind: Accept, Rule: rule}
}

// setDefaultReduce records rule's completion as the nil-lookahead reduce
// for state id. A second, different rule completing in the same state is
// a reduce/reduce conflict: it must surface as a
// *grammar.Error naming both rules, at table-build time rather than parse
// time.
func (bd *build) setDefaultReduce(id StateID, rule *grammar.Rule, prec int) {
	if existing, ok := bd.t.Default[id]; ok && existing.Rule != rule {
		bd.err = grammar.NewError("gram: reduce/reduce conflict: %s and %s both complete in the same state", existing.Rule, rule)
		return
	}
	bd.t.Default[id] = &Action{Kind: Reduce, Rule: rule, Prec: prec}
}
