/*
Package table builds and represents the parse table a Grammar is compiled
into on first use.

The builder walks the grammar's productions depth-first from its start
symbol, closing over nonterminals the way gorgo/lr/tables.go's CFSM
construction does, and names each state by the set of (rule, dot) items
that reach it rather than by the path taken to reach it. That's what lets
two productions that only turn out to share a continuation once their
context is merged converge on the same state — the mechanism the item-set
worked reduce/reduce example depends on — while still terminating on
self-embedding rules (nested parentheses and the like), since the states
reachable from a finite grammar are themselves a finite set. The builder
never computes FOLLOW sets or per-lookahead reduce entries beyond the
single nil-keyed default a lookup falls back to; that is the line between
this and a full LALR(1) construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package table

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"

	"github.com/arborist-lang/gram/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("gram.table")
}

// StateID names a parse-table state. It is opaque outside this package;
// callers compare it only for equality.
type StateID string

// Table is the compiled action/goto table for one Grammar. A Table is
// immutable once built and safe for concurrent Lookup/Goto calls.
type Table struct {
	// Actions holds every SHIFT, GOTO and ACCEPT entry, and any REDUCE
	// entry that is keyed to a specific lookahead rather than the
	// default. Keyed by state, then by symbol name.
	Actions map[StateID]map[string]*Action

	// Default holds the nil-lookahead REDUCE entry for states that
	// complete a production: absent a specific entry
	// matches, fall back to the nil-keyed default reduce" rule.
	Default map[StateID]*Action

	Start StateID
}

// Lookup returns the action the driver should take in state id when the
// lookahead is sym: a specific entry if one exists, else the default
// reduce, else (nil, false).
func (t *Table) Lookup(id StateID, sym grammar.Symbol) (*Action, bool) {
	if row, ok := t.Actions[id]; ok {
		if act, ok := row[sym.Name()]; ok {
			return act, true
		}
	}
	if def, ok := t.Default[id]; ok {
		return def, true
	}
	return nil, false
}

// Goto returns the GOTO entry for state id on nonterminal sym, used after a
// reduce has popped back to an earlier state.
func (t *Table) Goto(id StateID, sym grammar.Symbol) (*Action, bool) {
	row, ok := t.Actions[id]
	if !ok {
		return nil, false
	}
	act, ok := row[sym.Name()]
	if !ok || act.Kind != Goto {
		return nil, false
	}
	return act, true
}

// Expected lists, in declaration-independent sorted order, the symbol names
// that would trigger a SHIFT or ACCEPT from state id. The error reporter
// uses this to render "expected one of [...]" messages. The
// END sentinel is rendered as the literal string "END" rather than its
// internal (unprintable) symbol name.
func (t *Table) Expected(id StateID) []string {
	row, ok := t.Actions[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(row))
	for name, act := range row {
		if act.Kind != Shift && act.Kind != Accept {
			continue
		}
		if name == grammar.End.Name() {
			name = "END"
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

