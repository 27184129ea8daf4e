package table

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Dump renders every state's action row as human-readable lines, in the
// style of gorgo/lr/tables.go's CFSMState.Dump: one state per line group,
// one action per line. Intended for gconf's "gram.dump-table" debug
// switch, not for machine parsing.
func (t *Table) Dump() string {
	lines := arraylist.New()
	for id, row := range t.Actions {
		lines.Add(fmt.Sprintf("state %s:", shortID(id)))
		for name, act := range row {
			lines.Add(fmt.Sprintf("  on %s: %s", name, actionString(act)))
		}
		if def, ok := t.Default[id]; ok {
			lines.Add(fmt.Sprintf("  default: %s", actionString(def)))
		}
	}
	out := ""
	it := lines.Iterator()
	for it.Next() {
		out += it.Value().(string) + "\n"
	}
	return out
}

func actionString(a *Action) string {
	switch a.Kind {
	case Shift:
		s := fmt.Sprintf("shift -> %s", shortID(a.Next))
		if a.NonAssocError {
			s += " (non-associative: using this is a parse error)"
		}
		return s
	case Goto:
		return fmt.Sprintf("goto -> %s", shortID(a.Next))
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Rule)
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

func shortID(id StateID) string {
	s := string(id)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
