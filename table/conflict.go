package table

import "github.com/arborist-lang/gram/grammar"

// resolveShiftReduceConflicts resolves every state that has
// both a default reduce and one or more shift entries: higher precedence
// wins outright; on a tie, Left drops the shift (prefer the reduce),
// Right keeps it (prefer the shift), and NonAssoc keeps the shift but
// marks it as a parse error if it is ever actually taken.
//
// Reduce/reduce conflicts are not handled here: they are caught earlier,
// at the point build.visit would otherwise overwrite one state's default
// reduce with a different rule (see setDefaultReduce).
func resolveShiftReduceConflicts(t *Table) {
	for id, def := range t.Default {
		row, ok := t.Actions[id]
		if !ok {
			continue
		}
		for name, act := range row {
			if act.Kind != Shift {
				continue
			}
			switch {
			case def.Prec > act.Prec:
				delete(row, name) // falls through to the default reduce
			case def.Prec < act.Prec:
				// shift already wins; nothing to do.
			default:
				switch act.Assoc {
				case grammar.Left:
					delete(row, name)
				case grammar.NonAssoc:
					act.NonAssocError = true
				case grammar.Right:
					// shift wins; nothing to do.
				}
			}
		}
	}
}
