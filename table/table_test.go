package table

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/arborist-lang/gram/grammar"
)

func setup(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

func TestBuildAcceptsSimpleLiteralSequence(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Rule("prog").Add("a", "b", "c")
	g.SetStart("prog")

	tbl, err := NewBuilder(g).Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	expected := tbl.Expected(tbl.Start)
	if len(expected) != 1 || expected[0] != "a" {
		t.Errorf("expected start state to expect [a], got %v", expected)
	}
}

// Grounded on a worked example of a grammar whose two alternatives
// both reduce a bare "id" token in the same state: prog := list | id and
// list := list id | id compete for the reduction of a lone "id", and the
// builder must report that rather than silently picking one.
func TestReduceReduceConflictOnCompetingSingleTokenRules(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Pattern("id", `[a-z]+`)
	list := grammar.NewSymbol("list")
	id := grammar.NewSymbol("id")
	g.Rule("list").Add(list, id)
	g.Rule("list").Add(id)
	g.Rule("prog").Add(list)
	g.Rule("prog").Add(id)
	g.SetStart("prog")

	_, err := NewBuilder(g).Build()
	if err == nil {
		t.Fatal("expected a reduce/reduce conflict error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "prog") || !strings.Contains(msg, "list") {
		t.Errorf("expected conflict message to name both competing rules, got %q", msg)
	}
}

func TestPrecedenceResolvesShiftReduceConflict(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Pattern("num", `[0-9]+`)
	g.Terminal("+").Prec(1).Assoc(grammar.Left)
	expr := grammar.NewSymbol("expr")
	plus := grammar.NewSymbol("+")
	num := grammar.NewSymbol("num")
	g.Rule("expr").Add(expr, plus, expr).As(func(args []interface{}) interface{} { return args })
	g.Rule("expr").Add(num).AsValue()
	g.SetStart("expr")

	tbl, err := NewBuilder(g).Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if tbl == nil {
		t.Fatal("expected a non-nil table")
	}
	// Walk expr, "+", expr from the start state to the state holding
	// expr := [expr "+" expr] complete: with "+" left-associative at the
	// same precedence as the pending reduce, "+" must reduce there.
	afterExpr, ok := tbl.Goto(tbl.Start, expr)
	if !ok {
		t.Fatal("expected a GOTO on expr from the start state")
	}
	afterPlus, ok := tbl.Lookup(afterExpr.Next, plus)
	if !ok || afterPlus.Kind != Shift {
		t.Fatalf("expected a shift on \"+\" after expr, got %v", afterPlus)
	}
	afterRHS, ok := tbl.Goto(afterPlus.Next, expr)
	if !ok {
		t.Fatal("expected a GOTO on expr after \"+\"")
	}
	if act, ok := tbl.Lookup(afterRHS.Next, plus); !ok || act.Kind != Reduce {
		t.Errorf("expected \"+\" to reduce expr + expr (left associative), got %v", act)
	}
}

func TestEpsilonAlternativeReducesWithoutShifting(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	parens := grammar.NewSymbol("parens")
	g.Rule("parens").Add("(", parens, ")")
	g.Rule("parens").Add()
	g.SetStart("parens")

	tbl, err := NewBuilder(g).Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if _, ok := tbl.Default[tbl.Start]; !ok {
		t.Error("expected the epsilon alternative to register a default reduce at the start state")
	}
	expected := tbl.Expected(tbl.Start)
	if len(expected) != 1 || expected[0] != "(" {
		t.Errorf("expected start state to also expect '(', got %v", expected)
	}
}
