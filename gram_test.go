package gram

import (
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setup(t *testing.T) func() {
	gtrace.SyntaxTracer = gotestingadapter.New(t)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	return gotestingadapter.RedirectTracing(t)
}

func toInt(args []interface{}) interface{} {
	n, _ := strconv.Atoi(args[0].(string))
	return n
}

// TestSumOfTwoInts builds a sum rule over an int terminal cast to an
// integer value. "10+20" -> 30.
func TestSumOfTwoInts(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("sum")
	g.Pattern("int", `[0-9]+`).As(toInt)
	g.Rule("sum").Add(Sym("int"), "+", Sym("int")).As(func(args []interface{}) interface{} {
		return args[0].(int) + args[2].(int)
	})
	g.Start("sum")

	v, err := g.Parse("10+20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 30 {
		t.Errorf("got %v, want 30", v)
	}
}

func infixExprGrammar() *Grammar {
	g := New("expr")
	g.Pattern("int", `[0-9]+`).As(toInt)
	g.Terminal("+").Prec(1).Assoc(Left)
	g.Terminal("*").Prec(2).Assoc(Left)
	expr := Sym("expr")
	g.Rule("expr").Add(expr, Sym("+"), expr).As(func(args []interface{}) interface{} {
		return args[0].(int) + args[2].(int)
	})
	g.Rule("expr").Add(expr, Sym("*"), expr).As(func(args []interface{}) interface{} {
		return args[0].(int) * args[2].(int)
	})
	g.Rule("expr").Add(Sym("int")).AsValue()
	g.Start("expr")
	return g
}

// TestPrecedenceOfTimesOverPlus checks that "*" binds tighter than "+"
// by declared precedence alone. "1+2*3" -> 7.
func TestPrecedenceOfTimesOverPlus(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	v, err := infixExprGrammar().Parse("1+2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("got %v, want 7", v)
	}
}

// TestLeftAssociativeMinus adds a left-associative "-" at the same
// precedence as "+". "6-3-1" -> 2.
func TestLeftAssociativeMinus(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := infixExprGrammar()
	g.Terminal("-").Prec(1).Assoc(Left)
	expr := Sym("expr")
	g.Rule("expr").Add(expr, Sym("-"), expr).As(func(args []interface{}) interface{} {
		return args[0].(int) - args[2].(int)
	})

	v, err := g.Parse("6-3-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("got %v, want 2", v)
	}
}

// TestParenthesizedMinusExpression adds parenthesized subexpressions on
// top of a left-associative "-". "2-(3-1)-1" -> -1.
func TestParenthesizedMinusExpression(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("expr")
	g.Pattern("int", `[0-9]+`).As(toInt)
	g.Terminal("-").Prec(1).Assoc(Left)
	expr := Sym("expr")
	g.Rule("expr").Add(expr, Sym("-"), expr).As(func(args []interface{}) interface{} {
		return args[0].(int) - args[2].(int)
	})
	g.Rule("expr").Add(Sym("int")).AsValue()
	g.Rule("expr").Add("(", expr, ")").As(func(args []interface{}) interface{} {
		return args[1]
	})
	g.Start("expr")

	v, err := g.Parse("2-(3-1)-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 {
		t.Errorf("got %v, want -1", v)
	}
}

// TestSkippedWhitespaceAroundMinus checks that a skip()-marked
// whitespace terminal is silently discarded between tokens.
// "6 - 3 - 1" -> 2.
func TestSkippedWhitespaceAroundMinus(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("expr")
	g.Pattern("ws", `\s+`).Skip()
	g.Pattern("int", `[0-9]+`).As(toInt)
	g.Terminal("-").Prec(1).Assoc(Left)
	expr := Sym("expr")
	g.Rule("expr").Add(expr, Sym("-"), expr).As(func(args []interface{}) interface{} {
		return args[0].(int) - args[2].(int)
	})
	g.Rule("expr").Add(Sym("int")).AsValue()
	g.Start("expr")

	v, err := g.Parse("6 - 3 - 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("got %v, want 2", v)
	}
}

// TestCommaListReportsLineAndColumnOfBadToken checks that a malformed
// element several lines into a comma-separated list is reported against
// the line it actually occurs on, not line 1.
func TestCommaListReportsLineAndColumnOfBadToken(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("list")
	g.Pattern("ws", `\s+`).Skip()
	g.Pattern("id", `[a-z]+`)
	g.Terminal("-") // unused by any rule; gives the bad "-" a Symbol to be received as
	list := Sym("list")
	g.Rule("list").Add(list, ",", Sym("id")).As(func(args []interface{}) interface{} {
		return append(args[0].([]string), args[2].(string))
	})
	g.Rule("list").Add(Sym("id")).As(func(args []interface{}) interface{} {
		return []string{args[0].(string)}
	})
	g.Start("list")

	_, err := g.Parse("a, \nb, \nc- \nd")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Line != 3 {
		t.Errorf("got line %d, want 3", pe.Line)
	}
	if pe.Received != "-" {
		t.Errorf("got received %q, want \"-\"", pe.Received)
	}
	if pe.Excerpt != "c- \n ^" {
		t.Errorf("got excerpt %q, want the caret under column 1 of \"c- \"", pe.Excerpt)
	}
	// The merged item-set state reached after any complete list is the
	// same state whether the list is about to continue (",") or end
	// (END is always a legal next lookahead there too, for an unwrapped
	// recursive rule used directly as the start symbol) — see DESIGN.md's
	// note on this under the table package's Open Question resolution.
	if len(pe.Expected) != 2 || pe.Expected[0] != "," || pe.Expected[1] != "END" {
		t.Errorf("got expected %v, want [, END]", pe.Expected)
	}
}

// TestTrailingLiteralsRejectedAfterAccept checks that trailing input
// after a complete match is rejected with expected = [END].
func TestTrailingLiteralsRejectedAfterAccept(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("prog")
	g.Rule("prog").Add("a", "b", "c")
	g.Start("prog")

	_, err := g.Parse("abcabc")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Received != "a" {
		t.Errorf("got received %q, want \"a\"", pe.Received)
	}
	if len(pe.Expected) != 1 || pe.Expected[0] != "END" {
		t.Errorf("got expected %v, want [END]", pe.Expected)
	}
}

// TestMissingTrailingSemicolonReportsEndOfInput checks that input ending
// early, before a required trailing literal, reports expected = [";"]
// and received = END.
func TestMissingTrailingSemicolonReportsEndOfInput(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("prog")
	g.Rule("abc").Add("a", "b", "c")
	g.Rule("prog").Add(Sym("abc"), ";")
	g.Start("prog")

	_, err := g.Parse("abc")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Received != "END" {
		t.Errorf("got received %q, want \"END\"", pe.Received)
	}
	if len(pe.Expected) != 1 || pe.Expected[0] != ";" {
		t.Errorf("got expected %v, want [;]", pe.Expected)
	}
}

// TestCompetingSingleTokenReductionsConflict checks that two rules
// reducible on the same single token from the same state raise a
// GrammarError at table-build time rather than silently picking one.
func TestCompetingSingleTokenReductionsConflict(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("prog")
	g.Pattern("id", `[a-z]+`)
	list := Sym("list")
	g.Rule("list").Add(list, Sym("id")).AsValue()
	g.Rule("list").Add(Sym("id")).AsValue()
	g.Rule("prog").Add(list).AsValue()
	g.Rule("prog").Add(Sym("id")).AsValue()
	g.Start("prog")

	_, err := g.Parse("x")
	if err == nil {
		t.Fatal("expected a grammar error")
	}
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected *GrammarError, got %T: %v", err, err)
	}
}

// TestSelfEmbeddingParensUsesEpsilonAction checks a self-embedding rule
// with an epsilon alternative, counting nesting depth on the way back up.
// "((()))" -> 3.
func TestSelfEmbeddingParensUsesEpsilonAction(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("parens")
	parens := Sym("parens")
	g.Rule("parens").Add("(", parens, ")").As(func(args []interface{}) interface{} {
		return args[1].(int) + 1
	})
	g.Rule("parens").Add().As(func(args []interface{}) interface{} {
		return 0
	})
	g.Start("parens")

	v, err := g.Parse("((()))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3 {
		t.Errorf("got %v, want 3 (three levels of nesting)", v)
	}
}

// TestOverlappingTerminalsLongestMatchWins checks that the lexer prefers
// the longest match across two overlapping terminals and a fallback
// identifier pattern, rather than stopping at the shortest.
func TestOverlappingTerminalsLongestMatchWins(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := New("prog")
	g.Terminal("def")
	g.Terminal("define")
	g.Pattern("id", `[a-z_]+`)
	g.Rule("prog").Add(Sym("id")).AsValue()
	g.Start("prog")

	v, err := g.Parse("define_method")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "define_method" {
		t.Errorf("got %v, want the whole identifier", v)
	}
}
