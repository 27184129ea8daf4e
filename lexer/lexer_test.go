package lexer

import (
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

func TestLongestMatchWinsOverShorterPrefix(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Terminal("def")
	g.Pattern("id", `[a-z_]+`)
	g.SetStart("id")
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	lx := New(g, "define_method")
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Text != "define_method" {
		t.Errorf("expected longest match 'define_method', got %q (symbol %s)", tok.Text, tok.Symbol)
	}
}

func TestDeclarationOrderTieBreak(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Terminal("a")
	g.Pattern("anyA", `a`)
	g.SetStart("a")

	lx := New(g, "a")
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Symbol.Name() != "a" {
		t.Errorf("expected earlier-declared terminal 'a' to win the tie, got %s", tok.Symbol)
	}
}

func TestDiscardedTokenAdvancesButIsNotDelivered(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Pattern("ws", `\s+`).Skip()
	g.Terminal("x")
	g.SetStart("x")

	lx := New(g, "  x")
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Symbol.Name() != "x" {
		t.Errorf("expected whitespace to be skipped, got %s", tok.Symbol)
	}
	if tok.Offset != 2 {
		t.Errorf("expected cursor to have advanced past whitespace to offset 2, got %d", tok.Offset)
	}
}

func TestLineCounting(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Pattern("ws", `\s+`).Skip()
	g.Terminal("x")
	g.SetStart("x")

	lx := New(g, "\n\nx")
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Line != 3 {
		t.Errorf("expected line 3 after two newlines, got %d", tok.Line)
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Terminal("a")
	g.SetStart("a")

	lx := New(g, "ab")
	if _, err := lx.Next(); err != nil {
		t.Fatalf("unexpected error matching 'a': %v", err)
	}
	_, err := lx.Next()
	var uce *UnconsumedInputError
	if err == nil {
		t.Fatal("expected UnconsumedInputError, got nil")
	}
	if e, ok := err.(*UnconsumedInputError); !ok {
		t.Fatalf("expected *UnconsumedInputError, got %T", err)
	} else {
		uce = e
	}
	if uce.Remainder != "b" {
		t.Errorf("expected remainder 'b', got %q", uce.Remainder)
	}
}

func TestCapturedGroupBecomesTokenValue(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Pattern("str", `"([^"]*)"`)
	g.SetStart("str")

	lx := New(g, `"hello"`)
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Value != "hello" {
		t.Errorf("expected captured group 'hello' as token value, got %v", tok.Value)
	}
}

func TestEndOfInputSentinel(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	g := grammar.New("G")
	g.Terminal("a")
	g.SetStart("a")

	lx := New(g, "a")
	if _, err := lx.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error at end of input: %v", err)
	}
	if !tok.Symbol.IsEnd() {
		t.Errorf("expected END sentinel at end of input, got %s", tok.Symbol)
	}
}
