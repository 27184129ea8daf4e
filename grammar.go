package gram

import (
	"sync"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/arborist-lang/gram/grammar"
	"github.com/arborist-lang/gram/parser"
	"github.com/arborist-lang/gram/table"
)

func tracer() tracing.Trace {
	return tracing.Select("gram")
}

// Re-exported so callers never need to import the subpackages directly for
// everyday grammar construction.
type (
	// Symbol identifies a terminal or nonterminal. See grammar.Symbol.
	Symbol = grammar.Symbol
	// RuleBuilder accumulates alternatives for one nonterminal. See
	// grammar.RuleBuilder.
	RuleBuilder = grammar.RuleBuilder
	// AltBuilder installs a reduction action, precedence, or
	// associativity on one alternative. See grammar.AltBuilder.
	AltBuilder = grammar.AltBuilder
	// ReduceFunc synthesizes one result value from a rule's component
	// values, left to right. See grammar.ReduceFunc.
	ReduceFunc = grammar.ReduceFunc
	// Associativity resolves shift/reduce ties. See grammar.Associativity.
	Associativity = grammar.Associativity
)

// Associativity values, re-exported from package grammar.
const (
	Right    = grammar.Right
	Left     = grammar.Left
	NonAssoc = grammar.NonAssoc
)

// Sym returns the Symbol for name, for use as a component in Add(...).
func Sym(name string) Symbol {
	return grammar.NewSymbol(name)
}

// Grammar is the facade that is the library's programmatic
// surface: the DSL for declaring rules plus a lazily-built, memoized parse
// table. A Grammar is safe to Parse from multiple goroutines concurrently
// once construction (Rule/Terminal/Pattern/Start calls) has finished; the
// first Parse call races to build the table under g.mu, the
// §5's "lazy-init under a mutex" option describes.
type Grammar struct {
	g *grammar.Grammar

	mu     sync.Mutex
	tbl    *table.Table
	tblErr error

	onErr parser.ErrorHook
}

// New creates an empty, named Grammar.
func New(name string) *Grammar {
	return &Grammar{g: grammar.New(name)}
}

// Rule declares or extends a nonterminal RuleSet. See grammar.Grammar.Rule.
func (gr *Grammar) Rule(name string) *RuleBuilder {
	return gr.g.Rule(name)
}

// Terminal declares a literal-string terminal. See grammar.Grammar.Terminal.
func (gr *Grammar) Terminal(literal string) *AltBuilder {
	return gr.g.Terminal(literal)
}

// Pattern declares a regex-backed terminal. See grammar.Grammar.Pattern.
func (gr *Grammar) Pattern(name, pattern string) *AltBuilder {
	return gr.g.Pattern(name, pattern)
}

// Start declares the grammar's start symbol.
func (gr *Grammar) Start(name string) {
	gr.g.SetStart(name)
}

// OnError installs hook as an onError(state,
// token, context): when the driver would otherwise raise a *ParseError,
// hook is given the error first and may return substitute text to re-lex
// and retry with in its place. Passing nil (the default) means every
// lookup failure surfaces as a *ParseError.
func (gr *Grammar) OnError(hook func(err *ParseError) (substitute string, retry bool)) {
	gr.onErr = parser.ErrorHook(hook)
}

// Dump renders every RuleSet and its alternatives, one per line. Useful
// for diagnosing a GrammarError or inspecting what Rule/Terminal/Pattern
// calls actually built.
func (gr *Grammar) Dump() string {
	return gr.g.Dump()
}

// table lazily builds and memoizes gr's parse table, per the
// "lazily constructed on first parse, cached on the grammar object"
// lifecycle. A grammar-construction error (from Rule/Terminal/Pattern, or
// raised while compiling the table itself — an undefined symbol, a
// reduce/reduce conflict) is cached too, so every subsequent Parse call
// returns the same *GrammarError without re-walking the grammar.
func (gr *Grammar) table() (*table.Table, error) {
	gr.mu.Lock()
	defer gr.mu.Unlock()
	if gr.tbl != nil || gr.tblErr != nil {
		return gr.tbl, gr.tblErr
	}
	tbl, err := table.NewBuilder(gr.g).Build()
	if err != nil {
		gr.tblErr = err
		tracer().Errorf("grammar %q: table build failed: %v", gr.g.Name, err)
		return nil, err
	}
	if gconf.GetBool("gram.dump-table") {
		tracer().Debugf("grammar %q table:\n%s", gr.g.Name, tbl.Dump())
	}
	gr.tbl = tbl
	return tbl, nil
}

// Parse builds gr's table (if this is the first call) and parses input
// against it, returning the value the start rule's reduction chain
// produced, or a *GrammarError, *ParseError, *NonAssocError, or
// *UnconsumedInputError.
func (gr *Grammar) Parse(input string) (interface{}, error) {
	tbl, err := gr.table()
	if err != nil {
		return nil, err
	}
	p := parser.New(gr.g, tbl)
	if gr.onErr != nil {
		p.SetErrorHook(gr.onErr)
	}
	return p.Parse(input)
}

// MustParse calls Parse and panics on error. A convenience for callers
// (tests, REPLs, example programs) that already know the input is well
// formed and would rather crash loudly than thread an error return
// through code that cannot usefully recover from a malformed grammar.
func (gr *Grammar) MustParse(input string) interface{} {
	v, err := gr.Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseFrom parses input against gr's grammar starting from startOverride
// instead of the declared start symbol — a development aid this facade
// calls "parse(input, startOverride = name)", useful for exercising one
// production of a larger grammar in isolation. Unlike Parse, the table
// built here is never memoized: it is specific to startOverride and would
// otherwise poison the cache Parse relies on for the grammar's real start
// symbol.
func (gr *Grammar) ParseFrom(input, startOverride string) (interface{}, error) {
	gr.mu.Lock()
	orig, hadStart := gr.g.Start()
	gr.g.SetStart(startOverride)
	tbl, err := table.NewBuilder(gr.g).Build()
	if hadStart {
		gr.g.SetStart(orig.Name())
	}
	gr.mu.Unlock()
	if err != nil {
		return nil, err
	}
	p := parser.New(gr.g, tbl)
	if gr.onErr != nil {
		p.SetErrorHook(gr.onErr)
	}
	return p.Parse(input)
}

// Precedence returns the declared precedence of the terminal named
// literal, or 0 if literal names no terminal RuleSet.
func (gr *Grammar) Precedence(literal string) int {
	rs, ok := gr.g.RuleSetByName(literal)
	if !ok {
		return 0
	}
	return rs.Precedence()
}

// Associativity returns the declared associativity of the terminal named
// literal, or the default (Right) if literal names no terminal RuleSet.
func (gr *Grammar) Associativity(literal string) Associativity {
	rs, ok := gr.g.RuleSetByName(literal)
	if !ok {
		return Right
	}
	return rs.Associativity()
}
