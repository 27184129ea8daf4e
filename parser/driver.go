/*
Package parser implements the shift/reduce driver that runs a
grammar's parse table over lexed input
§4.4: given a compiled table.Table and an input string, it runs the
classic state-stack/value-stack loop — gorgo/lr/slr's Parser.Parse in
spirit, generalized from SLR(1)'s goto/action table pair to this module's
single merged table.Table, and swapping gorgo's scanner.Tokenizer
interface for this module's own lexer.Lexer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/arborist-lang/gram/grammar"
	"github.com/arborist-lang/gram/lexer"
	"github.com/arborist-lang/gram/table"
)

func tracer() tracing.Trace {
	return tracing.Select("gram.parser")
}

// ErrorHook lets a host substitute a token for the one that triggered a
// ParseError and resume parsing: the
// hook receives the error that would otherwise be returned and, if it
// wants to retry, returns the literal text to treat as the next token
// (re-lexed against the grammar at the error's position) and true. A
// hook returning false lets the error propagate to the caller unchanged.
type ErrorHook func(err *ParseError) (substitute string, retry bool)

// Parser drives a single parse of one input string against a compiled
// table.Table. A Parser holds no per-parse state itself, so one instance
// may run Parse repeatedly (concurrently or not) against different input.
type Parser struct {
	g     *grammar.Grammar
	t     *table.Table
	onErr ErrorHook
}

// New returns a Parser that scans input with g's terminals and drives it
// through t.
func New(g *grammar.Grammar, t *table.Table) *Parser {
	return &Parser{g: g, t: t}
}

// SetErrorHook installs hook as p's ErrorHook. A nil hook (the default)
// means every lookup failure surfaces as a *ParseError.
func (p *Parser) SetErrorHook(hook ErrorHook) {
	p.onErr = hook
}

// Parse runs the shift/reduce loop over input to completion, returning the
// value the grammar's start rule's reduction chain produced. It returns
// *ParseError (also for a missing GOTO after a reduce, which is logged at
// Error level first), *NonAssocError, or *lexer.UnconsumedInputError.
func (p *Parser) Parse(input string) (interface{}, error) {
	lx := lexer.New(p.g, input)
	stateStack := []table.StateID{p.t.Start}
	var valueStack []interface{}

	tok, err := lx.Next()
	if err != nil {
		return nil, err
	}
	for {
		top := stateStack[len(stateStack)-1]
		act, ok := p.t.Lookup(top, tok.Symbol)
		if !ok {
			pe := p.errorAt(top, tok, input)
			replacement, retried := p.retry(pe, input)
			if !retried {
				return nil, pe
			}
			tok = replacement
			continue
		}
		if act.NonAssocError {
			return nil, &NonAssocError{Line: tok.Line, Symbol: tok.Symbol.Name()}
		}
		tracer().Debugf("state %v, lookahead %s: %s", top, tok.Symbol, act.Kind)

		switch act.Kind {
		case table.Shift:
			stateStack = append(stateStack, act.Next)
			valueStack = append(valueStack, tok.Rule.Apply([]interface{}{tok.Value}))
			tok, err = lx.Next()
			if err != nil {
				return nil, err
			}
		default: // Reduce or Accept
			n := len(act.Rule.Components)
			args := append([]interface{}{}, valueStack[len(valueStack)-n:]...)
			valueStack = valueStack[:len(valueStack)-n]
			stateStack = stateStack[:len(stateStack)-n]
			result := act.Rule.Apply(args)
			valueStack = append(valueStack, result)

			if act.Kind == table.Accept && len(stateStack) == 1 {
				return result, nil
			}
			uncovered := stateStack[len(stateStack)-1]
			gotoAct, ok := p.t.Goto(uncovered, act.Rule.Name)
			if !ok {
				tracer().Errorf("gram: parser: no GOTO for %s after reducing %s", act.Rule.Name, act.Rule)
				return nil, p.errorAt(uncovered, tok, input)
			}
			stateStack = append(stateStack, gotoAct.Next)
		}
	}
}

// retry consults p's ErrorHook, if any, for pe. On a hook that wants to
// retry, the substitute text is lexed on its own (a fresh, throwaway
// Lexer over just that text) and its first token is returned in place of
// the one that failed; a substitute that itself fails to lex, or a nil
// hook, or a hook declining, all mean "don't retry".
func (p *Parser) retry(pe *ParseError, input string) (lexer.Token, bool) {
	if p.onErr == nil {
		return lexer.Token{}, false
	}
	substitute, ok := p.onErr(pe)
	if !ok {
		return lexer.Token{}, false
	}
	tok, err := lexer.New(p.g, substitute).Next()
	if err != nil {
		return lexer.Token{}, false
	}
	tok.Offset, tok.Line = pe.Offset, pe.Line
	return tok, true
}

// errorAt builds the *ParseError for a failed lookup at (state, tok).
// Received is the bare symbol name tok matched, not tok.String()'s
// "name \"text\"" rendering — "END" for end-of-input, matching
// Table.Expected's rendering of the same sentinel, and otherwise exactly
// the symbol name a caller would pass to Expected's entries.
func (p *Parser) errorAt(state table.StateID, tok lexer.Token, input string) *ParseError {
	received := tok.Symbol.Name()
	if tok.Symbol.IsEnd() {
		received = "END"
	}
	return &ParseError{
		Line:     tok.Line,
		Offset:   tok.Offset,
		Received: received,
		Expected: p.t.Expected(state),
		Excerpt:  excerpt(input, tok.Offset),
	}
}
