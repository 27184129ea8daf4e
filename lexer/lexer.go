/*
Package lexer implements the longest-match scanner every Grammar uses to
turn a source string into a stream of lexer.Token values.

At each cursor position every terminal RuleSet in the grammar is tried; the
longest match wins, ties are broken by declaration order (first-declared
wins), and a RuleSet whose single rule is marked discarded (Skip) is
advanced over but never delivered to the caller. This mirrors the
"Tokenizer" abstraction gorgo/lr/scanner defines, but the matching algorithm
itself is authored directly from the longest-match/declaration-order
contract a runtime-synthesized grammar needs — gorgo's own tokenizers wrap
either text/scanner or a precompiled lexmachine DFA, neither of which
re-evaluates a changing, not-yet-finalized terminal set per call the way
this one does.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexer

import (
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/arborist-lang/gram/grammar"
)

// tracer traces with key 'gram.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("gram.lexer")
}

// Lexer scans a single input string against a grammar's terminal RuleSets.
// A Lexer is cheap and per-parse: create one with New, call Next until it
// returns a grammar.End token.
type Lexer struct {
	g      *grammar.Grammar
	input  string
	cursor int
	line   int
}

// New creates a Lexer over input for grammar g. The cursor starts at byte
// offset 0, line 1.
func New(g *grammar.Grammar, input string) *Lexer {
	return &Lexer{g: g, input: input, line: 1}
}

// Offset returns the lexer's current byte offset.
func (l *Lexer) Offset() int {
	return l.cursor
}

// Line returns the lexer's current 1-based line number.
func (l *Lexer) Line() int {
	return l.line
}

// Next scans the next token. At end of input it returns a single
// grammar.End token (repeatedly, on subsequent calls). It returns
// *UnconsumedInputError if no terminal matches at the cursor before the end
// of input.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.cursor >= len(l.input) {
			return Token{Symbol: grammar.End, Offset: l.cursor, Line: l.line}, nil
		}
		cand, ok := l.longestMatch()
		if !ok {
			err := &UnconsumedInputError{
				Remainder: l.input[l.cursor:],
				Line:      l.line,
				Offset:    l.cursor,
			}
			tracer().Errorf("%v", err)
			return Token{}, err
		}
		tok := Token{
			Symbol:    cand.rs.Name,
			Text:      cand.text,
			Value:     cand.value,
			Offset:    l.cursor,
			Line:      l.line,
			Rule:      cand.rule,
			Discarded: cand.rule.ActionKind == grammar.ActionDiscard,
		}
		l.advance(cand.text)
		if tok.Discarded {
			tracer().Debugf("discarding %s at offset %d", tok.Symbol, tok.Offset)
			continue
		}
		tracer().Debugf("token %s at offset %d", tok, tok.Offset)
		return tok, nil
	}
}

type candidate struct {
	rs    *grammar.RuleSet
	rule  *grammar.Rule
	text  string
	value interface{}
}

// longestMatch tries every terminal RuleSet, in declaration order, against
// the input at the current cursor and returns the longest match. Equal
// lengths keep the earlier-declared candidate, since later candidates only
// replace the current best on a strictly longer match.
func (l *Lexer) longestMatch() (candidate, bool) {
	rest := l.input[l.cursor:]
	var best candidate
	bestLen := -1
	for _, rs := range l.g.RuleSets() {
		if !rs.IsTerminal() {
			continue
		}
		rule := rs.Rules[0]
		text, value, ok := matchTerminal(rule, rest)
		if !ok || len(text) == 0 {
			continue
		}
		if len(text) > bestLen {
			bestLen = len(text)
			best = candidate{rs: rs, rule: rule, text: text, value: value}
		}
	}
	return best, bestLen >= 0
}

// matchTerminal tries rule's component against rest, anchored at offset 0.
func matchTerminal(rule *grammar.Rule, rest string) (text string, value interface{}, ok bool) {
	comp := rule.Components[0]
	switch comp.Kind {
	case grammar.CompLiteral:
		if strings.HasPrefix(rest, comp.Literal) {
			return comp.Literal, comp.Literal, true
		}
		return "", nil, false
	case grammar.CompRegex:
		loc := rule.Pattern.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return "", nil, false
		}
		text = rest[loc[0]:loc[1]]
		return text, captureOrWhole(rule.Pattern, rest, loc, text), true
	default:
		return "", nil, false
	}
}

// captureOrWhole implements the "named-capture terminal values" supplement:
// when a regex terminal has exactly one capture group, the group's text
// becomes the token value instead of the whole match (e.g. stripping
// quotes from a string literal terminal).
func captureOrWhole(pattern *regexp.Regexp, rest string, loc []int, whole string) interface{} {
	if pattern.NumSubexp() == 1 && len(loc) >= 4 && loc[2] >= 0 {
		return rest[loc[2]:loc[3]]
	}
	return whole
}

// advance moves the cursor past matched text and updates the line counter,
// counting '\n' occurrences (which also covers "\r\n" spans, since each
// contains exactly one '\n').
func (l *Lexer) advance(text string) {
	l.cursor += len(text)
	l.line += strings.Count(text, "\n")
}
