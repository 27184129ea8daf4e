package lexer

import "github.com/arborist-lang/gram/grammar"

// Token is one scanned unit of input: a matched Symbol, the text it
// matched, the value to feed into the owning rule's reduction action, its
// byte offset and 1-based line number at match start, and whether the
// lexer discards it (never delivered to the driver, but still advanced
// over and counted for line numbers).
type Token struct {
	Symbol    grammar.Symbol
	Text      string
	Value     interface{}
	Offset    int
	Line      int
	Rule      *grammar.Rule
	Discarded bool
}

func (t Token) String() string {
	if t.Symbol.IsEnd() {
		return "END"
	}
	return t.Symbol.Name() + " " + quote(t.Text)
}

func quote(s string) string {
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	return "\"" + s + "\""
}
