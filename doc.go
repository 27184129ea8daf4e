/*
Package gram lets an application define a context-free grammar
programmatically and parse input strings against it, using bottom-up
shift/reduce parsing with a runtime-synthesized parse table. There is no
offline code generator: the table is built the first time a Grammar is
parsed and memoized on the Grammar thereafter.

A grammar is assembled with a small fluent DSL:

	g := gram.New("arith")
	g.Pattern("num", `[0-9]+`).As(func(args []interface{}) interface{} {
		n, _ := strconv.Atoi(args[0].(string))
		return n
	})
	g.Terminal("+").Prec(1).Assoc(gram.Left)
	g.Terminal("*").Prec(2).Assoc(gram.Left)
	expr := gram.Sym("expr")
	g.Rule("expr").Add(expr, gram.Sym("+"), expr).As(sum)
	g.Rule("expr").Add(expr, gram.Sym("*"), expr).As(product)
	g.Rule("expr").Add(gram.Sym("num")).AsValue()
	g.Start("expr")

	result, err := g.Parse("2+3*4") // 14

The package structure:

  - grammar: the in-memory rule/symbol model and the builder DSL.
  - lexer: the longest-match scanner every Grammar uses to tokenize input.
  - table: compiles a grammar into a shift/reduce/goto table, resolving
    conflicts by precedence and associativity.
  - parser: the shift/reduce driver loop and structured parse errors.

Package gram itself only wires these together behind one memoized,
concurrency-safe facade, and re-exports the error types a caller needs to
distinguish (GrammarError, ParseError, UnconsumedInputError, NonAssocError).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package gram
