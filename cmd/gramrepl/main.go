/*
Command gramrepl is a small interactive shell over a handful of built-in
example grammars: type an input line, see it parsed (or the formatted
parse error) against the grammar currently selected with -grammar.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/arborist-lang/gram"
	"github.com/arborist-lang/gram/examples"
)

func tracer() tracing.Trace {
	return tracing.Select("gram.repl")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	name := flag.String("grammar", "arith", fmt.Sprintf("example grammar to load (%s)", strings.Join(examples.Names(), ", ")))
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	dumpTable := flag.Bool("dump-table", false, "print the grammar's rules (Grammar.Dump) before the first parse")
	flag.Parse()

	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	g, doc, err := examples.Load(*name)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to gramrepl")
	pterm.Info.Println(fmt.Sprintf("Grammar %q: %s", *name, doc))

	if *dumpTable {
		pterm.Info.Println(g.Dump())
	}

	repl, err := readline.New("gram> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()

	if args := flag.Args(); len(args) > 0 {
		evalLine(g, strings.Join(args, " "))
	}

	tracer().Infof("quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		evalLine(g, line)
	}
	pterm.Info.Println("bye")
}

// evalLine parses line against g and prints either the reduced value or
// the formatted error.
func evalLine(g *gram.Grammar, line string) {
	v, err := g.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("%v", v))
}

// initDisplay sets up pterm's colored info/error prefixes.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
