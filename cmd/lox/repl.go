package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"lox/internal"
)

// runPrompt starts the interactive REPL, grounded on trepl's readline
// setup (npillmayer-gorgo/terex/terexlang/trepl/repl.go) but adapted to
// this interpreter's single-expression-echo contract (spec.md §6): a
// line with no ';' is first tried as one bare expression whose value is
// printed, falling back to full statement parsing otherwise.
func runPrompt() {
	rl, err := readline.New("> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer rl.Close()

	pterm.Info.Println("lox REPL — empty line or Ctrl-D to exit")

	reporter := internal.NewReporter()
	interp := internal.NewInterpreter(nil, reporter)

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		evalLine(line, reporter, interp)
	}
}

func evalLine(line string, reporter *internal.StderrReporter, interp *internal.Interpreter) {
	reporter.Reset()

	if !strings.Contains(line, ";") {
		scanner := internal.NewScanner(line, reporter)
		tokens := scanner.ScanTokens()
		if !reporter.HadError() {
			parser := internal.NewParser(tokens, reporter)
			if expr, ok := parser.ParseSingleExpression(); ok {
				resolver := internal.NewResolver(reporter)
				hops := resolver.Resolve([]internal.Stmt{&internal.ExpressionStmt{Expression: expr}})
				if !reporter.HadError() {
					interp.SetHops(hops)
					if result, ok := interp.InterpretExpression(expr); ok {
						fmt.Println(result)
					}
					return
				}
			}
			reporter.Reset()
		}
	}

	scanner := internal.NewScanner(line, reporter)
	tokens := scanner.ScanTokens()
	parser := internal.NewParser(tokens, reporter)
	stmts := parser.Parse()
	if reporter.HadError() {
		return
	}

	resolver := internal.NewResolver(reporter)
	hops := resolver.Resolve(stmts)
	if reporter.HadError() {
		return
	}

	interp.SetHops(hops)
	interp.Interpret(stmts)
}
