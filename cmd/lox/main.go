package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"lox/internal"
)

// Exit codes, spec.md §6: 0 success, 64 usage error, 65 a compile-time
// (scan/parse/resolve) error, 70 a runtime error.
const (
	exitOK      = 0
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

func main() {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	trace := fs.String("trace", "", "trace level (debug|info|warn|error); default silent")
	astDump := fs.Bool("ast", false, "print the parsed statement tree instead of running it")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lox [-h|--help] [-trace LEVEL] [-ast] [filename]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(exitOK)
		}
		os.Exit(exitUsage)
	}

	if *trace != "" {
		if err := internal.SetTraceLevel(*trace); err != nil {
			log.Fatal(err)
		}
	}

	args := fs.Args()
	switch len(args) {
	case 0:
		runPrompt()
	case 1:
		runFile(args[0], *astDump)
	default:
		fs.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(path string, astDump bool) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	reporter := internal.NewReporter()

	internal.TraceStage("scan", path)
	scanner := internal.NewScanner(string(b), reporter)
	tokens := scanner.ScanTokens()

	internal.TraceStage("parse", path)
	parser := internal.NewParser(tokens, reporter)
	stmts := parser.Parse()

	if reporter.HadError() {
		os.Exit(exitCompile)
	}

	if astDump {
		printAST(stmts)
		os.Exit(exitOK)
	}

	internal.TraceStage("resolve", path)
	resolver := internal.NewResolver(reporter)
	hops := resolver.Resolve(stmts)

	if reporter.HadError() {
		os.Exit(exitCompile)
	}

	internal.TraceStage("interpret", path)
	interp := internal.NewInterpreter(hops, reporter)
	interp.Interpret(stmts)

	if reporter.HadRuntimeError() {
		os.Exit(exitRuntime)
	}
	os.Exit(exitOK)
}
