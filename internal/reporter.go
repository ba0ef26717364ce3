package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
)

// Reporter is the diagnostic sink the core reports compile-time and
// runtime errors to. It also tracks whether any error has occurred, the
// way the CLI decides its exit code and whether to skip interpretation
// entirely (spec.md §7: a compile error skips interpretation of that
// program).
type Reporter interface {
	Error(line int, message string)
	TokenError(tok Token, message string)
	RuntimeError(err *RuntimeError)

	HadError() bool
	HadRuntimeError() bool
}

// StderrReporter writes diagnostics to an io.Writer (stderr by default) in
// the format spec.md §6 fixes: compile-time diagnostics are
// "[line L] Error<where>: <msg>", runtime diagnostics are "<msg>\n[line L]".
type StderrReporter struct {
	Out io.Writer

	// Color disables colorizing the "Error" label when false. Default
	// true; the CLI turns it off for non-terminal output.
	Color bool

	hadError        bool
	hadRuntimeError bool
}

// NewReporter builds a StderrReporter writing to os.Stderr.
func NewReporter() *StderrReporter {
	return &StderrReporter{Out: os.Stderr, Color: true}
}

func (r *StderrReporter) Error(line int, message string) {
	r.report(line, "", message)
}

func (r *StderrReporter) TokenError(tok Token, message string) {
	if tok.Type == EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
}

func (r *StderrReporter) RuntimeError(err *RuntimeError) {
	r.hadRuntimeError = true
	fmt.Fprintln(r.Out, err.Error())
}

func (r *StderrReporter) report(line int, where, message string) {
	r.hadError = true
	label := "Error"
	if r.Color {
		label = color.Red(label)
	}
	fmt.Fprintf(r.Out, "[line %d] %s%s: %s\n", line, label, where, message)
}

func (r *StderrReporter) HadError() bool        { return r.hadError }
func (r *StderrReporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both error flags, used by the REPL to give every line a
// fresh diagnostics sink while the interpreter itself persists.
func (r *StderrReporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}
