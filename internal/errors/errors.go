// Package errors provides diagnostic collection and formatting for the Lox
// interpreter. Every pipeline stage (lexer, parser, resolver, interpreter)
// reports into a shared Reporter; the driver inspects it between stages to
// decide whether execution may proceed.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Diagnostic represents a single reported error with its source position.
// Where is the optional location qualifier: "" for scanner and runtime
// errors, " at end" for errors at EOF, " at 'lexeme'" otherwise.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

// String formats the diagnostic as "[line N] Error<where>: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Reporter accumulates diagnostics across pipeline stages. It tracks static
// (scan/parse/resolve) and runtime errors separately because they map to
// different process exit codes.
type Reporter struct {
	diags           []Diagnostic
	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates an empty diagnostics reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Error reports a static error with no location qualifier.
func (r *Reporter) Error(line int, message string) {
	r.ErrorAt(line, "", message)
}

// ErrorAt reports a static error with an explicit location qualifier.
func (r *Reporter) ErrorAt(line int, where, message string) {
	r.hadError = true
	r.diags = append(r.diags, Diagnostic{Line: line, Where: where, Message: message})
}

// RuntimeError reports a runtime error. Runtime errors carry no location
// qualifier and set the runtime flag instead of the static one.
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	r.diags = append(r.diags, Diagnostic{Line: line, Message: message})
}

// HadError reports whether any static error was recorded.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// HadRuntimeError reports whether any runtime error was recorded.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Diagnostics returns the recorded diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// Reset clears all diagnostics and flags. The REPL resets its reporter
// before each line so one bad line does not poison the next.
func (r *Reporter) Reset() {
	r.diags = nil
	r.hadError = false
	r.hadRuntimeError = false
}

// errorColor renders diagnostics in bold red. The color package disables
// itself automatically when output is not a terminal.
var errorColor = color.New(color.FgRed, color.Bold)

// Format renders the diagnostics one per line, colorized when useColor is
// set and the color package has not disabled color output globally.
func Format(diags []Diagnostic, useColor bool) string {
	var sb strings.Builder
	for _, d := range diags {
		if useColor {
			sb.WriteString(errorColor.Sprint(d.String()))
		} else {
			sb.WriteString(d.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Fprint writes the reporter's diagnostics to w.
func (r *Reporter) Fprint(w io.Writer, useColor bool) {
	fmt.Fprint(w, Format(r.diags, useColor))
}
