// Package golox provides the embedding API for the Lox interpreter.
//
// An Engine owns the full pipeline — scanner, parser, resolver,
// interpreter — behind a single Run call. Interpreter state persists across
// Run calls on the same engine, so a REPL can feed it one line at a time
// and definitions accumulate in the globals.
package golox

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/semantic"
)

// Engine runs Lox source through the interpreter pipeline.
type Engine struct {
	reporter *errors.Reporter
	interp   *interp.Interpreter
	stdout   io.Writer
	stderr   io.Writer
	trace    hclog.Logger
	useColor bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStdout redirects the print statement's output.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithStderr redirects diagnostic output.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = w }
}

// WithTrace enables execution tracing on the given logger.
func WithTrace(logger hclog.Logger) Option {
	return func(e *Engine) { e.trace = logger }
}

// WithColor enables colorized diagnostics on stderr.
func WithColor(enabled bool) Option {
	return func(e *Engine) { e.useColor = enabled }
}

// New creates an engine with a fresh global environment.
func New(opts ...Option) *Engine {
	e := &Engine{
		reporter: errors.NewReporter(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		trace:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.interp = interp.New(e.stdout, e.reporter, interp.WithTrace(e.trace))
	return e
}

// RunResult reports what went wrong during a Run, if anything. The zero
// value means success.
type RunResult struct {
	// HadStaticError is set when the scanner, parser, or resolver reported
	// an error. Execution is suppressed entirely in that case.
	HadStaticError bool
	// HadRuntimeError is set when evaluation failed. Statements before the
	// failing one have already executed.
	HadRuntimeError bool
}

// ExitCode maps the result onto the interpreter's process exit codes:
// 65 for static errors, 70 for runtime errors, 0 for success.
func (r RunResult) ExitCode() int {
	switch {
	case r.HadStaticError:
		return 65
	case r.HadRuntimeError:
		return 70
	default:
		return 0
	}
}

// Run scans, parses, resolves, and executes one chunk of Lox source.
// Diagnostics are written to the engine's stderr. Any static error
// suppresses execution of the whole chunk; interpreter state from earlier
// Run calls is untouched either way.
func (e *Engine) Run(source string) RunResult {
	e.reporter.Reset()

	tokens := lexer.New(source, e.reporter).ScanTokens()
	statements := parser.New(tokens, e.reporter).Parse()
	if e.reporter.HadError() {
		e.reporter.Fprint(e.stderr, e.useColor)
		return RunResult{HadStaticError: true}
	}

	locals := semantic.NewResolver(e.reporter).Resolve(statements)
	if e.reporter.HadError() {
		e.reporter.Fprint(e.stderr, e.useColor)
		return RunResult{HadStaticError: true}
	}

	e.interp.AddLocals(locals)
	e.interp.Interpret(statements)
	if e.reporter.HadRuntimeError() {
		e.reporter.Fprint(e.stderr, e.useColor)
		return RunResult{HadRuntimeError: true}
	}

	return RunResult{}
}

// RunFile reads path as UTF-8 Lox source and runs it once. The error is
// non-nil only when the file cannot be read.
func (e *Engine) RunFile(path string) (RunResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return RunResult{}, err
	}
	return e.Run(string(content)), nil
}
