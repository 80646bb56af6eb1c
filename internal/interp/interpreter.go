// Package interp implements the tree-walking evaluator for Lox.
//
// The interpreter executes the AST produced by the parser, using the
// resolution side-table produced by the semantic pass to bind local
// variable references to exact environment depths. Global references are
// looked up late, by name, so redefinition of a global after a closure is
// created is visible to the closure.
//
// The interpreter is single-threaded and synchronous. Runtime errors abort
// the current Interpret call; the REPL creates one Interpret call per line,
// so its loop survives them.
package interp

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp/runtime"
)

// Interpreter evaluates expressions and executes statements.
type Interpreter struct {
	// globals is the outermost environment, pre-populated with builtins.
	globals *runtime.Environment
	// environment is the current innermost environment. It starts equal
	// to globals and is swapped for the duration of each block or call.
	environment *runtime.Environment
	// locals is the resolver's side-table: expression identity to scope
	// depth. Expressions absent from it resolve against globals.
	locals   map[ast.Expr]int
	stdout   io.Writer
	reporter *errors.Reporter
	trace    hclog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTrace enables execution tracing on the given logger. Statements and
// calls are logged at Debug level.
func WithTrace(logger hclog.Logger) Option {
	return func(i *Interpreter) {
		i.trace = logger
	}
}

// New creates an interpreter writing print output to stdout and reporting
// runtime errors to reporter. The global environment is created with the
// builtins defined.
func New(stdout io.Writer, reporter *errors.Reporter, opts ...Option) *Interpreter {
	globals := runtime.NewEnvironment()
	defineBuiltins(globals)

	i := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		stdout:      stdout,
		reporter:    reporter,
		trace:       hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Globals returns the global environment.
func (i *Interpreter) Globals() *runtime.Environment {
	return i.globals
}

// AddLocals merges a resolution side-table into the interpreter. The REPL
// resolves each line separately and accumulates the results here; node
// identities never collide because every line parses fresh nodes.
func (i *Interpreter) AddLocals(locals map[ast.Expr]int) {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}
}

// Interpret executes a list of top-level statements. The first runtime
// error is reported to the diagnostics reporter and aborts the remaining
// statements.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rt, ok := err.(*runtime.Error); ok {
				i.reporter.RuntimeError(rt.Token.Line, rt.Message)
				return
			}
			// A return signal can only get here through an interpreter
			// bug; the resolver rejects top-level returns.
			i.reporter.RuntimeError(0, err.Error())
			return
		}
	}
}

// execute runs a single statement for effect.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	if i.trace.IsDebug() {
		i.trace.Debug("execute", "stmt", fmt.Sprintf("%T", stmt))
	}

	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.PrintStatement:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, value.String())
		return nil

	case *ast.VarStatement:
		value := runtime.Value(runtime.Nil)
		if s.Initializer != nil {
			var err error
			value, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStatement:
		return i.ExecuteBlock(s.Statements, runtime.NewEnclosedEnvironment(i.environment))

	case *ast.IfStatement:
		condition, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if runtime.IsTruthy(condition) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStatement:
		for {
			condition, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.IsTruthy(condition) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStatement:
		// The function captures the environment current at declaration
		// time, not at call time.
		fn := runtime.NewFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStatement:
		value := runtime.Value(runtime.Nil)
		if s.Value != nil {
			var err error
			value, err = i.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return &runtime.ReturnSignal{Value: value}

	case *ast.ClassStatement:
		// Two-step binding lets method closures see the class name.
		i.environment.Define(s.Name.Lexeme, runtime.Nil)

		methods := make(map[string]*runtime.FunctionValue, len(s.Methods))
		for _, method := range s.Methods {
			isInitializer := method.Name.Lexeme == "init"
			methods[method.Name.Lexeme] = runtime.NewFunction(method, i.environment, isInitializer)
		}

		class := runtime.NewClass(s.Name.Lexeme, methods)
		i.environment.Define(s.Name.Lexeme, class)
		return nil

	default:
		return fmt.Errorf("unhandled statement type %T", stmt)
	}
}

// ExecuteBlock executes statements with env as the current environment and
// restores the previous environment on every exit path: normal completion,
// runtime error, and return unwind.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *runtime.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() {
		i.environment = previous
	}()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
