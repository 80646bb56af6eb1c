package runtime

import (
	"github.com/cwbudde/golox/internal/ast"
)

// Evaluator is the slice of the interpreter that callables need to execute
// their bodies. Defining it here, rather than depending on the interp
// package, keeps the value types free of an import cycle.
type Evaluator interface {
	// ExecuteBlock executes statements in the given environment and
	// restores the previous environment on every exit path.
	ExecuteBlock(statements []ast.Stmt, env *Environment) error
}

// Callable is implemented by every value that can appear as the callee of
// a call expression: user functions, bound methods, classes, and builtins.
type Callable interface {
	Value

	// Arity returns the number of arguments the callable expects. The
	// interpreter checks arity before Call; Call may assume len(arguments)
	// matches.
	Arity() int

	// Call invokes the callable with already-evaluated arguments.
	Call(ev Evaluator, arguments []Value) (Value, error)
}
