// Package semantic implements the static resolution pass for Lox.
//
// The resolver runs between parsing and interpretation. It walks the AST
// once, tracking the block scopes a variable reference is nested in, and
// records for each local variable or assignment expression how many scopes
// separate the use from the declaration. The interpreter consults that
// side-table to jump directly to the owning environment, so resolver and
// interpreter must agree exactly on scoping; the resolver is the single
// source of truth for what a name means.
//
// The pass also diagnoses purely static errors: reading a local in its own
// initializer, redeclaring a local, and returning outside a function.
package semantic

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

// FunctionType classifies the function body the resolver is currently
// inside, for return-statement validation.
type FunctionType int

const (
	// FunctionNone means top-level code.
	FunctionNone FunctionType = iota
	// FunctionFunction means an ordinary function body.
	FunctionFunction
	// FunctionMethod means a class method body.
	FunctionMethod
	// FunctionInitializer means a class "init" method body.
	FunctionInitializer
)

// Resolver performs the static resolution pass.
type Resolver struct {
	reporter *errors.Reporter
	// scopes is the stack of block scopes. Each scope maps a declared name
	// to whether its initializer has finished resolving. The global scope
	// is untracked; an empty stack means global.
	scopes []map[string]bool
	// locals is the resolution side-table keyed by expression identity.
	locals          map[ast.Expr]int
	currentFunction FunctionType
}

// NewResolver creates a resolver reporting diagnostics to reporter.
func NewResolver(reporter *errors.Reporter) *Resolver {
	return &Resolver{
		reporter:        reporter,
		locals:          make(map[ast.Expr]int),
		currentFunction: FunctionNone,
	}
}

// Resolve resolves a list of statements and returns the side-table mapping
// each local variable or assignment expression to its scope depth.
// Expressions absent from the table resolve to the global environment at
// runtime. Resolution never aborts; all errors are reported and the caller
// must refuse to interpret when any were.
func (r *Resolver) Resolve(statements []ast.Stmt) map[ast.Expr]int {
	r.resolveStatements(statements)
	return r.locals
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStatement:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStatement:
		// The name is defined before the body resolves so the function can
		// refer to itself recursively.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, FunctionFunction)

	case *ast.ClassStatement:
		r.declare(s.Name)
		r.define(s.Name)
		for _, method := range s.Methods {
			kind := FunctionMethod
			if method.Name.Lexeme == "init" {
				kind = FunctionInitializer
			}
			r.resolveFunction(method, kind)
		}

	case *ast.ExpressionStatement:
		r.resolveExpr(s.Expression)

	case *ast.IfStatement:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStatement:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStatement:
		if r.currentFunction == FunctionNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == FunctionInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStatement:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.innermostScope()[e.Name.Lexeme]; declared && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.LiteralExpr:
		// Nothing to resolve.
	}
}

// resolveFunction resolves a function body in a fresh scope containing the
// parameters. The enclosing function kind is saved and restored so nested
// declarations validate their own returns.
func (r *Resolver) resolveFunction(fn *ast.FunctionStatement, kind FunctionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveLocal walks the scope stack from innermost outward and records the
// hop count for the first scope containing the name. Names found in no
// tracked scope are left unrecorded and resolve globally at runtime.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// declare marks a name as existing in the innermost scope but not yet
// usable; reads before define() completes are self-initializer errors.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.innermostScope()
	if _, ok := scope[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks a declared name as fully initialized and usable.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.innermostScope()[name.Lexeme] = true
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) innermostScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *Resolver) errorAt(token lexer.Token, message string) {
	where := " at '" + token.Lexeme + "'"
	if token.Type == lexer.EOF {
		where = " at end"
	}
	r.reporter.ErrorAt(token.Line, where, message)
}
