package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/golox/internal/lexer"
)

// LiteralExpr represents a literal value: a number, string, boolean, or nil.
// Value holds the already-parsed literal (float64, string, bool) or nil.
type LiteralExpr struct {
	Value any
}

func (e *LiteralExpr) exprNode() {}

func (e *LiteralExpr) String() string {
	switch v := e.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// VariableExpr represents a variable reference.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) exprNode()      {}
func (e *VariableExpr) String() string { return e.Name.Lexeme }

// AssignExpr represents an assignment to a named variable.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) exprNode() {}

func (e *AssignExpr) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, e.Value.String())
}

// UnaryExpr represents a prefix operator application: !x or -x.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (e *UnaryExpr) exprNode() {}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Right.String())
}

// BinaryExpr represents an infix operator application.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left.String(), e.Right.String())
}

// LogicalExpr represents a short-circuiting "and" or "or" expression.
// It is distinct from BinaryExpr because the right operand is evaluated
// conditionally.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *LogicalExpr) exprNode() {}

func (e *LogicalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left.String(), e.Right.String())
}

// GroupingExpr represents a parenthesized expression.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) exprNode() {}

func (e *GroupingExpr) String() string {
	return fmt.Sprintf("(group %s)", e.Expression.String())
}

// CallExpr represents a call: callee(arguments...). Paren is the closing
// parenthesis token, kept for runtime error positions.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *CallExpr) exprNode() {}

func (e *CallExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(e.Callee.String())
	for _, arg := range e.Arguments {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}
