package interp

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp/runtime"
	"github.com/cwbudde/golox/internal/lexer"
)

// evaluate computes the value of an expression.
func (i *Interpreter) evaluate(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return i.evaluate(e.Expression)

	case *ast.VariableExpr:
		return i.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		return i.evalAssign(e)

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	default:
		return nil, fmt.Errorf("unhandled expression type %T", expr)
	}
}

// literalValue converts a parsed literal into its runtime value.
func literalValue(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.Nil
	case bool:
		return &runtime.BooleanValue{Value: val}
	case float64:
		return &runtime.NumberValue{Value: val}
	case string:
		return &runtime.StringValue{Value: val}
	default:
		// The scanner only produces the literal kinds above.
		return runtime.Nil
	}
}

// lookUpVariable reads a variable through the resolution side-table:
// resolved expressions jump to their exact scope depth, unresolved ones are
// globals looked up late by name.
func (i *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (runtime.Value, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.environment.GetAt(depth, name.Lexeme), nil
	}
	if value, ok := i.globals.Get(name.Lexeme); ok {
		return value, nil
	}
	return nil, runtime.NewError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) (runtime.Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if depth, ok := i.locals[e]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if !i.globals.Assign(e.Name.Lexeme, value) {
		return nil, runtime.NewError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (runtime.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		num, ok := right.(*runtime.NumberValue)
		if !ok {
			return nil, runtime.NewError(e.Operator, "Operand must be a number.")
		}
		return &runtime.NumberValue{Value: -num.Value}, nil
	case lexer.BANG:
		return &runtime.BooleanValue{Value: !runtime.IsTruthy(right)}, nil
	default:
		return nil, fmt.Errorf("unhandled unary operator %s", e.Operator.Lexeme)
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (runtime.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(*runtime.NumberValue); ok {
			if rn, ok := right.(*runtime.NumberValue); ok {
				return &runtime.NumberValue{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*runtime.StringValue); ok {
			if rs, ok := right.(*runtime.StringValue); ok {
				return &runtime.StringValue{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtime.NewError(e.Operator, "Operands must be two numbers or two strings.")

	case lexer.MINUS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.NumberValue{Value: ln - rn}, nil

	case lexer.STAR:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.NumberValue{Value: ln * rn}, nil

	case lexer.SLASH:
		// IEEE-754 division; division by zero yields an infinity or NaN.
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.NumberValue{Value: ln / rn}, nil

	case lexer.GREATER:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: ln > rn}, nil

	case lexer.GREATER_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: ln >= rn}, nil

	case lexer.LESS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: ln < rn}, nil

	case lexer.LESS_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: ln <= rn}, nil

	case lexer.EQUAL_EQUAL:
		return &runtime.BooleanValue{Value: runtime.Equals(left, right)}, nil

	case lexer.BANG_EQUAL:
		return &runtime.BooleanValue{Value: !runtime.Equals(left, right)}, nil

	default:
		return nil, fmt.Errorf("unhandled binary operator %s", e.Operator.Lexeme)
	}
}

// numberOperands unwraps both operands as numbers or fails with the
// operator's type error.
func numberOperands(operator lexer.Token, left, right runtime.Value) (float64, float64, error) {
	ln, lok := left.(*runtime.NumberValue)
	rn, rok := right.(*runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, runtime.NewError(operator, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

// evalLogical short-circuits: the left operand decides whether the right is
// evaluated at all, and the result is whichever operand decided the
// outcome, uncoerced.
func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (runtime.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.OR {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (runtime.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]runtime.Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		value, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	function, ok := callee.(runtime.Callable)
	if !ok {
		return nil, runtime.NewError(e.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != function.Arity() {
		return nil, runtime.NewError(e.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", function.Arity(), len(arguments)))
	}

	if i.trace.IsDebug() {
		i.trace.Debug("call", "callee", function.String(), "args", len(arguments))
	}

	return function.Call(i, arguments)
}
