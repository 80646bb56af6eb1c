package runtime

import (
	"github.com/cwbudde/golox/internal/ast"
)

// FunctionValue is a user-declared function: its declaration paired with
// the environment that was current when the declaration executed. Bound
// methods are FunctionValues whose closure additionally binds "this".
type FunctionValue struct {
	Declaration *ast.FunctionStatement
	Closure     *Environment
	// IsInitializer marks class "init" methods, which implicitly return
	// the constructed instance.
	IsInitializer bool
}

// NewFunction creates a function value capturing env as its closure.
func NewFunction(declaration *ast.FunctionStatement, env *Environment, isInitializer bool) *FunctionValue {
	return &FunctionValue{
		Declaration:   declaration,
		Closure:       env,
		IsInitializer: isInitializer,
	}
}

func (f *FunctionValue) Type() string { return "FUNCTION" }

func (f *FunctionValue) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

// Arity returns the declared parameter count.
func (f *FunctionValue) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a copy of the function whose closure binds "this" to the
// given instance, one scope inside the original closure.
func (f *FunctionValue) Bind(instance *InstanceValue) *FunctionValue {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// Call executes the function body in a fresh environment enclosed by the
// closure, with each parameter bound to the corresponding argument. A
// return statement anywhere in the body unwinds to here; a body that
// completes normally yields nil. Initializers always yield the bound
// instance.
func (f *FunctionValue) Call(ev Evaluator, arguments []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	if err := ev.ExecuteBlock(f.Declaration.Body, env); err != nil {
		ret, ok := err.(*ReturnSignal)
		if !ok {
			return nil, err
		}
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return Nil, nil
}
