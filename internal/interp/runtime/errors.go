package runtime

import (
	"github.com/cwbudde/golox/internal/lexer"
)

// Error is a Lox runtime error. It carries the token whose evaluation
// failed so the diagnostic can name the source line.
type Error struct {
	Token   lexer.Token
	Message string
}

// NewError creates a runtime error at the given token.
func NewError(token lexer.Token, message string) *Error {
	return &Error{Token: token, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ReturnSignal is the non-local exit used by return statements. It travels
// up through the evaluator as an error, unwinding any nested block scopes,
// and is caught exactly at the enclosing function's call frame, which
// yields the carried value. It must never escape a function invocation.
type ReturnSignal struct {
	Value Value
}

// Error implements the error interface. A ReturnSignal escaping to a
// diagnostic would be an interpreter bug; the message exists for that case
// only.
func (r *ReturnSignal) Error() string {
	return "return outside function frame"
}
