package parser

import (
	"github.com/cwbudde/golox/internal/lexer"
)

// parseError is the panic-mode signal. It is created by error(), which has
// already reported the diagnostic, and is caught at the declaration
// boundary where the parser synchronizes.
type parseError struct {
	token   lexer.Token
	message string
}

func (e *parseError) Error() string {
	return e.message
}

// error reports a syntax error at the given token and returns the
// panic-mode signal for the caller to propagate. Callers that recover in
// place (invalid assignment target, argument limits) discard the result.
func (p *Parser) error(token lexer.Token, message string) error {
	where := " at '" + token.Lexeme + "'"
	if token.Type == lexer.EOF {
		where = " at end"
	}
	p.reporter.ErrorAt(token.Line, where, message)
	return &parseError{token: token, message: message}
}

// synchronize discards tokens until a likely statement boundary: just past
// a semicolon, or just before a keyword that starts a statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
