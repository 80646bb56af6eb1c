// Package parser implements the recursive-descent parser for Lox.
//
// The parser consumes the token sequence produced by the lexer with a single
// token of lookahead and builds the AST. Syntax errors are reported to the
// shared diagnostics reporter; after an error the parser enters panic mode
// and synchronizes to the next statement boundary, so a single bad statement
// does not cascade into spurious diagnostics for the rest of the file.
package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

// Parser parses a token sequence into a list of statements.
type Parser struct {
	tokens   []lexer.Token
	reporter *errors.Reporter
	current  int
}

// New creates a parser over tokens. The sequence must be terminated by an
// EOF token, as produced by lexer.ScanTokens. Diagnostics are reported to
// reporter.
func New(tokens []lexer.Token, reporter *errors.Reporter) *Parser {
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

// Parse parses the whole token sequence as a list of declarations.
// Statements that failed to parse are dropped from the result; the caller
// must not execute the result when the reporter has recorded errors.
func (p *Parser) Parse() []ast.Stmt {
	statements := make([]ast.Stmt, 0)
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses one declaration slot. It is the recovery boundary for
// panic mode: on a syntax error the parser synchronizes and yields nil.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error

	switch {
	case p.match(lexer.CLASS):
		stmt, err = p.classDeclaration()
	case p.match(lexer.FUN):
		stmt, err = p.function("function")
	case p.match(lexer.VAR):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// match consumes the current token if it has one of the given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type.
func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return tt == lexer.EOF
	}
	return p.peek().Type == tt
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// consume consumes the current token if it has the expected type, otherwise
// reports a syntax error at the current token.
func (p *Parser) consume(tt lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.error(p.peek(), message)
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}
