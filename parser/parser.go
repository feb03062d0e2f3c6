// Package parser builds expression trees from lexed arithmetic input.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/lexer"
)

type parser struct {
	lex *lexer.Lexer

	curToken lexer.Token
}

func newParser(lex *lexer.Lexer) *parser {
	p := &parser{lex: lex}
	p.nextToken()
	return p
}

// Parse tokenizes and parses the input as a single expression, checking that
// nothing but the end of input remains after it.
func Parse(input string) (ast.Expr, error) {
	p := newParser(lexer.New(input))
	expr, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	switch p.curToken.Type {
	case lexer.TokEOF:
		return expr, nil
	case lexer.TokError:
		return nil, p.lex.Err()
	default:
		// Trailing tokens after a complete expression.
		return nil, &ParseError{Expected: "end of input", Pos: p.curToken.Pos}
	}
}

// Run parses and evaluates a single expression.
func Run(input string) (float64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(expr)
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	return p.curToken
}

// expect checks that the current token is of the expected type and consumes
// it. desc is the human readable form used in the error.
func (p *parser) expect(kind lexer.TokenType, desc string) (lexer.Token, error) {
	tok := p.curToken
	if tok.Type == lexer.TokError {
		return tok, p.lex.Err()
	}
	if tok.Type != kind {
		return tok, &ParseError{Expected: desc, Pos: tok.Pos}
	}
	p.nextToken()
	return tok, nil
}
