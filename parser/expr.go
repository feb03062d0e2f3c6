package parser

import (
	"strconv"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// Grammar, one function per rule:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := '-' factor | primary
//	primary    := NUMBER | '(' expression ')'
//
// Both binary levels fold left with a loop so that long operator chains
// don't grow the stack.

func parseExpr(p *parser) (ast.Expr, error) {
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		op := p.curToken.Type
		p.nextToken()
		right, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func parseTerm(p *parser) (ast.Expr, error) {
	left, err := parseFactor(p)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		op := p.curToken.Type
		p.nextToken()
		right, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func parseFactor(p *parser) (ast.Expr, error) {
	if p.curToken.Type == lexer.TokMinus {
		p.nextToken()
		// Right-recursive: --5 is the negation of the negation of 5.
		right, err := parseFactor(p)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpr{Operator: lexer.TokMinus, Right: right}, nil
	}
	return parsePrimary(p)
}

func parsePrimary(p *parser) (ast.Expr, error) {
	switch tok := p.curToken; tok.Type {
	case lexer.TokNumber:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &ParseError{Expected: "number", Pos: tok.Pos}
		}
		p.nextToken()
		return &ast.NumberExpr{Value: value}, nil
	case lexer.TokParenLeft:
		p.nextToken()
		expr, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TokError:
		return nil, p.lex.Err()
	default:
		return nil, &ParseError{Expected: "number or '('", Pos: tok.Pos}
	}
}
