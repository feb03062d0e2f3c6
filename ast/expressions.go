package ast

import (
	"strconv"

	"go.creack.net/calc/lexer"
)

// NumberExpr is a literal number leaf.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (e NumberExpr) Dump() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// PrefixExpr is a unary operator applied to a single operand.
type PrefixExpr struct {
	Operator lexer.TokenType // TokMinus.
	Right    Expr
}

func (PrefixExpr) expr() {}

func (e PrefixExpr) Dump() string {
	return opString(e.Operator) + e.Right.Dump()
}

// BinaryExpr is a binary operator with its ordered operands.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // TokPlus, TokMinus, TokStar or TokSlash.
	Right    Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return "(" + e.Left.Dump() + " " + opString(e.Operator) + " " + e.Right.Dump() + ")"
}

func opString(op lexer.TokenType) string {
	switch op {
	case lexer.TokPlus:
		return "+"
	case lexer.TokMinus:
		return "-"
	case lexer.TokStar:
		return "*"
	case lexer.TokSlash:
		return "/"
	}
	return op.String()
}
