// Package evaluator computes the value of parsed arithmetic expressions.
package evaluator

import (
	"errors"
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// ErrDivisionByZero is returned when the right operand of a division
// evaluates to exactly 0. Division never silently yields Inf or NaN.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate walks the expression tree and computes its value.
// Evaluation is pure: the same tree always yields the same result.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return e.Value, nil
	case *ast.PrefixExpr:
		if e.Operator != lexer.TokMinus {
			panic(fmt.Errorf("unsupported prefix operator %s", e.Operator))
		}
		right, err := Evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		return -right, nil
	case *ast.BinaryExpr:
		left, err := Evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Operator {
		case lexer.TokPlus:
			return left + right, nil
		case lexer.TokMinus:
			return left - right, nil
		case lexer.TokStar:
			return left * right, nil
		case lexer.TokSlash:
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			return left / right, nil
		default:
			panic(fmt.Errorf("unsupported binary operator %s", e.Operator))
		}
	default:
		panic(fmt.Errorf("unsupported expression type %T", expr))
	}
}
