// Package ast defines the syntax tree for arithmetic expressions.
//
// An expression is a finite tree: NumberExpr leaves, PrefixExpr nodes owning
// one child and BinaryExpr nodes owning two ordered children. Nodes are built
// by the parser and never mutated afterwards.
package ast

// Expr represents a node in the expression tree.
type Expr interface {
	// Dump returns the reconstituted source form of the expression.
	Dump() string
	expr()
}
