package ast

// Idx is a compact encoding of a source position within configuration code.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}
)
