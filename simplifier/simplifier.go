// Package simplifier rewrites an expression tree into a smaller
// equivalent one. It folds what is decidable without evaluating:
// constant arithmetic, comparisons between literals, conditionals
// tested on a literal boolean, and interpolated strings whose pieces
// are all known text. Chunks that still hold live expressions keep
// their source order, so evaluation order stays observable.
package simplifier

import (
	"github.com/cloudyluna/nickel/ast"
)

type simplifier struct {
	changed bool
}

// Simplify rewrites expr in place, bottom up, repeating until no rule
// applies anymore.
func Simplify(expr *ast.Expression) {
	s := &simplifier{}
	for {
		s.changed = false
		s.expression(expr)
		if !s.changed {
			return
		}
	}
}

// expression descends into children first, so every fold sees operands
// that are already in their simplest form.
func (s *simplifier) expression(expr *ast.Expression) {
	if expr == nil || expr.Expr == nil {
		return
	}

	switch n := expr.Expr.(type) {
	case *ast.StringChunks:
		for i := range n.Chunks {
			s.expression(n.Chunks[i].Expr)
		}
	case *ast.BinaryExpression:
		s.expression(n.Left)
		s.expression(n.Right)
	case *ast.UnaryExpression:
		s.expression(n.Operand)
	case *ast.ConditionalExpression:
		s.expression(n.Test)
		s.expression(n.Consequent)
		s.expression(n.Alternate)
	case *ast.LetExpression:
		s.expression(n.Value)
		s.expression(n.Body)
	case *ast.FunctionLiteral:
		s.expression(n.Body)
	case *ast.CallExpression:
		s.expression(n.Callee)
		s.expression(n.Argument)
	case *ast.MemberExpression:
		s.expression(n.Object)
	case *ast.RecordLiteral:
		for i := range n.Fields {
			s.expression(n.Fields[i].Key)
			s.expression(n.Fields[i].Value)
		}
	case *ast.ArrayLiteral:
		for i := range n.Value {
			s.expression(&n.Value[i])
		}
	}

	switch n := expr.Expr.(type) {
	case *ast.StringChunks:
		s.collapseChunks(expr, n)
	case *ast.BinaryExpression:
		s.foldBinary(expr, n)
	case *ast.UnaryExpression:
		s.foldUnary(expr, n)
	case *ast.ConditionalExpression:
		s.foldConditional(expr, n)
	}
}
