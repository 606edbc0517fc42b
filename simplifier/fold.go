package simplifier

import (
	"strings"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// collapseChunks inlines interpolation chunks whose expression folded
// down to a string literal, merges neighbouring text runs, and turns a
// fully literal chunked string into a plain one.
func (s *simplifier) collapseChunks(expr *ast.Expression, n *ast.StringChunks) {
	out := n.Chunks[:0]
	for _, c := range n.Chunks {
		// "a%{"b"}c"
		if !c.IsText() {
			if lit, ok := c.Expr.Expr.(*ast.StringLiteral); ok {
				c = ast.StringChunk{Idx: c.Idx, Literal: reindent(lit.Value, c.Indent)}
				s.changed = true
			}
		}
		if c.IsText() {
			if c.Literal == "" {
				s.changed = true
				continue
			}
			if len(out) > 0 && out[len(out)-1].IsText() {
				out[len(out)-1].Literal += c.Literal
				s.changed = true
				continue
			}
		}
		out = append(out, c)
	}
	n.Chunks = out

	if value, ok := ast.AsStaticString(expr); ok {
		s.changed = true
		expr.Expr = &ast.StringLiteral{Idx: n.OpenQuote, Value: value}
	}
}

// reindent pads every line after the first with the indentation the
// chunk was spliced at, matching what evaluating the interpolation
// would have produced.
func reindent(value string, indent int) string {
	if indent <= 0 || !strings.Contains(value, "\n") {
		return value
	}
	pad := strings.Repeat(" ", indent)
	return strings.ReplaceAll(value, "\n", "\n"+pad)
}

func (s *simplifier) foldBinary(expr *ast.Expression, n *ast.BinaryExpression) {
	switch n.Operator {
	// "a" ++ "b"
	case token.Concat:
		left, ok := n.Left.Expr.(*ast.StringLiteral)
		if !ok {
			return
		}
		right, ok := n.Right.Expr.(*ast.StringLiteral)
		if !ok {
			return
		}
		s.changed = true
		expr.Expr = &ast.StringLiteral{Idx: left.Idx, Value: left.Value + right.Value}

	// 1 + 2
	case token.Plus, token.Minus, token.Multiply, token.Slash:
		left, right, ok := numberOperands(n)
		if !ok {
			return
		}
		var value float64
		switch n.Operator {
		case token.Plus:
			value = left + right
		case token.Minus:
			value = left - right
		case token.Multiply:
			value = left * right
		case token.Slash:
			// Division by zero stays behind for the evaluator to report.
			if right == 0 {
				return
			}
			value = left / right
		}
		s.changed = true
		expr.Expr = &ast.NumberLiteral{Idx: n.Left.Idx0(), Value: value}

	// 1 < 2, "a" == "b"
	case token.Equal, token.NotEqual, token.Less, token.Greater,
		token.LessOrEqual, token.GreaterOrEqual:
		s.foldComparison(expr, n)

	// true && x
	case token.LogicalAnd, token.LogicalOr:
		s.foldLogical(expr, n)
	}
}

// foldComparison folds comparisons whose operands are literals of the
// same comparable kind. Ordering is only defined for numbers and
// strings; booleans and null fold for equality alone. Mixed kinds are
// left for the evaluator.
func (s *simplifier) foldComparison(expr *ast.Expression, n *ast.BinaryExpression) {
	equality := n.Operator == token.Equal || n.Operator == token.NotEqual

	var result bool
	switch left := n.Left.Expr.(type) {
	case *ast.NumberLiteral:
		right, ok := n.Right.Expr.(*ast.NumberLiteral)
		if !ok {
			return
		}
		result = compareFold(n.Operator, left.Value, right.Value)
	case *ast.StringLiteral:
		right, ok := n.Right.Expr.(*ast.StringLiteral)
		if !ok {
			return
		}
		result = compareFold(n.Operator, left.Value, right.Value)
	case *ast.BooleanLiteral:
		right, ok := n.Right.Expr.(*ast.BooleanLiteral)
		if !ok || !equality {
			return
		}
		result = (left.Value == right.Value) == (n.Operator == token.Equal)
	case *ast.NullLiteral:
		if _, ok := n.Right.Expr.(*ast.NullLiteral); !ok || !equality {
			return
		}
		result = n.Operator == token.Equal
	default:
		return
	}

	s.changed = true
	expr.Expr = &ast.BooleanLiteral{Idx: n.Left.Idx0(), Value: result}
}

// foldLogical folds short-circuit operators when their left side is a
// literal boolean. A side the runtime would never evaluate may be
// dropped; the side it would evaluate is substituted only when it is
// itself a literal boolean, keeping the operand type check intact.
func (s *simplifier) foldLogical(expr *ast.Expression, n *ast.BinaryExpression) {
	left, ok := n.Left.Expr.(*ast.BooleanLiteral)
	if !ok {
		return
	}

	// false && x, true || x
	if (n.Operator == token.LogicalAnd) != left.Value {
		s.changed = true
		expr.Expr = left
		return
	}

	// true && x, false || x
	if right, ok := n.Right.Expr.(*ast.BooleanLiteral); ok {
		s.changed = true
		expr.Expr = right
	}
}

func (s *simplifier) foldUnary(expr *ast.Expression, n *ast.UnaryExpression) {
	switch operand := n.Operand.Expr.(type) {
	// -3
	case *ast.NumberLiteral:
		if n.Operator != token.Minus {
			return
		}
		s.changed = true
		expr.Expr = &ast.NumberLiteral{Idx: n.Idx, Value: -operand.Value}

	// !true
	case *ast.BooleanLiteral:
		if n.Operator != token.Not {
			return
		}
		s.changed = true
		expr.Expr = &ast.BooleanLiteral{Idx: n.Idx, Value: !operand.Value}
	}
}

// if true then a else b
func (s *simplifier) foldConditional(expr *ast.Expression, n *ast.ConditionalExpression) {
	test, ok := n.Test.Expr.(*ast.BooleanLiteral)
	if !ok {
		return
	}
	s.changed = true
	if test.Value {
		expr.Expr = n.Consequent.Expr
	} else {
		expr.Expr = n.Alternate.Expr
	}
}

func numberOperands(n *ast.BinaryExpression) (float64, float64, bool) {
	left, ok := n.Left.Expr.(*ast.NumberLiteral)
	if !ok {
		return 0, 0, false
	}
	right, ok := n.Right.Expr.(*ast.NumberLiteral)
	if !ok {
		return 0, 0, false
	}
	return left.Value, right.Value, true
}

func compareFold[T float64 | string](op token.Token, left, right T) bool {
	switch op {
	case token.Equal:
		return left == right
	case token.NotEqual:
		return left != right
	case token.Less:
		return left < right
	case token.Greater:
		return left > right
	case token.LessOrEqual:
		return left <= right
	default:
		return left >= right
	}
}
