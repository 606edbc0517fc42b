// Package generator renders expressions back to source text. Output is
// canonical rather than byte-faithful: strings print in simple-quoted
// form with escapes re-applied, and parentheses come from structure, so
// repeated parse/print cycles reach a fixed point after the first.
package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/cloudyluna/nickel/ast"
)

func Generate(expr *ast.Expression) string {
	s := &state{
		out:    &strings.Builder{},
		node:   expr.Expr,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

// Printed forms bind with different strength; a child whose level exceeds
// what its context accepts gets parenthesized.
const (
	levelPrimary = iota
	levelMember
	levelApply
	levelUnary
	levelBinary
	levelKeyword
)

func levelOf(e ast.Expr) int {
	switch e.(type) {
	case *ast.MemberExpression:
		return levelMember
	case *ast.CallExpression:
		return levelApply
	case *ast.UnaryExpression:
		return levelUnary
	case *ast.BinaryExpression:
		return levelBinary
	case *ast.LetExpression, *ast.ConditionalExpression, *ast.FunctionLiteral:
		return levelKeyword
	}
	return levelPrimary
}

// isNegativeNumber guards literals the simplifier may produce: `-3` in
// argument position would re-parse as subtraction without parentheses.
func isNegativeNumber(e ast.Expr) bool {
	n, ok := e.(*ast.NumberLiteral)
	return ok && math.Signbit(n.Value)
}

func needsParens(s *state) bool {
	child := levelOf(s.node)

	switch p := s.parent.node.(type) {
	case *ast.CallExpression:
		if p.Callee.Expr == s.node {
			return child > levelApply
		}
		return child > levelMember || isNegativeNumber(s.node)

	case *ast.MemberExpression:
		return child > levelMember || isNegativeNumber(s.node)

	case *ast.UnaryExpression:
		return child >= levelBinary

	case *ast.BinaryExpression:
		if child == levelKeyword {
			return true
		}
		b, ok := s.node.(*ast.BinaryExpression)
		if !ok {
			return false
		}
		prec, parentPrec := b.Operator.Precedence(), p.Operator.Precedence()
		if prec != parentPrec {
			return prec < parentPrec
		}
		if p.Operator.IsRightAssociative() {
			return p.Left.Expr == s.node
		}
		return p.Right.Expr == s.node
	}
	return false
}

func gen(s *state) {
	if needsParens(s) {
		s.out.WriteString("(")
		defer s.out.WriteString(")")
	}

	switch n := s.node.(type) {
	case nil:
	case *ast.InvalidExpression:

	case *ast.Identifier:
		s.out.WriteString(n.Name)

	case *ast.NullLiteral:
		s.out.WriteString("null")

	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))

	case *ast.NumberLiteral:
		if n.Raw != nil {
			s.out.WriteString(*n.Raw)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
		}

	case *ast.StringLiteral:
		s.out.WriteString(`"`)
		escapeTo(s.out, n.Value)
		s.out.WriteString(`"`)

	case *ast.StringChunks:
		s.out.WriteString(`"`)
		for i := range n.Chunks {
			c := &n.Chunks[i]
			if c.IsText() {
				escapeTo(s.out, c.Literal)
			} else {
				s.out.WriteString("%{")
				gen(s.wrap(c.Expr.Expr))
				s.out.WriteString("}")
			}
		}
		s.out.WriteString(`"`)

	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		gen(s.wrap(n.Operand.Expr))

	case *ast.BinaryExpression:
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right.Expr))

	case *ast.CallExpression:
		gen(s.wrap(n.Callee.Expr))
		s.out.WriteString(" ")
		gen(s.wrap(n.Argument.Expr))

	case *ast.MemberExpression:
		gen(s.wrap(n.Object.Expr))
		s.out.WriteString(".")
		s.out.WriteString(n.Property.Name)

	case *ast.LetExpression:
		s.out.WriteString("let ")
		s.out.WriteString(n.Name.Name)
		s.out.WriteString(" = ")
		gen(s.wrap(n.Value.Expr))
		s.out.WriteString(" in ")
		gen(s.wrap(n.Body.Expr))

	case *ast.ConditionalExpression:
		s.out.WriteString("if ")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(" then ")
		gen(s.wrap(n.Consequent.Expr))
		s.out.WriteString(" else ")
		gen(s.wrap(n.Alternate.Expr))

	case *ast.FunctionLiteral:
		s.out.WriteString("fun ")
		s.out.WriteString(n.Param.Name)
		s.out.WriteString(" => ")
		gen(s.wrap(n.Body.Expr))

	case *ast.RecordLiteral:
		if len(n.Fields) == 0 {
			s.out.WriteString("{}")
			break
		}
		s.out.WriteString("{ ")
		for i := range n.Fields {
			if i > 0 {
				s.out.WriteString(", ")
			}
			f := &n.Fields[i]
			gen(s.wrap(f.Key.Expr))
			s.out.WriteString(" = ")
			gen(s.wrap(f.Value.Expr))
		}
		s.out.WriteString(" }")

	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i := range n.Value {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(n.Value[i].Expr))
		}
		s.out.WriteString("]")
	}
}

// escapeTo writes s with simple-string escaping applied: the characters
// that close or structure a simple literal, plus the control characters
// the language has escapes for. Every `%` escapes, so no output sequence
// can form an interpolation marker by accident.
func escapeTo(out *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '%':
			out.WriteString(`\%`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		case '\r':
			out.WriteString(`\r`)
		default:
			out.WriteRune(r)
		}
	}
}
