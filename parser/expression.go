package parser

import (
	"strconv"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// parseExpression parses at the lowest precedence level. The keyword-led
// forms (let, if, fun) live here rather than in parsePrimaryExpression so
// that their bodies extend as far right as possible: `let x = 1 in x + 1`
// binds the whole of `x + 1` as the body. In operand position they need
// parentheses.
func (p *parser) parseExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Let:
		return p.parseLetExpression()
	case token.If:
		return p.parseIfExpression()
	case token.Fun:
		return p.parseFunctionLiteral()
	}
	return p.parseBinaryExpressionOrHigher(PrecedenceLowest)
}

func (p *parser) parseLetExpression() *ast.Expression {
	idx := p.expect(token.Let)
	name := p.parseIdentifier()
	p.expect(token.Assign)
	value := p.parseExpression()
	p.expect(token.In)
	body := p.parseExpression()
	return p.alloc.Expression(ast.NewLetExpr(p.alloc.LetExpression(idx, name, value, body)))
}

func (p *parser) parseIfExpression() *ast.Expression {
	idx := p.expect(token.If)
	test := p.parseExpression()
	p.expect(token.Then)
	consequent := p.parseExpression()
	p.expect(token.Else)
	alternate := p.parseExpression()
	return p.alloc.Expression(ast.NewCondExpr(p.alloc.ConditionalExpression(idx, test, consequent, alternate)))
}

// parseFunctionLiteral parses `fun x => body`. Several parameters are sugar
// for nesting: `fun x y => e` builds fun x => (fun y => e).
func (p *parser) parseFunctionLiteral() *ast.Expression {
	idx := p.expect(token.Fun)

	var params []*ast.Identifier
	for p.currentKind() == token.Identifier {
		params = append(params, p.parseIdentifier())
	}
	if len(params) == 0 {
		p.errorUnexpectedToken(p.currentKind())
		params = append(params, p.alloc.Identifier(p.currentOffset(), ""))
	}

	p.expect(token.DoubleArrow)
	body := p.parseExpression()

	expr := body
	for i := len(params) - 1; i >= 0; i-- {
		funIdx := idx
		if i > 0 {
			funIdx = params[i].Idx
		}
		expr = p.alloc.Expression(ast.NewFuncLitExpr(p.alloc.FunctionLiteral(funIdx, params[i], expr)))
	}
	return expr
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	lhs := p.parseUnaryExpression()
	return p.parseBinaryExpressionRest(lhs, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(lhs *ast.Expression, minPrecedence Precedence) *ast.Expression {
	for {
		kind := p.currentKind()

		lbp := kindToPrecedence(kind)

		if lbp <= minPrecedence {
			break
		}

		p.next()
		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)

		lhs = p.alloc.Expression(ast.NewBinExpr(p.alloc.BinaryExpression(kind, lhs, rhs)))
	}

	return lhs
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch kind := p.currentKind(); kind {
	case token.Minus, token.Not:
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		return p.alloc.Expression(ast.NewUnaryExpr(p.alloc.UnaryExpression(kind, idx, operand)))
	}
	return p.parseApplicationExpression()
}

// parseApplicationExpression parses juxtaposition application, which binds
// tighter than any operator: `f x + 1` is `(f x) + 1` and `f x y` is
// `(f x) y`.
func (p *parser) parseApplicationExpression() *ast.Expression {
	expr := p.parseMemberExpression()
	for startsOperand(p.currentKind()) {
		arg := p.parseMemberExpression()
		expr = p.alloc.Expression(ast.NewCallExpr(p.alloc.CallExpression(expr, arg)))
	}
	return expr
}

// startsOperand reports whether a token can begin an application operand.
func startsOperand(kind token.Token) bool {
	switch kind {
	case token.Identifier, token.Number, token.String, token.StringHead,
		token.Boolean, token.Null,
		token.LeftParenthesis, token.LeftBracket, token.LeftBrace:
		return true
	}
	return false
}

func (p *parser) parseMemberExpression() *ast.Expression {
	expr := p.parsePrimaryExpression()
	for p.currentKind() == token.Period {
		p.next()
		property := p.parseIdentifier()
		expr = p.alloc.Expression(ast.NewMemberExpr(p.alloc.MemberExpression(expr, property)))
	}
	return expr
}

// parseIdentifier consumes an Identifier token. On a mismatch it reports
// the error and returns an empty placeholder without consuming, which lets
// the caller's next expect line up with the actual token.
func (p *parser) parseIdentifier() *ast.Identifier {
	if p.currentKind() != token.Identifier {
		p.errorUnexpectedToken(p.currentKind())
		return p.alloc.Identifier(p.currentOffset(), "")
	}
	ident := p.alloc.Identifier(p.currentOffset(), p.currentString())
	p.next()
	return ident
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Identifier:
		ident := p.alloc.Identifier(p.currentOffset(), p.currentString())
		p.next()
		return p.alloc.Expression(ast.NewIdentExpr(ident))

	case token.Number:
		return p.parseNumberLiteral()

	case token.String, token.StringHead:
		return p.parseStringLiteral()

	case token.Boolean:
		idx := p.currentOffset()
		value := p.currentString() == "true"
		p.next()
		return p.alloc.Expression(ast.NewBoolLitExpr(p.alloc.BooleanLiteral(idx, value)))

	case token.Null:
		idx := p.currentOffset()
		p.next()
		return p.alloc.Expression(ast.NewNullLitExpr(p.alloc.NullLiteral(idx)))

	case token.LeftParenthesis:
		p.next()
		expr := p.parseExpression()
		p.expect(token.RightParenthesis)
		return expr

	case token.LeftBracket:
		return p.parseArrayLiteral()

	case token.LeftBrace:
		return p.parseRecordLiteral()
	}

	p.errorUnexpectedToken(p.currentKind())
	from, to := p.token.Idx0, p.token.Idx1
	if p.currentKind() != token.Eof {
		p.next()
	}
	return p.alloc.Expression(ast.NewInvalidExpr(p.alloc.InvalidExpression(from, to)))
}

func (p *parser) parseNumberLiteral() *ast.Expression {
	idx := p.currentOffset()
	raw := p.token.Raw(p.scanner)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errorf(idx, p.token.Idx1, "Invalid number literal `%s`", raw)
	}
	p.next()
	return p.alloc.Expression(ast.NewNumLitExpr(p.alloc.NumberLiteral(idx, value, raw)))
}

func (p *parser) parseArrayLiteral() *ast.Expression {
	idx0 := p.expect(token.LeftBracket)
	mark := len(p.exprBuf)
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		p.exprBuf = append(p.exprBuf, *p.parseExpression())
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	idx1 := p.expect(token.RightBracket)
	return p.alloc.Expression(ast.NewArrayLitExpr(p.alloc.ArrayLiteral(idx0, idx1, p.finishExprBuf(mark))))
}

func (p *parser) parseRecordLiteral() *ast.Expression {
	idx0 := p.expect(token.LeftBrace)
	var fields []ast.RecordField
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		key := p.parseFieldKey()
		p.expect(token.Assign)
		value := p.parseExpression()
		fields = append(fields, ast.RecordField{Key: key, Value: value})
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	idx1 := p.expect(token.RightBrace)
	return p.alloc.Expression(ast.NewRecordLitExpr(p.alloc.RecordLiteral(idx0, idx1, p.alloc.CopyFields(fields))))
}

// parseFieldKey parses one record field name: a bare identifier, or a
// quoted string whose name may be computed through interpolation when the
// record is built.
func (p *parser) parseFieldKey() *ast.Expression {
	switch p.currentKind() {
	case token.Identifier:
		ident := p.alloc.Identifier(p.currentOffset(), p.currentString())
		p.next()
		return p.alloc.Expression(ast.NewIdentExpr(ident))
	case token.String, token.StringHead:
		return p.parseStringLiteral()
	}
	p.errorUnexpectedToken(p.currentKind())
	from, to := p.token.Idx0, p.token.Idx1
	if p.currentKind() != token.Eof {
		p.next()
	}
	return p.alloc.Expression(ast.NewInvalidExpr(p.alloc.InvalidExpression(from, to)))
}
