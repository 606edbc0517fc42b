package ast

func (b *BinaryExpression) Idx0() Idx      { return (*b.Left).Expr.Idx0() }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *ConditionalExpression) Idx0() Idx { return n.If }
func (n *LetExpression) Idx0() Idx         { return n.Let }
func (f *FunctionLiteral) Idx0() Idx       { return f.Fun }
func (n *CallExpression) Idx0() Idx        { return (*n.Callee).Expr.Idx0() }
func (m *MemberExpression) Idx0() Idx      { return (*m.Object).Expr.Idx0() }
func (n *RecordLiteral) Idx0() Idx         { return n.LeftBrace }
func (a *ArrayLiteral) Idx0() Idx          { return a.LeftBracket }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (i *Identifier) Idx0() Idx            { return i.Idx }
func (b *BooleanLiteral) Idx0() Idx        { return b.Idx }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *StringChunks) Idx0() Idx          { return n.OpenQuote }
func (c *StringChunk) Idx0() Idx           { return c.Idx }

func (b *BinaryExpression) Idx1() Idx      { return (*b.Right).Expr.Idx1() }
func (n *UnaryExpression) Idx1() Idx       { return (*n.Operand).Expr.Idx1() }
func (n *ConditionalExpression) Idx1() Idx { return (*n.Alternate).Expr.Idx1() }
func (n *LetExpression) Idx1() Idx         { return (*n.Body).Expr.Idx1() }
func (f *FunctionLiteral) Idx1() Idx       { return (*f.Body).Expr.Idx1() }
func (n *CallExpression) Idx1() Idx        { return (*n.Argument).Expr.Idx1() }
func (m *MemberExpression) Idx1() Idx      { return m.Property.Idx1() }
func (n *RecordLiteral) Idx1() Idx         { return n.RightBrace + 1 }
func (a *ArrayLiteral) Idx1() Idx          { return a.RightBracket + 1 }
func (n *InvalidExpression) Idx1() Idx     { return n.To }
func (i *Identifier) Idx1() Idx            { return Idx(int(i.Idx) + len(i.Name)) }
func (n *NullLiteral) Idx1() Idx           { return n.Idx + 4 } // "null"
func (c *StringChunk) Idx1() Idx {
	if c.Expr != nil {
		return c.Expr.Idx1()
	}
	return Idx(int(c.Idx) + len(c.Literal))
}

func (b *BooleanLiteral) Idx1() Idx {
	if b.Value {
		return b.Idx + 4 // "true"
	}
	return b.Idx + 5 // "false"
}

func (n *NumberLiteral) Idx1() Idx {
	if n.Raw != nil {
		return Idx(int(n.Idx) + len(*n.Raw))
	}
	return n.Idx + 1
}

func (n *StringLiteral) Idx1() Idx {
	if n.Raw != nil {
		return Idx(int(n.Idx) + len(*n.Raw))
	}
	return Idx(int(n.Idx) + len(n.Value) + 2)
}

// Idx1 covers the closing delimiter: one quote plus the percent fence.
func (n *StringChunks) Idx1() Idx {
	return Idx(int(n.CloseQuote) + 1 + n.Fence)
}

func NewIdentExpr(i *Identifier) Expression            { return Expression{Expr: i} }
func NewNumLitExpr(n *NumberLiteral) Expression        { return Expression{Expr: n} }
func NewBoolLitExpr(b *BooleanLiteral) Expression      { return Expression{Expr: b} }
func NewNullLitExpr(n *NullLiteral) Expression         { return Expression{Expr: n} }
func NewStrLitExpr(s *StringLiteral) Expression        { return Expression{Expr: s} }
func NewStrChunksExpr(s *StringChunks) Expression      { return Expression{Expr: s} }
func NewBinExpr(b *BinaryExpression) Expression        { return Expression{Expr: b} }
func NewUnaryExpr(u *UnaryExpression) Expression       { return Expression{Expr: u} }
func NewCondExpr(c *ConditionalExpression) Expression  { return Expression{Expr: c} }
func NewLetExpr(l *LetExpression) Expression           { return Expression{Expr: l} }
func NewFuncLitExpr(f *FunctionLiteral) Expression     { return Expression{Expr: f} }
func NewCallExpr(c *CallExpression) Expression         { return Expression{Expr: c} }
func NewMemberExpr(m *MemberExpression) Expression     { return Expression{Expr: m} }
func NewRecordLitExpr(r *RecordLiteral) Expression     { return Expression{Expr: r} }
func NewArrayLitExpr(a *ArrayLiteral) Expression       { return Expression{Expr: a} }
func NewInvalidExpr(n *InvalidExpression) Expression   { return Expression{Expr: n} }

// AsStaticString returns the literal value of an expression that is a
// compile-time constant string: either a plain string literal or a chunked
// string whose chunks are all text.
func AsStaticString(e *Expression) (string, bool) {
	switch n := e.Expr.(type) {
	case *StringLiteral:
		return n.Value, true
	case *StringChunks:
		var sb []byte
		for i := range n.Chunks {
			if !n.Chunks[i].IsText() {
				return "", false
			}
			sb = append(sb, n.Chunks[i].Literal...)
		}
		return string(sb), true
	}
	return "", false
}
