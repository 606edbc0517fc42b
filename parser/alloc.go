package parser

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// nodeAllocator encapsulates typed arenas for all frequently allocated AST
// node types. Constructor methods arena-allocate and initialize nodes in a
// single call, replacing scattered &ast.X{} heap allocations throughout the
// parser.
type nodeAllocator struct {
	// Wrapper type, one per node handed to the caller.
	expr miniArena[ast.Expression]

	// Slice backing arenas, separate from the per-element arenas so that
	// contiguous slice allocations don't fragment with individual node
	// allocs.
	exprSlice  miniArena[ast.Expression]
	chunkSlice miniArena[ast.StringChunk]
	fieldSlice miniArena[ast.RecordField]

	// Concrete expression nodes.
	ident     miniArena[ast.Identifier]
	strLit    miniArena[ast.StringLiteral]
	numLit    miniArena[ast.NumberLiteral]
	boolLit   miniArena[ast.BooleanLiteral]
	nullLit   miniArena[ast.NullLiteral]
	strChunks miniArena[ast.StringChunks]
	binExpr   miniArena[ast.BinaryExpression]
	unaryExpr miniArena[ast.UnaryExpression]
	condExpr  miniArena[ast.ConditionalExpression]
	letExpr   miniArena[ast.LetExpression]
	funcLit   miniArena[ast.FunctionLiteral]
	callExpr  miniArena[ast.CallExpression]
	memberExp miniArena[ast.MemberExpression]
	recordLit miniArena[ast.RecordLiteral]
	arrLit    miniArena[ast.ArrayLiteral]
	invalidEx miniArena[ast.InvalidExpression]

	// String pointers (for Raw fields on StringLiteral/NumberLiteral).
	str miniArena[string]
}

func newNodeAllocator() nodeAllocator {
	return nodeAllocator{
		// Wrapper type — high volume.
		expr: *newArena[ast.Expression](512),

		// Slice backing arenas.
		exprSlice:  *newArena[ast.Expression](256),
		chunkSlice: *newArena[ast.StringChunk](128),
		fieldSlice: *newArena[ast.RecordField](64),

		// Identifiers are the most frequent node.
		ident: *newArena[ast.Identifier](512),

		// Literals.
		strLit:    *newArena[ast.StringLiteral](128),
		numLit:    *newArena[ast.NumberLiteral](128),
		boolLit:   *newArena[ast.BooleanLiteral](32),
		nullLit:   *newArena[ast.NullLiteral](16),
		strChunks: *newArena[ast.StringChunks](64),

		// Expressions.
		binExpr:   *newArena[ast.BinaryExpression](128),
		unaryExpr: *newArena[ast.UnaryExpression](32),
		condExpr:  *newArena[ast.ConditionalExpression](32),
		letExpr:   *newArena[ast.LetExpression](64),
		funcLit:   *newArena[ast.FunctionLiteral](64),
		callExpr:  *newArena[ast.CallExpression](128),
		memberExp: *newArena[ast.MemberExpression](128),
		recordLit: *newArena[ast.RecordLiteral](32),
		arrLit:    *newArena[ast.ArrayLiteral](32),
		invalidEx: *newArena[ast.InvalidExpression](8),

		// String pointers.
		str: *newArena[string](128),
	}
}

// ---------------------------------------------------------------------------
// Wrapper constructors
// ---------------------------------------------------------------------------

func (a *nodeAllocator) Expression(expr ast.Expression) *ast.Expression {
	n := a.expr.make()
	*n = expr
	return n
}

// CopyExpressions allocates a contiguous []Expression from the arena and
// copies src into it. The returned slice's backing array lives in arena
// memory.
func (a *nodeAllocator) CopyExpressions(src []ast.Expression) ast.Expressions {
	if len(src) == 0 {
		return nil
	}
	dst := a.exprSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

// CopyChunks allocates a contiguous []StringChunk from the arena and copies
// src into it.
func (a *nodeAllocator) CopyChunks(src []ast.StringChunk) []ast.StringChunk {
	if len(src) == 0 {
		return nil
	}
	dst := a.chunkSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

// CopyFields allocates a contiguous []RecordField from the arena and copies
// src into it.
func (a *nodeAllocator) CopyFields(src []ast.RecordField) []ast.RecordField {
	if len(src) == 0 {
		return nil
	}
	dst := a.fieldSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

// stringPtr arena-allocates a *string, avoiding the heap escape of &localVar.
func (a *nodeAllocator) stringPtr(s string) *string {
	p := a.str.make()
	*p = s
	return p
}

// ---------------------------------------------------------------------------
// Identifier / literals
// ---------------------------------------------------------------------------

func (a *nodeAllocator) Identifier(idx ast.Idx, name string) *ast.Identifier {
	n := a.ident.make()
	*n = ast.Identifier{Idx: idx, Name: name}
	return n
}

func (a *nodeAllocator) StringLiteral(idx ast.Idx, value, raw string) *ast.StringLiteral {
	n := a.strLit.make()
	*n = ast.StringLiteral{Idx: idx, Value: value, Raw: a.stringPtr(raw)}
	return n
}

func (a *nodeAllocator) NumberLiteral(idx ast.Idx, value float64, raw string) *ast.NumberLiteral {
	n := a.numLit.make()
	*n = ast.NumberLiteral{Idx: idx, Value: value, Raw: a.stringPtr(raw)}
	return n
}

func (a *nodeAllocator) BooleanLiteral(idx ast.Idx, value bool) *ast.BooleanLiteral {
	n := a.boolLit.make()
	*n = ast.BooleanLiteral{Idx: idx, Value: value}
	return n
}

func (a *nodeAllocator) NullLiteral(idx ast.Idx) *ast.NullLiteral {
	n := a.nullLit.make()
	*n = ast.NullLiteral{Idx: idx}
	return n
}

func (a *nodeAllocator) StringChunks(openQuote, closeQuote ast.Idx, fence int, chunks []ast.StringChunk) *ast.StringChunks {
	n := a.strChunks.make()
	*n = ast.StringChunks{OpenQuote: openQuote, CloseQuote: closeQuote, Fence: fence, Chunks: chunks}
	return n
}

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

func (a *nodeAllocator) BinaryExpression(op token.Token, left, right *ast.Expression) *ast.BinaryExpression {
	n := a.binExpr.make()
	*n = ast.BinaryExpression{Operator: op, Left: left, Right: right}
	return n
}

func (a *nodeAllocator) UnaryExpression(op token.Token, idx ast.Idx, operand *ast.Expression) *ast.UnaryExpression {
	n := a.unaryExpr.make()
	*n = ast.UnaryExpression{Operator: op, Idx: idx, Operand: operand}
	return n
}

func (a *nodeAllocator) ConditionalExpression(ifIdx ast.Idx, test, consequent, alternate *ast.Expression) *ast.ConditionalExpression {
	n := a.condExpr.make()
	*n = ast.ConditionalExpression{If: ifIdx, Test: test, Consequent: consequent, Alternate: alternate}
	return n
}

func (a *nodeAllocator) LetExpression(letIdx ast.Idx, name *ast.Identifier, value, body *ast.Expression) *ast.LetExpression {
	n := a.letExpr.make()
	*n = ast.LetExpression{Let: letIdx, Name: name, Value: value, Body: body}
	return n
}

func (a *nodeAllocator) FunctionLiteral(funIdx ast.Idx, param *ast.Identifier, body *ast.Expression) *ast.FunctionLiteral {
	n := a.funcLit.make()
	*n = ast.FunctionLiteral{Fun: funIdx, Param: param, Body: body}
	return n
}

func (a *nodeAllocator) CallExpression(callee, argument *ast.Expression) *ast.CallExpression {
	n := a.callExpr.make()
	*n = ast.CallExpression{Callee: callee, Argument: argument}
	return n
}

func (a *nodeAllocator) MemberExpression(object *ast.Expression, property *ast.Identifier) *ast.MemberExpression {
	n := a.memberExp.make()
	*n = ast.MemberExpression{Object: object, Property: property}
	return n
}

func (a *nodeAllocator) RecordLiteral(leftBrace, rightBrace ast.Idx, fields []ast.RecordField) *ast.RecordLiteral {
	n := a.recordLit.make()
	*n = ast.RecordLiteral{LeftBrace: leftBrace, RightBrace: rightBrace, Fields: fields}
	return n
}

func (a *nodeAllocator) ArrayLiteral(leftBracket, rightBracket ast.Idx, value ast.Expressions) *ast.ArrayLiteral {
	n := a.arrLit.make()
	*n = ast.ArrayLiteral{LeftBracket: leftBracket, RightBracket: rightBracket, Value: value}
	return n
}

func (a *nodeAllocator) InvalidExpression(from, to ast.Idx) *ast.InvalidExpression {
	n := a.invalidEx.make()
	*n = ast.InvalidExpression{From: from, To: to}
	return n
}
