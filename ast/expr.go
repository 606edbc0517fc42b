package ast

import "github.com/cloudyluna/nickel/token"

type (
	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	UnaryExpression struct {
		Idx      Idx
		Operator token.Token
		Operand  *Expression
	}

	// ConditionalExpression is `if Test then Consequent else Alternate`.
	ConditionalExpression struct {
		If         Idx
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	// LetExpression binds Name to Value inside Body.
	LetExpression struct {
		Let   Idx
		Name  *Identifier
		Value *Expression
		Body  *Expression
	}

	// FunctionLiteral is a single-parameter function, `fun Param => Body`.
	// Multi-parameter functions are written curried.
	FunctionLiteral struct {
		Fun   Idx
		Param *Identifier
		Body  *Expression
	}

	// CallExpression applies Callee to a single Argument. Application is
	// juxtaposition, so `f x y` parses as Call(Call(f, x), y).
	CallExpression struct {
		Callee   *Expression
		Argument *Expression
	}

	// MemberExpression is static field access, `Object.Property`.
	MemberExpression struct {
		Object   *Expression
		Property *Identifier
	}

	RecordLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Fields     []RecordField
	}

	// RecordField is one `key = value` entry. Key is an Identifier for
	// plain fields or a string literal (possibly interpolated) for quoted
	// fields, whose name is computed when the record is built.
	RecordField struct {
		Key   *Expression
		Value *Expression
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}
)

func (*BinaryExpression) _expr()      {}
func (*UnaryExpression) _expr()       {}
func (*ConditionalExpression) _expr() {}
func (*LetExpression) _expr()         {}
func (*FunctionLiteral) _expr()       {}
func (*CallExpression) _expr()        {}
func (*MemberExpression) _expr()      {}
func (*RecordLiteral) _expr()         {}
func (*ArrayLiteral) _expr()          {}
func (*InvalidExpression) _expr()     {}
