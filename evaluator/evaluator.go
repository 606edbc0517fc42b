// Package evaluator walks parsed expressions down to values. String
// literals with interpolations assemble their segments in source order;
// everything else is a small strict functional language over numbers,
// strings, booleans, null, arrays, records and functions.
package evaluator

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// MaxEvalDepth bounds evaluation nesting, counting every recursive eval
// step including function application, so runaway recursion fails with
// ErrRecursionLimitExceeded instead of exhausting the goroutine stack.
const MaxEvalDepth = 10000

// closure is a user function value: its parameter, body and captured
// environment.
type closure struct {
	param string
	body  *ast.Expression
	env   *environment
}

// builtin is a function implemented in Go. Multi-argument builtins are
// curried, each application returning the next stage.
type builtin struct {
	name string
	fn   func(ev *Evaluator, at ast.Idx, arg Value) (Value, error)
}

// environment is a linked frame of lexical bindings, one binding per
// frame. Lookup walks outward.
type environment struct {
	parent *environment
	name   string
	value  Value
}

func (env *environment) bind(name string, v Value) *environment {
	return &environment{parent: env, name: name, value: v}
}

func (env *environment) lookup(name string) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if e.name == name {
			return e.value, true
		}
	}
	return nullValue, false
}

// Evaluator evaluates expressions against the std environment. A fresh
// one per program; it is not safe for concurrent use.
type Evaluator struct {
	global *environment
	depth  int
}

func New() *Evaluator {
	return &Evaluator{global: defaultEnvironment()}
}

// Evaluate runs expr to a value in a fresh std environment.
func Evaluate(expr *ast.Expression) (Value, error) {
	return New().Evaluate(expr)
}

func (ev *Evaluator) Evaluate(expr *ast.Expression) (Value, error) {
	return ev.eval(expr, ev.global)
}

func (ev *Evaluator) eval(expr *ast.Expression, env *environment) (Value, error) {
	if ev.depth++; ev.depth > MaxEvalDepth {
		ev.depth--
		return nullValue, recursionLimit(expr.Idx0())
	}
	defer func() { ev.depth-- }()

	switch n := expr.Expr.(type) {
	case *ast.NullLiteral:
		return nullValue, nil

	case *ast.BooleanLiteral:
		return boolValue(n.Value), nil

	case *ast.NumberLiteral:
		return numberValue(n.Value), nil

	case *ast.StringLiteral:
		return stringValue(n.Value), nil

	case *ast.StringChunks:
		return ev.evalChunks(n, env)

	case *ast.Identifier:
		if v, ok := env.lookup(n.Name); ok {
			return v, nil
		}
		return nullValue, errorf(n.Idx0(), n.Idx1(), "Unbound identifier `%s`", n.Name)

	case *ast.LetExpression:
		value, err := ev.eval(n.Value, env)
		if err != nil {
			return nullValue, err
		}
		return ev.eval(n.Body, env.bind(n.Name.Name, value))

	case *ast.FunctionLiteral:
		return closureValue(&closure{param: n.Param.Name, body: n.Body, env: env}), nil

	case *ast.ConditionalExpression:
		test, err := ev.eval(n.Test, env)
		if err != nil {
			return nullValue, err
		}
		b, ok := test.AsBool()
		if !ok {
			return nullValue, errorf(n.Test.Idx0(), n.Test.Idx1(),
				"Condition of `if` must be a Bool, got %s", test.TypeName())
		}
		if b {
			return ev.eval(n.Consequent, env)
		}
		return ev.eval(n.Alternate, env)

	case *ast.UnaryExpression:
		return ev.evalUnary(n, env)

	case *ast.BinaryExpression:
		return ev.evalBinary(n, env)

	case *ast.CallExpression:
		callee, err := ev.eval(n.Callee, env)
		if err != nil {
			return nullValue, err
		}
		arg, err := ev.eval(n.Argument, env)
		if err != nil {
			return nullValue, err
		}
		return ev.apply(callee, arg, n.Idx0())

	case *ast.MemberExpression:
		obj, err := ev.eval(n.Object, env)
		if err != nil {
			return nullValue, err
		}
		rec, ok := obj.AsRecord()
		if !ok {
			return nullValue, errorf(n.Idx0(), n.Idx1(),
				"Cannot access field `%s` of a %s", n.Property.Name, obj.TypeName())
		}
		v, ok := rec[n.Property.Name]
		if !ok {
			return nullValue, errorf(n.Property.Idx0(), n.Property.Idx1(),
				"Record has no field `%s`", n.Property.Name)
		}
		return v, nil

	case *ast.RecordLiteral:
		return ev.evalRecord(n, env)

	case *ast.ArrayLiteral:
		elems := make([]Value, len(n.Value))
		for i := range n.Value {
			v, err := ev.eval(&n.Value[i], env)
			if err != nil {
				return nullValue, err
			}
			elems[i] = v
		}
		return arrayValue(elems), nil

	case *ast.InvalidExpression:
		return nullValue, errorf(n.From, n.To, "Cannot evaluate invalid syntax")
	}

	return nullValue, errorf(expr.Idx0(), expr.Idx1(), "Cannot evaluate %T", expr.Expr)
}

func (ev *Evaluator) apply(callee, arg Value, at ast.Idx) (Value, error) {
	switch f := callee.value.(type) {
	case *closure:
		return ev.eval(f.body, f.env.bind(f.param, arg))
	case *builtin:
		return f.fn(ev, at, arg)
	}
	return nullValue, errorf(at, at+1, "Cannot apply a %s as a function", callee.TypeName())
}

func (ev *Evaluator) evalUnary(n *ast.UnaryExpression, env *environment) (Value, error) {
	operand, err := ev.eval(n.Operand, env)
	if err != nil {
		return nullValue, err
	}

	switch n.Operator {
	case token.Minus:
		x, ok := operand.AsNumber()
		if !ok {
			return nullValue, errorf(n.Idx0(), n.Idx1(),
				"Operand of unary `-` must be a Number, got %s", operand.TypeName())
		}
		return numberValue(-x), nil

	case token.Not:
		b, ok := operand.AsBool()
		if !ok {
			return nullValue, errorf(n.Idx0(), n.Idx1(),
				"Operand of `!` must be a Bool, got %s", operand.TypeName())
		}
		return boolValue(!b), nil
	}

	return nullValue, errorf(n.Idx0(), n.Idx1(), "Unknown unary operator %s", n.Operator)
}

func (ev *Evaluator) evalBinary(n *ast.BinaryExpression, env *environment) (Value, error) {
	op := n.Operator

	// && and || decide whether the right side runs at all.
	if op == token.LogicalAnd || op == token.LogicalOr {
		left, err := ev.eval(n.Left, env)
		if err != nil {
			return nullValue, err
		}
		lb, ok := left.AsBool()
		if !ok {
			return nullValue, errorf(n.Left.Idx0(), n.Left.Idx1(),
				"Operands of `%s` must be Bool, got %s", op, left.TypeName())
		}
		if op == token.LogicalAnd && !lb {
			return falseValue, nil
		}
		if op == token.LogicalOr && lb {
			return trueValue, nil
		}
		right, err := ev.eval(n.Right, env)
		if err != nil {
			return nullValue, err
		}
		rb, ok := right.AsBool()
		if !ok {
			return nullValue, errorf(n.Right.Idx0(), n.Right.Idx1(),
				"Operands of `%s` must be Bool, got %s", op, right.TypeName())
		}
		return boolValue(rb), nil
	}

	left, err := ev.eval(n.Left, env)
	if err != nil {
		return nullValue, err
	}
	right, err := ev.eval(n.Right, env)
	if err != nil {
		return nullValue, err
	}

	switch op {
	case token.Concat:
		if ls, ok := left.AsString(); ok {
			rs, ok := right.AsString()
			if !ok {
				return nullValue, errorf(n.Right.Idx0(), n.Right.Idx1(),
					"Cannot concatenate a String with a %s", right.TypeName())
			}
			return stringValue(ls + rs), nil
		}
		if la, ok := left.AsArray(); ok {
			ra, ok := right.AsArray()
			if !ok {
				return nullValue, errorf(n.Right.Idx0(), n.Right.Idx1(),
					"Cannot concatenate an Array with a %s", right.TypeName())
			}
			out := make([]Value, 0, len(la)+len(ra))
			out = append(out, la...)
			out = append(out, ra...)
			return arrayValue(out), nil
		}
		return nullValue, errorf(n.Left.Idx0(), n.Left.Idx1(),
			"Operands of `++` must be String or Array, got %s", left.TypeName())

	case token.Plus, token.Minus, token.Multiply, token.Slash:
		lx, lok := left.AsNumber()
		rx, rok := right.AsNumber()
		if !lok || !rok {
			at := n.Left
			got := left
			if lok {
				at, got = n.Right, right
			}
			return nullValue, errorf(at.Idx0(), at.Idx1(),
				"Operands of `%s` must be Number, got %s", op, got.TypeName())
		}
		switch op {
		case token.Plus:
			return numberValue(lx + rx), nil
		case token.Minus:
			return numberValue(lx - rx), nil
		case token.Multiply:
			return numberValue(lx * rx), nil
		default:
			if rx == 0 {
				return nullValue, errorf(n.Right.Idx0(), n.Right.Idx1(), "Division by zero")
			}
			return numberValue(lx / rx), nil
		}

	case token.Equal, token.NotEqual:
		if left.IsFunction() || right.IsFunction() {
			return nullValue, errorf(n.Idx0(), n.Idx1(), "Cannot compare functions")
		}
		eq := left.Equals(right)
		if op == token.NotEqual {
			eq = !eq
		}
		return boolValue(eq), nil

	case token.Less, token.Greater, token.LessOrEqual, token.GreaterOrEqual:
		if ls, ok := left.AsString(); ok {
			rs, ok := right.AsString()
			if !ok {
				return nullValue, errorf(n.Right.Idx0(), n.Right.Idx1(),
					"Cannot compare a String with a %s", right.TypeName())
			}
			return boolValue(compareOrdered(op, ls, rs)), nil
		}
		lx, lok := left.AsNumber()
		rx, rok := right.AsNumber()
		if !lok || !rok {
			return nullValue, errorf(n.Idx0(), n.Idx1(),
				"Operands of `%s` must both be Number or both String", op)
		}
		return boolValue(compareOrdered(op, lx, rx)), nil
	}

	return nullValue, errorf(n.Idx0(), n.Idx1(), "Unknown operator %s", op)
}

func compareOrdered[T float64 | string](op token.Token, a, b T) bool {
	switch op {
	case token.Less:
		return a < b
	case token.Greater:
		return a > b
	case token.LessOrEqual:
		return a <= b
	default:
		return a >= b
	}
}

func (ev *Evaluator) evalRecord(n *ast.RecordLiteral, env *environment) (Value, error) {
	fields := make(map[string]Value, len(n.Fields))
	for i := range n.Fields {
		f := &n.Fields[i]
		name, err := ev.fieldName(f.Key, env)
		if err != nil {
			return nullValue, err
		}
		if _, dup := fields[name]; dup {
			return nullValue, errorf(f.Key.Idx0(), f.Key.Idx1(), "Duplicate record field `%s`", name)
		}
		value, err := ev.eval(f.Value, env)
		if err != nil {
			return nullValue, err
		}
		fields[name] = value
	}
	return recordValue(fields), nil
}

// fieldName resolves one record field name. Quoted keys evaluate at record
// construction; an interpolated key re-enters full string evaluation.
func (ev *Evaluator) fieldName(key *ast.Expression, env *environment) (string, error) {
	if ident, ok := key.Expr.(*ast.Identifier); ok {
		return ident.Name, nil
	}
	v, err := ev.eval(key, env)
	if err != nil {
		return "", err
	}
	s, ok := v.AsString()
	if !ok {
		return "", errorf(key.Idx0(), key.Idx1(),
			"Record field name must be a String, got %s", v.TypeName())
	}
	return s, nil
}
