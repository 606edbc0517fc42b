package generator

import (
	"testing"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/parser"
	"github.com/cloudyluna/nickel/token"
)

func render(t *testing.T, src string) string {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Failed to parse input: %v", err)
	}
	return Generate(expr)
}

func TestLiteralForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`false`, `false`},
		{`3.25`, `3.25`},
		{`1e3`, `1e3`},
		{`total-count'`, `total-count'`},
		{`"hello"`, `"hello"`},
		{`""`, `""`},
		{`"say \"hi\""`, `"say \"hi\""`},
		{`"a\tb\nc"`, `"a\tb\nc"`},
		{`"50%"`, `"50\%"`},
		{`"100\%{"`, `"100\%{"`},
		{`[]`, `[]`},
		{`[1,2,3]`, `[1, 2, 3]`},
		{`{}`, `{}`},
		{`{a=1,b=2}`, `{ a = 1, b = 2 }`},
		{`{ "two words" = true }`, `{ "two words" = true }`},
		{`{ "p%{n}" = true }`, `{ "p%{n}" = true }`},
	}

	for _, tt := range tests {
		got := render(t, tt.in)
		if got != tt.want {
			t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.in, tt.want, got)
		}
	}
}

// Multiline literals have no printed form of their own: they come out as
// simple-quoted strings with the escapes re-applied.
func TestMultilineRendersSimpleQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`m%"hello"%`, `"hello"`},
		{"m%\"\n  a:\n    b\n\"%", `"a:\n  b"`},
		{`m%%"fifty: 50%{x}"%%`, `"fifty: 50\%{x}"`},
		{`m%"v: %{x}"%`, `"v: %{x}"`},
		{"m%\"\n  a: %{x}\n  b\n\"%", `"a: %{x}\nb"`},
	}

	for _, tt := range tests {
		got := render(t, tt.in)
		if got != tt.want {
			t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.in, tt.want, got)
		}
	}
}

func TestParenthesization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "grouped sum under product keeps parens",
			input:    `(a + b) * c`,
			expected: `(a + b) * c`,
		},
		{
			name:     "parens dropped when structure needs none",
			input:    `(a * b) + c`,
			expected: `a * b + c`,
		},
		{
			name:     "right operand at same precedence keeps parens",
			input:    `a - (b - c)`,
			expected: `a - (b - c)`,
		},
		{
			name:     "left associative chain prints bare",
			input:    `a - b - c`,
			expected: `a - b - c`,
		},
		{
			name:     "concat chain groups to the right bare",
			input:    `a ++ b ++ c`,
			expected: `a ++ b ++ c`,
		},
		{
			name:     "left-grouped concat keeps parens",
			input:    `(a ++ b) ++ c`,
			expected: `(a ++ b) ++ c`,
		},
		{
			name:     "comparisons inside logic need no parens",
			input:    `a < b && c < d`,
			expected: `a < b && c < d`,
		},
		{
			name:     "negated conjunction",
			input:    `!(a && b)`,
			expected: `!(a && b)`,
		},
		{
			name:     "negation binds tighter than conjunction",
			input:    `!a && b`,
			expected: `!a && b`,
		},
		{
			name:     "negated sum",
			input:    `-(a + b)`,
			expected: `-(a + b)`,
		},
		{
			name:     "negated application stays bare",
			input:    `-f x`,
			expected: `-f x`,
		},
		{
			name:     "conditional as right operand",
			input:    `1 + (if c then a else b)`,
			expected: `1 + (if c then a else b)`,
		},
		{
			name:     "conditional as left operand",
			input:    `(if c then a else b) + 1`,
			expected: `(if c then a else b) + 1`,
		},
		{
			name:     "function literal called immediately",
			input:    `(fun x => x) 1`,
			expected: `(fun x => x) 1`,
		},
		{
			name:     "application argument grouped",
			input:    `f (g x)`,
			expected: `f (g x)`,
		},
		{
			name:     "curried application stays flat",
			input:    `f x y`,
			expected: `f x y`,
		},
		{
			name:     "member access binds tighter than application",
			input:    `f a.b`,
			expected: `f a.b`,
		},
		{
			name:     "field access on a call result",
			input:    `(f x).y`,
			expected: `(f x).y`,
		},
		{
			name:     "unary argument grouped",
			input:    `f (-1)`,
			expected: `f (-1)`,
		},
		{
			name:     "let as operand",
			input:    `(let x = 1 in x) + 2`,
			expected: `(let x = 1 in x) + 2`,
		},
		{
			name:     "let nested in a let value needs no parens",
			input:    `let x = let y = 1 in y in x`,
			expected: `let x = let y = 1 in y in x`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.input)
			if got != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, got)
			}
		})
	}
}

// Negative number literals only exist after simplification; the printer
// must parenthesize them wherever a bare `-` would re-parse as an operator.
func TestNegativeNumberLiteral(t *testing.T) {
	neg := func() *ast.Expression {
		return &ast.Expression{Expr: &ast.NumberLiteral{Value: -3}}
	}

	call := &ast.Expression{Expr: &ast.CallExpression{
		Callee:   &ast.Expression{Expr: &ast.Identifier{Name: "f"}},
		Argument: neg(),
	}}
	if got := Generate(call); got != "f (-3)" {
		t.Errorf("call argument = %q; want %q", got, "f (-3)")
	}

	member := &ast.Expression{Expr: &ast.MemberExpression{
		Object:   neg(),
		Property: &ast.Identifier{Name: "abs"},
	}}
	if got := Generate(member); got != "(-3).abs" {
		t.Errorf("member object = %q; want %q", got, "(-3).abs")
	}

	sum := &ast.Expression{Expr: &ast.BinaryExpression{
		Operator: token.Plus,
		Left:     neg(),
		Right:    &ast.Expression{Expr: &ast.NumberLiteral{Value: 1}},
	}}
	if got := Generate(sum); got != "-3 + 1" {
		t.Errorf("binary operand = %q; want %q", got, "-3 + 1")
	}
}

func TestRoundTripFixedPoint(t *testing.T) {
	sources := []string{
		`let config = { port = 8080, host = "localhost" } in config.port`,
		`if n < 0 then -n else n`,
		`fun x => fun y => x ++ y`,
		`std.string.length "héllo"`,
		`"port: %{std.to_string port}"`,
		`[1, "two", [true, null]]`,
		`f (g x) (h y)`,
		`a + b * c - d / e`,
		`!(a == b) || c`,
		`m%"x: %{v}"%`,
		`"has \"quotes\" and \\ and \%"`,
	}

	for _, src := range sources {
		first := render(t, src)
		second := render(t, first)
		if first != second {
			t.Errorf("not a fixed point\nInput:  %s\nFirst:  %s\nSecond: %s", src, first, second)
		}
	}
}
