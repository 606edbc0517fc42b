package token

import (
	"strconv"
)

// Token is the set of lexical tokens in the configuration language.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding strength of a binary operator token,
// higher binding tighter. Zero means t is not a binary operator.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equal, NotEqual:
		return 3
	case Less, Greater, LessOrEqual, GreaterOrEqual:
		return 4
	case Concat:
		return 5
	case Plus, Minus:
		return 6
	case Multiply, Slash:
		return 7
	}
	return 0
}

// IsRightAssociative reports whether a binary operator groups to the
// right, as `++` does.
func (t Token) IsRightAssociative() bool {
	return t == Concat
}

// LiteralKeyword returns the keyword token for literal, or 0 if literal is
// not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	t, ok := keywordTable[literal]
	return t, ok
}

// IsStringPart reports whether t is one of the string literal part tokens
// produced while scanning a (possibly interpolated) string.
func IsStringPart(t Token) bool {
	switch t {
	case String, StringHead, StringMiddle, StringTail:
		return true
	}
	return false
}
