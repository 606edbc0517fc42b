package parser

import "github.com/cloudyluna/nickel/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Values use a binding-power encoding where even values represent
// left-associative operators and odd values represent right-associative
// operators. The Pratt loop uses a single comparison (lbp <= minBP) and the
// recursive call passes lbp ^ 1 as the new minimum. The XOR flips even↔odd:
//
//   - Left-assoc  (even lbp): recursive min = lbp+1 (odd)  → same-level breaks
//   - Right-assoc (odd  lbp): recursive min = lbp-1 (even) → same-level continues
//
// See: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 2  // ||          (left-assoc)
	PrecedenceLogicalAnd Precedence = 4  // &&          (left-assoc)
	PrecedenceEquals     Precedence = 6  // == !=       (left-assoc)
	PrecedenceCompare    Precedence = 8  // < > <= >=   (left-assoc)
	PrecedenceConcat     Precedence = 11 // ++          (right-assoc)
	PrecedenceAdd        Precedence = 12 // + -         (left-assoc)
	PrecedenceMultiply   Precedence = 14 // * /         (left-assoc)
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.Concat] = PrecedenceConcat
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
}

// kindToPrecedence returns the left binding power for a token kind, a
// single indexed load with no branches.
func kindToPrecedence(kind token.Token) Precedence {
	return tokenPrecedence[kind]
}
