package scanner

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

type Token struct {
	Kind token.Token

	// Fence is the percent fence width when Kind is a string part from a
	// multiline literal (m%"..."% has fence 1, m%%"..."%% fence 2).
	// Zero for simple literals and every other token.
	Fence int

	Idx0, Idx1 ast.Idx
}

// String returns the cooked text of the token: for string parts the
// unescaped content (without delimiters or interpolation markers), for
// everything else the raw source slice. String part content is held by the
// scanner and is only valid until the next scan call.
func (t Token) String(s *Scanner) string {
	if token.IsStringPart(t.Kind) {
		return s.Str
	}
	return s.src.Slice(t.Idx0, t.Idx1)
}

// Raw returns the raw source text of the token, delimiters included.
func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}
