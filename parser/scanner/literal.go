package scanner

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// ParseExpression is the capability ScanLiteral uses to step over one
// interpolated expression. It is called at the first byte after the
// interpolation marker and must return the offset of the `}` that closes
// the interpolation. Brace balancing for constructs that contain their own
// braces (records, nested literals) is the expression grammar's business;
// the scanner only checks the final brace is where the capability says.
type ParseExpression func(at ast.Idx) (end ast.Idx, err error)

// Segment is one piece of a scanned literal: a run of literal text, or
// the source range of an interpolated expression.
type Segment struct {
	// From and To bound the segment in the source. For interpolation
	// segments they bound the expression between the marker and the
	// closing brace.
	From, To ast.Idx
	// Text is the unescaped literal content, meaningful when Interp is
	// false.
	Text   string
	Interp bool
}

// ScanLiteral scans a whole string literal body in one call, invoking
// parse at each interpolation. at points just past the opening delimiter
// (after `"`, or after `m%..%"`); fence is the percent fence width, zero
// for a simple literal.
//
// Returns the segments in source order and the offset just past the
// closing delimiter. Empty text runs produce no segment. A literal that
// cannot be fully scanned yields no segments; errors recovered during
// scanning (such as invalid escapes) are joined into err alongside the
// completed segment list. Errors returned by parse propagate unchanged.
func ScanLiteral(src string, at ast.Idx, fence int, parse ParseExpression) ([]Segment, ast.Idx, error) {
	var errs error
	s := NewScanner(src, &errs)
	s.src.SetPosition(at)

	var segments []Segment

	sub, done := token.StringHead, token.String
	for {
		s.Token.Idx0 = s.src.Offset()
		textFrom := s.src.Offset()

		var kind token.Token
		if fence == 0 {
			kind = s.readSimplePart(sub, done)
		} else {
			kind = s.readMultilinePart(fence, sub, done)
		}
		if kind == token.Undetermined {
			return nil, s.src.Offset(), errs
		}

		if s.Str != "" {
			segments = append(segments, Segment{
				From: textFrom,
				To:   s.textEnd(kind, fence),
				Text: s.Str,
			})
		}
		if kind == done {
			return segments, s.src.Offset(), errs
		}

		exprFrom := s.src.Offset()
		end, err := parse(exprFrom)
		if err != nil {
			return nil, end, err
		}
		if end < exprFrom || end >= s.src.EndOffset() || s.src.ReadPosition(end) != '}' {
			return nil, end, malformedInterpolation(exprFrom, end)
		}
		segments = append(segments, Segment{From: exprFrom, To: end, Interp: true})

		s.src.SetPosition(end + 1)
		sub, done = token.StringMiddle, token.StringTail
	}
}

// textEnd reconstructs where the literal text of the part just scanned
// ended, from the current cursor position and what stopped the part.
func (s *Scanner) textEnd(kind token.Token, fence int) ast.Idx {
	switch kind {
	case token.StringHead, token.StringMiddle:
		if fence == 0 {
			return s.src.Offset() - 2 // %{
		}
		return s.src.Offset() - ast.Idx(fence) - 1 // %..%{
	default:
		return s.src.Offset() - ast.Idx(fence) - 1 // " or "%..%
	}
}
