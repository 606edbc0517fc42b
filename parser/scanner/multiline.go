package scanner

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// tryReadMultilineOpen attempts to scan a multiline string opener at an
// `m`: the letter, one or more `%`, then `"`. On success the first string
// part is scanned and the token's Fence records the percent count. If the
// pattern does not complete the cursor is rewound and the `m` is left to
// be scanned as an identifier.
func (s *Scanner) tryReadMultilineOpen() (token.Token, bool) {
	c := s.Checkpoint()

	s.ConsumeByte() // m
	fence := 0
	for s.AdvanceIfByteEquals('%') {
		fence++
	}
	if fence == 0 || !s.AdvanceIfByteEquals('"') {
		s.Rewind(c)
		return 0, false
	}

	s.Token.Fence = fence
	return s.readMultilinePart(fence, token.StringHead, token.String), true
}

// readMultilinePart scans one part of a multiline literal with the given
// fence width. Content is verbatim: no escape sequences exist inside a
// percent fence. The part ends at the closing delimiter (`"` plus fence
// percents) or at an interpolation marker (fence percents plus `{`).
//
// At a quote, closing detection wins over interpolation detection, with
// one carve-out: a run of at least fence percents immediately followed by
// `{` is an interpolation marker, so a quote in front of it is content.
// A longer run after a quote with no brace closes, the surplus staying
// behind as source text after the literal.
func (s *Scanner) readMultilinePart(fence int, sub, done token.Token) token.Token {
	contentStart := s.src.Offset()

	for {
		b, ok := s.src.PeekByte()
		if !ok {
			s.error(unterminatedMultilineString(fence, s.Token.Idx0, s.src.Offset()))
			return token.Undetermined
		}

		switch b {
		case '"':
			run := s.src.PercentRunAt(s.src.Offset() + 1)
			if run >= fence && !s.isInterpolationRun(s.src.Offset()+1, run, fence) {
				s.Str = s.src.FromPositionToCurrent(contentStart)
				s.src.SetPosition(s.src.Offset() + 1 + ast.Idx(fence))
				return done
			}
			s.ConsumeByte()

		case '%':
			runStart := s.src.Offset()
			run := s.src.PercentRunAt(runStart)
			after := runStart + ast.Idx(run)
			if s.isInterpolationRun(runStart, run, fence) {
				// The last fence percents plus the brace open the
				// interpolation; excess percents before them are content.
				cut := runStart + ast.Idx(run-fence)
				s.Str = s.src.Slice(contentStart, cut)
				s.src.SetPosition(after + 1)
				return sub
			}
			s.src.SetPosition(after)

		default:
			s.src.NextByteUnchecked()
		}
	}
}

// isInterpolationRun reports whether the percent run starting at runStart
// is at least fence wide and immediately followed by `{`.
func (s *Scanner) isInterpolationRun(runStart ast.Idx, run, fence int) bool {
	if run < fence {
		return false
	}
	after := runStart + ast.Idx(run)
	return after < s.src.EndOffset() && s.src.ReadPosition(after) == '{'
}
