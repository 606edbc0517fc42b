package scanner

import (
	"strings"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// readSimplePart scans one part of a simple double-quoted literal. The
// opening `"` (or the `}` closing an interpolation) has already been
// consumed. Returns sub when stopping at a `%{` interpolation marker and
// done at the closing quote; the cooked content lands in s.Str.
//
// The fast path keeps the cursor on raw source and returns a sub-slice.
// The first escape switches to a string builder.
func (s *Scanner) readSimplePart(sub, done token.Token) token.Token {
	contentStart := s.src.Offset()

	for {
		b, ok := s.src.PeekByte()
		if !ok {
			s.error(unterminatedString(s.Token.Idx0, s.src.Offset()))
			return token.Undetermined
		}

		switch b {
		case '"':
			s.Str = s.src.FromPositionToCurrent(contentStart)
			s.ConsumeByte()
			return done

		case '%':
			// Interpolation is exactly `%{`; a lone percent is content.
			if two, ok := s.src.PeekTwoBytes(); ok && two[1] == '{' {
				s.Str = s.src.FromPositionToCurrent(contentStart)
				s.ConsumeByte()
				s.ConsumeByte()
				return sub
			}
			s.ConsumeByte()

		case '\\':
			return s.readSimplePartEscaped(contentStart, sub, done)

		default:
			s.src.NextByteUnchecked()
		}
	}
}

// readSimplePartEscaped continues scanning a simple literal part through a
// string builder once an escape has been seen.
func (s *Scanner) readSimplePartEscaped(contentStart ast.Idx, sub, done token.Token) token.Token {
	soFar := s.src.FromPositionToCurrent(contentStart)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.src.PeekByte()
		if !ok {
			s.error(unterminatedString(s.Token.Idx0, s.src.Offset()))
			return token.Undetermined
		}

		switch b {
		case '"':
			s.Str = str.String()
			s.ConsumeByte()
			return done

		case '%':
			if two, ok := s.src.PeekTwoBytes(); ok && two[1] == '{' {
				s.Str = str.String()
				s.ConsumeByte()
				s.ConsumeByte()
				return sub
			}
			str.WriteByte('%')
			s.ConsumeByte()

		case '\\':
			s.ConsumeByte()
			s.readEscapeSequence(str)

		default:
			str.WriteByte(s.src.NextByteUnchecked())
		}
	}
}

// readEscapeSequence decodes one escape sequence, the backslash already
// consumed. On an unknown escape the error is recorded and the escaped
// character is kept without its backslash.
func (s *Scanner) readEscapeSequence(str *strings.Builder) {
	start := s.src.Offset() - 1

	b, ok := s.src.PeekByte()
	if !ok {
		s.error(unterminatedString(s.Token.Idx0, s.src.Offset()))
		return
	}

	switch b {
	case '"', '\\', '%':
		str.WriteByte(b)
		s.ConsumeByte()
	case 'n':
		str.WriteByte('\n')
		s.ConsumeByte()
	case 't':
		str.WriteByte('\t')
		s.ConsumeByte()
	case 'r':
		str.WriteByte('\r')
		s.ConsumeByte()
	default:
		r := s.ConsumeRune()
		s.error(invalidEscapeSequence(r, start, s.src.Offset()))
		str.WriteRune(r)
	}
}
