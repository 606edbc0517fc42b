package scanner

import "github.com/cloudyluna/nickel/token"

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// readNumber scans a decimal literal with optional fraction and exponent.
// The parser converts the lexeme with strconv.
func (s *Scanner) readNumber() token.Token {
	s.consumeDigits()

	if two, ok := s.src.PeekTwoBytes(); ok && two[0] == '.' && isDigit(two[1]) {
		s.ConsumeByte()
		s.consumeDigits()
	}

	if b, ok := s.src.PeekByte(); ok && (b == 'e' || b == 'E') {
		// Consume the exponent only when digits actually follow,
		// otherwise the `e` is left for the malformed-tail check below.
		pos := s.src.Offset() + 1
		if pos < s.src.EndOffset() {
			if c := s.src.ReadPosition(pos); c == '+' || c == '-' {
				pos++
			}
		}
		if pos < s.src.EndOffset() && isDigit(s.src.ReadPosition(pos)) {
			s.ConsumeByte() // e
			if b, ok := s.src.PeekByte(); ok && (b == '+' || b == '-') {
				s.ConsumeByte()
			}
			s.consumeDigits()
		}
	}

	// A number running directly into identifier characters is malformed:
	// report it and swallow the tail so one error covers the whole lexeme.
	if b, ok := s.src.PeekByte(); ok && isIdentifierStart(b) {
		start := s.Token.Idx0
		s.scanIdentifierTail()
		s.error(invalidNumberEnd(start, s.src.Offset()))
	}

	return token.Number
}

func (s *Scanner) consumeDigits() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isDigit(b) {
			return
		}
		s.src.NextByteUnchecked()
	}
}
