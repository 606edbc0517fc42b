package scanner

// Identifiers are [A-Za-z_][A-Za-z0-9_'-]*. Dashes and primes are ordinary
// identifier characters, so `total-count` is one name and subtraction
// needs surrounding space.

func isIdentifierStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || isDigit(b) || b == '\'' || b == '-'
}

// scanIdentifierTail consumes an identifier beginning at the current
// position and returns its full lexeme.
func (s *Scanner) scanIdentifierTail() string {
	start := s.src.Offset()
	s.src.NextByteUnchecked()
	for {
		b, ok := s.src.PeekByte()
		if !ok || !isIdentifierPart(b) {
			break
		}
		s.src.NextByteUnchecked()
	}
	return s.src.FromPositionToCurrent(start)
}
