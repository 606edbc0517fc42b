package scanner

import (
	"unicode/utf8"
	"unsafe"

	"github.com/cloudyluna/nickel/ast"
)

// Source is a cursor over the input text. Reads go through an unsafe base
// pointer so that slicing out token text never copies or re-checks bounds
// the scanner has already established. The backing string must outlive the
// Source and every slice taken from it.
type Source struct {
	base unsafe.Pointer
	pos  ast.Idx
	len  ast.Idx
}

func NewSource(src string) Source {
	return Source{
		base: unsafe.Pointer(unsafe.StringData(src)),
		len:  ast.Idx(len(src)),
	}
}

func (s *Source) EOF() bool {
	return s.pos >= s.len
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return s.len
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) ReadPosition(pos ast.Idx) byte {
	return *(*byte)(unsafe.Add(s.base, pos))
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.PeekByteUnchecked(), true
}

func (s *Source) PeekByteUnchecked() byte {
	return *(*byte)(unsafe.Add(s.base, s.pos))
}

func (s *Source) PeekTwoBytes() ([2]byte, bool) {
	if s.len-s.pos >= 2 {
		return *(*[2]byte)(unsafe.Add(s.base, s.pos)), true
	}
	return [2]byte{}, false
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := *(*byte)(unsafe.Add(s.base, s.pos))
	s.pos++
	return b
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) PeekRune() (rune, bool) {
	b, ok := s.PeekByte()
	if !ok {
		return 0, false
	}
	if b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str(s.pos, s.len-s.pos))
	return r, true
}

func (s *Source) NextRune() (rune, bool) {
	r, ok := s.PeekRune()
	if !ok {
		return 0, false
	}
	s.pos += ast.Idx(utf8.RuneLen(r))
	return r, true
}

// PercentRunAt counts the consecutive `%` bytes starting at pos.
func (s *Source) PercentRunAt(pos ast.Idx) int {
	n := 0
	for pos < s.len && s.ReadPosition(pos) == '%' {
		n++
		pos++
	}
	return n
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str(pos, s.pos-pos)
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str(from, to-from)
}

func (s *Source) str(from, n ast.Idx) string {
	if n == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Add(s.base, from)), int(n))
}
