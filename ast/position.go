package ast

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column in source text. Column counts
// runes, not bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// PositionOf converts the byte offset idx into a Position. Offsets past the
// end of src report the position just after the final character.
func PositionOf(src string, idx Idx) Position {
	off := int(idx)
	if off > len(src) {
		off = len(src)
	}
	if off < 0 {
		off = 0
	}
	before := src[:off]
	line := strings.Count(before, "\n") + 1
	start := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(before[start:]) + 1,
	}
}

// LineOf returns the full text of the line containing idx, without its
// trailing newline.
func LineOf(src string, idx Idx) string {
	off := int(idx)
	if off > len(src) {
		off = len(src)
	}
	if off < 0 {
		off = 0
	}
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		return src[start:]
	}
	return src[start : start+end]
}
