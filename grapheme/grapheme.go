// Package grapheme counts and slices strings by extended grapheme cluster
// (UAX #29), the unit a reader perceives as one character. A multi-code-
// point emoji sequence, a combining-mark stack or a regional-indicator
// pair each count as one; bytes, UTF-16 units and code points are never
// the unit.
package grapheme

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Length returns the number of extended grapheme clusters in s, in a
// single pass without materializing the clusters.
func Length(s string) int {
	n := 0
	g := graphemes.FromString(s)
	for g.Next() {
		n++
	}
	return n
}

// Clusters returns the grapheme clusters of s in order. The returned
// strings are slices of s.
func Clusters(s string) []string {
	var out []string
	g := graphemes.FromString(s)
	for g.Next() {
		out = append(out, g.Value())
	}
	return out
}

// Slice returns the substring covering clusters [start, end). ok is false
// when the range is inverted or out of bounds. Clusters tile the string,
// so the result is a contiguous slice of s.
func Slice(s string, start, end int) (string, bool) {
	if start < 0 || end < start {
		return "", false
	}

	from, to := -1, -1
	if start == 0 {
		from = 0
	}
	if end == 0 {
		to = 0
	}

	idx, off := 0, 0
	g := graphemes.FromString(s)
	for g.Next() {
		idx++
		off += len(g.Value())
		if idx == start {
			from = off
		}
		if idx == end {
			to = off
		}
	}
	if from < 0 || to < 0 {
		return "", false
	}
	return s[from:to], true
}
