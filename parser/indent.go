package parser

import (
	"strings"

	"github.com/cloudyluna/nickel/ast"
)

const noIndent = int(^uint(0) >> 1)

// stripIndent applies the indentation rules of multiline literals to a
// chunk list, in place where possible:
//
//   - The smallest indentation over all content lines is removed from the
//     start of every line. A line counts toward the minimum when it holds
//     non-whitespace text or starts with an interpolated expression;
//     whitespace-only lines and the opening line do not count.
//   - An expression chunk preceded only by indentation records its line's
//     remaining indentation, used at evaluation to re-indent multiline
//     values spliced in its place.
//   - A newline directly after the opening delimiter and a final line of
//     pure indentation before the closing delimiter are dropped.
//
// The returned slice may be shorter than the input when the edge trims
// empty out a chunk.
func stripIndent(chunks []ast.StringChunk) []ast.StringChunk {
	min := measureIndent(chunks)
	if min == noIndent {
		min = 0
	}
	rewriteIndent(chunks, min)
	return trimEdges(chunks)
}

// stripIndentValue applies the same rules to a multiline literal without
// interpolations.
func stripIndentValue(value string) string {
	chunks := stripIndent([]ast.StringChunk{{Literal: value}})
	if len(chunks) == 0 {
		return ""
	}
	return chunks[0].Literal
}

// measureIndent returns the smallest indentation over the lines that count,
// or noIndent when no line does.
func measureIndent(chunks []ast.StringChunk) int {
	min := noIndent

	// blank is true while the current line holds only whitespace so far;
	// pending is that whitespace's width. The opening line starts with
	// blank false so it can never count.
	blank := false
	pending := 0

	for i := range chunks {
		c := &chunks[i]
		if !c.IsText() {
			if blank {
				if pending < min {
					min = pending
				}
				blank = false
			}
			continue
		}
		s := c.Literal
		for j := 0; j < len(s); j++ {
			switch s[j] {
			case '\n':
				blank = true
				pending = 0
			case ' ', '\t':
				if blank {
					pending++
				}
			default:
				if blank {
					if pending < min {
						min = pending
					}
					blank = false
				}
			}
		}
	}
	return min
}

// rewriteIndent removes min indentation characters after every newline and
// records the post-strip indentation on expression chunks that begin a
// line.
func rewriteIndent(chunks []ast.StringChunk, min int) {
	blank := false
	pending := 0
	toSkip := 0

	for i := range chunks {
		c := &chunks[i]
		if !c.IsText() {
			if blank {
				c.Indent = pending - min
				if c.Indent < 0 {
					c.Indent = 0
				}
				blank = false
			} else {
				c.Indent = 0
			}
			toSkip = 0
			continue
		}

		var sb strings.Builder
		sb.Grow(len(c.Literal))
		s := c.Literal
		for j := 0; j < len(s); j++ {
			ch := s[j]
			switch {
			case ch == '\n':
				sb.WriteByte('\n')
				blank = true
				pending = 0
				toSkip = min
			case ch == ' ' || ch == '\t':
				if blank {
					pending++
				}
				if toSkip > 0 {
					toSkip--
				} else {
					sb.WriteByte(ch)
				}
			default:
				blank = false
				toSkip = 0
				sb.WriteByte(ch)
			}
		}
		c.Literal = sb.String()
	}
}

// trimEdges drops the newline right after the opening delimiter and the
// trailing line of pure indentation before the closing one, then removes
// text chunks those trims emptied.
func trimEdges(chunks []ast.StringChunk) []ast.StringChunk {
	if len(chunks) == 0 {
		return chunks
	}

	if c := &chunks[0]; c.IsText() {
		c.Literal = strings.TrimPrefix(c.Literal, "\n")
	}
	if c := &chunks[len(chunks)-1]; c.IsText() {
		if i := strings.LastIndexByte(c.Literal, '\n'); i >= 0 && isAllIndent(c.Literal[i+1:]) {
			c.Literal = c.Literal[:i]
		}
	}

	out := chunks[:0]
	for i := range chunks {
		if chunks[i].IsText() && chunks[i].Literal == "" {
			continue
		}
		out = append(out, chunks[i])
	}
	return out
}

func isAllIndent(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
