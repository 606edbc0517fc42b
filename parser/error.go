package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/parser/scanner"
	"github.com/cloudyluna/nickel/token"
)

// Failure classes, re-exported from the scanner so that callers matching
// with errors.Is need a single import regardless of which layer reported.
var (
	ErrUnterminatedLiteral    = scanner.ErrUnterminatedLiteral
	ErrMalformedInterpolation = scanner.ErrMalformedInterpolation
	ErrRecursionLimitExceeded = scanner.ErrRecursionLimitExceeded
	ErrInvalidEscape          = scanner.ErrInvalidEscape
)

// Error is a parse error with the source range it covers.
type Error struct {
	kind    error
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Unwrap() error {
	return e.kind
}

// SourceRange reports the range the error covers, for diagnostics.
func (e Error) SourceRange() (ast.Idx, ast.Idx) {
	return e.Start, e.End
}

func (p *parser) errorf(start, end ast.Idx, format string, args ...any) {
	p.errors = errors.Join(p.errors, Error{
		Message: fmt.Sprintf(format, args...),
		Start:   start,
		End:     end,
	})
}

func (p *parser) errorUnexpectedToken(kind token.Token) {
	start, end := p.token.Idx0, p.token.Idx1
	switch kind {
	case token.Eof:
		p.errorf(start, end, "Unexpected end of input")
	case token.Identifier:
		p.errorf(start, end, "Unexpected identifier `%s`", p.currentString())
	case token.Number:
		p.errorf(start, end, "Unexpected number")
	case token.String, token.StringHead:
		p.errorf(start, end, "Unexpected string")
	case token.Illegal, token.Undetermined:
		// The scanner already reported the offending input.
	default:
		p.errorf(start, end, "Unexpected token %s", kind.String())
	}
}

func (p *parser) errorMalformedInterpolation(start, end ast.Idx) {
	p.errors = errors.Join(p.errors, Error{
		kind:    scanner.ErrMalformedInterpolation,
		Message: "Malformed interpolation: expected `}` closing the interpolated expression",
		Start:   start,
		End:     end,
	})
}

func (p *parser) errorRecursionLimit(start, end ast.Idx) {
	p.errors = errors.Join(p.errors, Error{
		kind:    scanner.ErrRecursionLimitExceeded,
		Message: fmt.Sprintf("String interpolation nested deeper than %d levels", MaxInterpolationDepth),
		Start:   start,
		End:     end,
	})
}

// RenderError formats err as caret diagnostics pointing into src. Any
// error exposing a SourceRange gets a caret block, which covers scan,
// parse and evaluation errors alike; Parse may aggregate several, and
// each renders as its own block. Errors without position information
// render as plain messages.
func RenderError(src string, err error) string {
	var sb strings.Builder
	renderError(&sb, src, err)
	return strings.TrimRight(sb.String(), "\n")
}

func renderError(sb *strings.Builder, src string, err error) {
	switch e := err.(type) {
	case nil:
	case interface{ SourceRange() (ast.Idx, ast.Idx) }:
		start, end := e.SourceRange()
		renderSpan(sb, src, start, end, err.Error())
	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			renderError(sb, src, sub)
		}
	default:
		sb.WriteString(err.Error())
		sb.WriteByte('\n')
	}
}

func renderSpan(sb *strings.Builder, src string, start, end ast.Idx, msg string) {
	pos := ast.PositionOf(src, start)
	line := ast.LineOf(src, start)

	fmt.Fprintf(sb, "%d:%d: %s\n", pos.Line, pos.Column, msg)
	fmt.Fprintf(sb, "  | %s\n", line)

	// The caret row is measured in display cells, so wide characters
	// (CJK, emoji) before and inside the span keep the carets aligned.
	head := line
	if col := int(start) - lineStartOffset(src, start); col >= 0 && col <= len(line) {
		head = line[:col]
	}
	span := spanWithinLine(src, start, end)

	pad := runewidth.StringWidth(head)
	width := runewidth.StringWidth(span)
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(sb, "  | %s%s\n", strings.Repeat(" ", pad), strings.Repeat("^", width))
}

// lineStartOffset returns the byte offset of the first character of the
// line containing idx.
func lineStartOffset(src string, idx ast.Idx) int {
	off := int(idx)
	if off > len(src) {
		off = len(src)
	}
	if off < 0 {
		off = 0
	}
	return strings.LastIndexByte(src[:off], '\n') + 1
}

// spanWithinLine returns the source text between start and end, truncated
// at the end of start's line.
func spanWithinLine(src string, start, end ast.Idx) string {
	from := int(start)
	to := int(end)
	if from < 0 {
		from = 0
	}
	if to > len(src) {
		to = len(src)
	}
	if to <= from {
		return ""
	}
	span := src[from:to]
	if i := strings.IndexByte(span, '\n'); i >= 0 {
		span = span[:i]
	}
	return span
}
