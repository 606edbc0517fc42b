package scanner

import (
	"errors"
	"fmt"

	"github.com/cloudyluna/nickel/ast"
)

// Failure classes of the string literal subsystem. Positioned errors
// produced by the scanner, parser and evaluator wrap one of these, so
// callers can match with errors.Is regardless of which layer reported.
var (
	ErrUnterminatedLiteral    = errors.New("unterminated literal")
	ErrMalformedInterpolation = errors.New("malformed interpolation")
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
	ErrInvalidEscape          = errors.New("invalid escape sequence")
)

// Error is a scan error with the source range it covers.
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

func unterminatedString(start, end ast.Idx) Error {
	return Error{
		kind:    ErrUnterminatedLiteral,
		Message: "Unterminated string literal",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultilineString(fence int, start, end ast.Idx) Error {
	return Error{
		kind:    ErrUnterminatedLiteral,
		Message: fmt.Sprintf("Unterminated multiline string (missing closing `\"` followed by %d `%%`)", fence),
		Start:   start,
		End:     end,
	}
}

func invalidEscapeSequence(c rune, start, end ast.Idx) Error {
	return Error{
		kind:    ErrInvalidEscape,
		Message: fmt.Sprintf("Invalid escape sequence `\\%c`", c),
		Start:   start,
		End:     end,
	}
}

func malformedInterpolation(start, end ast.Idx) Error {
	return Error{
		kind:    ErrMalformedInterpolation,
		Message: "Malformed interpolation: expected `}` closing the interpolated expression",
		Start:   start,
		End:     end,
	}
}

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return Error{
		kind:    nil,
		Message: fmt.Sprintf("Invalid character `%c`", c),
		Start:   start,
		End:     end,
	}
}

func invalidNumberEnd(start, end ast.Idx) Error {
	return Error{
		kind:    nil,
		Message: "Invalid characters after number",
		Start:   start,
		End:     end,
	}
}
