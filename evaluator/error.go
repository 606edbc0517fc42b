package evaluator

import (
	"fmt"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/parser/scanner"
)

// Error is an evaluation error carrying the source range of the failing
// expression. Errors in a failure class wrap the class sentinel, so
// errors.Is works across the scanner, parser and evaluator.
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

func errorf(start, end ast.Idx, format string, args ...any) error {
	return Error{
		Message: fmt.Sprintf(format, args...),
		Start:   start,
		End:     end,
	}
}

func notDisplayable(v Value, start, end ast.Idx) error {
	return Error{
		kind:    scanner.ErrMalformedInterpolation,
		Message: fmt.Sprintf("Interpolated value must render as text; a %s cannot", v.TypeName()),
		Start:   start,
		End:     end,
	}
}

func recursionLimit(at ast.Idx) error {
	return Error{
		kind:    scanner.ErrRecursionLimitExceeded,
		Message: fmt.Sprintf("Evaluation exceeded the depth limit of %d", MaxEvalDepth),
		Start:   at,
		End:     at + 1,
	}
}
