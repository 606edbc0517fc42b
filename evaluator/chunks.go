package evaluator

import (
	"strings"

	"github.com/cloudyluna/nickel/ast"
)

// evalChunks assembles an interpolated string literal. Chunks evaluate
// strictly left to right in source order; the first failing chunk aborts
// and reports, leaving later chunks unevaluated.
func (ev *Evaluator) evalChunks(n *ast.StringChunks, env *environment) (Value, error) {
	var sb strings.Builder
	for i := range n.Chunks {
		c := &n.Chunks[i]
		if c.IsText() {
			sb.WriteString(c.Literal)
			continue
		}

		v, err := ev.eval(c.Expr, env)
		if err != nil {
			return nullValue, err
		}
		s, err := ToDisplayString(v, c.Expr.Idx0(), c.Expr.Idx1())
		if err != nil {
			return nullValue, err
		}
		sb.WriteString(reindent(s, c.Indent))
	}
	return stringValue(sb.String()), nil
}

// reindent prefixes every line after the first with the indentation the
// chunk was spliced at, so multiline values stay aligned with their
// splice point.
func reindent(s string, indent int) string {
	if indent <= 0 || !strings.Contains(s, "\n") {
		return s
	}
	pad := strings.Repeat(" ", indent)
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}
