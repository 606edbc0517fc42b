package generator

import (
	"strings"

	"github.com/cloudyluna/nickel/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Expr
	parent *state
}

func (s *state) wrap(node ast.Expr) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
	}
}
