package parser

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/parser/scanner"
	"github.com/cloudyluna/nickel/token"
)

// MaxInterpolationDepth bounds how deeply string literals may nest through
// interpolated expressions before the parser gives up with
// ErrRecursionLimitExceeded. The limit is on literals the parser is inside
// of at once, not on interpolations per literal.
const MaxInterpolationDepth = 128

type parser struct {
	token scanner.Token
	str   string

	scanner *scanner.Scanner

	errors error

	// literalDepth counts the string literals currently being parsed,
	// entered through interpolation.
	literalDepth int

	exprBuf []ast.Expression

	alloc nodeAllocator
}

func newParser(src string) *parser {
	p := &parser{
		str: src,

		alloc: newNodeAllocator(),
	}
	p.scanner = scanner.NewScanner(src, &p.errors)
	return p
}

// Parse parses source text as a single expression, the whole of a program
// in this language. The returned error joins every scan and parse error
// encountered; the expression is non-nil even on error, with invalid
// regions represented by ast.InvalidExpression nodes.
func Parse(src string) (*ast.Expression, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Expression, error) {
	p.next()
	expr := p.parseExpression()
	if p.currentKind() != token.Eof {
		p.errorUnexpectedToken(p.currentKind())
	}
	return expr, p.errors
}

func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.token.Idx0
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}

// finishExprBuf moves the expressions accumulated since mark into an
// arena-backed slice and truncates the shared buffer.
func (p *parser) finishExprBuf(mark int) ast.Expressions {
	out := p.alloc.CopyExpressions(p.exprBuf[mark:])
	p.exprBuf = p.exprBuf[:mark]
	return out
}
