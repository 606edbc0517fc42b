package parser

import (
	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// parseStringLiteral parses a string literal of either delimiter kind. The
// scanner delivers literals in parts: a complete String token when there is
// no interpolation, otherwise a StringHead followed by one expression per
// interpolation and StringMiddle/StringTail parts that the parser requests
// back from the scanner one at a time.
func (p *parser) parseStringLiteral() *ast.Expression {
	if p.currentKind() == token.String {
		idx := p.currentOffset()
		fence := p.token.Fence
		raw := p.token.Raw(p.scanner)
		value := p.currentString()
		p.next()

		if fence > 0 {
			value = stripIndentValue(value)
		}
		return p.alloc.Expression(ast.NewStrLitExpr(p.alloc.StringLiteral(idx, value, raw)))
	}
	return p.parseStringChunks()
}

func (p *parser) parseStringChunks() *ast.Expression {
	openQuote := p.currentOffset()
	fence := p.token.Fence

	if p.literalDepth++; p.literalDepth > MaxInterpolationDepth {
		p.literalDepth--
		p.errorRecursionLimit(openQuote, p.token.Idx1)
		from, to := p.token.Idx0, p.token.Idx1
		p.next()
		return p.alloc.Expression(ast.NewInvalidExpr(p.alloc.InvalidExpression(from, to)))
	}
	defer func() { p.literalDepth-- }()

	var (
		chunks     []ast.StringChunk
		closeQuote ast.Idx
	)

loop:
	for {
		kind := p.currentKind()
		text := p.currentString()

		// The delimiter prefix of the part: the opening quote (plus the
		// fence for multiline heads) or the `}` closing an interpolation.
		contentIdx := p.currentOffset() + 1
		if fence > 0 && kind == token.StringHead {
			contentIdx = p.currentOffset() + ast.Idx(fence) + 2
		}

		switch kind {
		case token.StringHead, token.StringMiddle:
			if text != "" {
				chunks = append(chunks, ast.StringChunk{Idx: contentIdx, Literal: text})
			}

			p.next()
			expr := p.parseExpression()
			chunks = append(chunks, ast.StringChunk{Idx: expr.Idx0(), Expr: expr})

			if p.currentKind() != token.RightBrace {
				p.errorMalformedInterpolation(p.currentOffset(), p.token.Idx1)
				return p.alloc.Expression(ast.NewInvalidExpr(p.alloc.InvalidExpression(openQuote, p.token.Idx1)))
			}
			p.token = p.scanner.NextStringPart(fence)

		case token.String, token.StringTail:
			if text != "" {
				chunks = append(chunks, ast.StringChunk{Idx: contentIdx, Literal: text})
			}
			closeQuote = p.token.Idx1 - ast.Idx(1+fence)
			p.next()
			break loop

		default:
			// The scanner failed mid-literal and already reported why
			// (an unterminated literal, typically).
			from := p.token.Idx0
			if p.currentKind() != token.Eof {
				p.next()
			}
			return p.alloc.Expression(ast.NewInvalidExpr(p.alloc.InvalidExpression(openQuote, max(from, openQuote+1))))
		}
	}

	if fence > 0 {
		chunks = stripIndent(chunks)
	}

	node := p.alloc.StringChunks(openQuote, closeQuote, fence, p.alloc.CopyChunks(chunks))
	return p.alloc.Expression(ast.NewStrChunksExpr(node))
}
