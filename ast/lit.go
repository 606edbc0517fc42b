package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Value float64

		Raw *string

		Idx Idx
	}

	// StringLiteral is a string without interpolation, already unescaped.
	// Raw, when set, is the original source text including delimiters.
	StringLiteral struct {
		Value string

		Raw *string

		Idx Idx
	}

	// StringChunks is a string literal containing interpolation. Chunks are
	// kept in source order; evaluation walks them left to right.
	//
	// Fence is the width of the multiline percent fence (m%"..."% has
	// fence 1, m%%"..."%% fence 2). Zero means a simple double-quoted
	// literal.
	StringChunks struct {
		OpenQuote  Idx
		CloseQuote Idx
		Fence      int
		Chunks     []StringChunk
	}

	// StringChunk is either a run of literal text (Expr nil) or an
	// interpolated expression. Indent is the column the chunk was spliced
	// at after indentation stripping; multiline values substituted for the
	// chunk are re-indented by that amount.
	StringChunk struct {
		Idx     Idx
		Literal string
		Expr    *Expression
		Indent  int
	}
)

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
func (*StringChunks) _expr()   {}

// IsText reports whether the chunk is literal text rather than an
// interpolated expression.
func (c *StringChunk) IsText() bool {
	return c.Expr == nil
}
