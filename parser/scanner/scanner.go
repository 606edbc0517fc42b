package scanner

import (
	"errors"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/token"
)

// Scanner turns source text into tokens. String literals are delivered in
// parts: the caller receives a StringHead, drives the expression parser
// through the interpolation, then calls NextStringPart to resume.
type Scanner struct {
	Token Token

	// Str holds the cooked content of the most recent string part token:
	// escape-processed for simple literals, verbatim for multiline parts.
	// Valid until the next scan call.
	Str string

	src  Source
	errs *error
}

func NewScanner(src string, errs *error) *Scanner {
	return &Scanner{
		src:  NewSource(src),
		errs: errs,
	}
}

func (s *Scanner) error(err Error) {
	*s.errs = errors.Join(*s.errs, err)
}

type Checkpoint struct {
	pos ast.Idx
	tok Token
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.src.Offset(),
		tok: s.Token,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.Token = c.tok
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) EOF() bool {
	return s.src.EOF()
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

// SetPosition repositions the cursor. Used by external drivers such as
// ScanLiteral; the parser itself never needs it.
func (s *Scanner) SetPosition(pos ast.Idx) {
	s.src.SetPosition(pos)
}

func (s *Scanner) Next() Token {
	s.Token.Fence = 0

	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		// ---- Whitespace ----
		case ' ', '\t', '\n', '\r':
			s.ConsumeByte()
			continue

		// ---- Comments ----
		case '#':
			s.skipLineComment()
			continue

		// ---- Single-character punctuation / delimiters ----
		case '(':
			s.ConsumeByte()
			s.Token.Kind = token.LeftParenthesis
		case ')':
			s.ConsumeByte()
			s.Token.Kind = token.RightParenthesis
		case '[':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBracket
		case ']':
			s.ConsumeByte()
			s.Token.Kind = token.RightBracket
		case '{':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBrace
		case '}':
			s.ConsumeByte()
			s.Token.Kind = token.RightBrace
		case ',':
			s.ConsumeByte()
			s.Token.Kind = token.Comma
		case '.':
			s.ConsumeByte()
			s.Token.Kind = token.Period

		// ---- Operators / multi-character punctuation ----
		case '+':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('+') {
				s.Token.Kind = token.Concat
			} else {
				s.Token.Kind = token.Plus
			}

		case '-':
			s.ConsumeByte()
			s.Token.Kind = token.Minus

		case '*':
			s.ConsumeByte()
			s.Token.Kind = token.Multiply

		case '/':
			s.ConsumeByte()
			s.Token.Kind = token.Slash

		case '!':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.NotEqual
			} else {
				s.Token.Kind = token.Not
			}

		case '=':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.Equal
			} else if s.AdvanceIfByteEquals('>') {
				s.Token.Kind = token.DoubleArrow
			} else {
				s.Token.Kind = token.Assign
			}

		case '<':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.LessOrEqual
			} else {
				s.Token.Kind = token.Less
			}

		case '>':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.GreaterOrEqual
			} else {
				s.Token.Kind = token.Greater
			}

		case '&':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('&') {
				s.Token.Kind = token.LogicalAnd
			} else {
				s.error(invalidCharacter('&', s.Token.Idx0, s.src.Offset()))
				s.Token.Kind = token.Illegal
			}

		case '|':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('|') {
				s.Token.Kind = token.LogicalOr
			} else {
				s.error(invalidCharacter('|', s.Token.Idx0, s.src.Offset()))
				s.Token.Kind = token.Illegal
			}

		// ---- String literals ----
		case '"':
			s.ConsumeByte()
			s.Token.Kind = s.readSimplePart(token.StringHead, token.String)

		// ---- Numeric literals ----
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.Token.Kind = s.readNumber()

		// ---- Identifier start: keyword-leading lowercase letters ----
		case 'e':
			switch s.scanIdentifierTail() {
			case "else":
				s.Token.Kind = token.Else
			default:
				s.Token.Kind = token.Identifier
			}

		case 'f':
			switch s.scanIdentifierTail() {
			case "false":
				s.Token.Kind = token.Boolean
			case "fun":
				s.Token.Kind = token.Fun
			default:
				s.Token.Kind = token.Identifier
			}

		case 'i':
			switch s.scanIdentifierTail() {
			case "if":
				s.Token.Kind = token.If
			case "in":
				s.Token.Kind = token.In
			default:
				s.Token.Kind = token.Identifier
			}

		case 'l':
			switch s.scanIdentifierTail() {
			case "let":
				s.Token.Kind = token.Let
			default:
				s.Token.Kind = token.Identifier
			}

		case 'm':
			// `m` followed by a percent fence and a quote opens a
			// multiline string; anything else is an identifier.
			if kind, ok := s.tryReadMultilineOpen(); ok {
				s.Token.Kind = kind
			} else {
				s.scanIdentifierTail()
				s.Token.Kind = token.Identifier
			}

		case 'n':
			switch s.scanIdentifierTail() {
			case "null":
				s.Token.Kind = token.Null
			default:
				s.Token.Kind = token.Identifier
			}

		case 't':
			switch s.scanIdentifierTail() {
			case "then":
				s.Token.Kind = token.Then
			case "true":
				s.Token.Kind = token.Boolean
			default:
				s.Token.Kind = token.Identifier
			}

		default:
			if isIdentifierStart(b) {
				s.scanIdentifierTail()
				s.Token.Kind = token.Identifier
				break
			}
			start := s.src.Offset()
			r := s.ConsumeRune()
			s.error(invalidCharacter(r, start, s.src.Offset()))
			s.Token.Kind = token.Illegal
		}
		break
	}

	s.Token.Idx1 = s.src.Offset()
	return s.Token
}

// NextStringPart resumes scanning a string literal after an interpolated
// expression. The closing `}` of the interpolation has already been
// consumed as a RightBrace token; the produced StringMiddle/StringTail
// token spans from that brace to the next marker or closing delimiter.
func (s *Scanner) NextStringPart(fence int) Token {
	s.Token.Idx0 = s.src.Offset() - 1 // the `}` the parser just matched
	s.Token.Fence = fence
	if fence == 0 {
		s.Token.Kind = s.readSimplePart(token.StringMiddle, token.StringTail)
	} else {
		s.Token.Kind = s.readMultilinePart(fence, token.StringMiddle, token.StringTail)
	}
	s.Token.Idx1 = s.src.Offset()
	return s.Token
}

func (s *Scanner) skipLineComment() {
	for {
		b, ok := s.src.PeekByte()
		if !ok || b == '\n' {
			return
		}
		s.src.NextByteUnchecked()
	}
}
