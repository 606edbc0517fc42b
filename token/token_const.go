package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof
	Comment

	Number

	// String part tokens. String covers a literal without interpolation.
	// A literal with interpolation is delivered as
	// StringHead (StringMiddle)* StringTail, with one expression between
	// consecutive parts.
	String
	StringHead   // opening delimiter up to the first `%{`
	StringMiddle // `}` up to the next `%{`
	StringTail   // `}` up to the closing delimiter

	Plus     // +
	Minus    // -
	Multiply // *
	Slash    // /
	Concat   // ++

	LogicalAnd // &&
	LogicalOr  // ||

	Equal          // ==
	NotEqual       // !=
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Assign // =
	Not    // !

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	DoubleArrow      // =>

	Identifier
	Boolean
	Null

	Let
	In
	If
	Then
	Else
	Fun
)

var token2string = [...]string{
	Illegal:          "Illegal",
	Eof:              "Eof",
	Comment:          "Comment",
	Number:           "Number",
	String:           "String",
	StringHead:       "StringHead",
	StringMiddle:     "StringMiddle",
	StringTail:       "StringTail",
	Boolean:          "Boolean",
	Null:             "null",
	Identifier:       "Identifier",
	Plus:             "+",
	Minus:            "-",
	Multiply:         "*",
	Slash:            "/",
	Concat:           "++",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Equal:            "==",
	NotEqual:         "!=",
	Less:             "<",
	Greater:          ">",
	LessOrEqual:      "<=",
	GreaterOrEqual:   ">=",
	Assign:           "=",
	Not:              "!",
	LeftParenthesis:  "(",
	LeftBracket:      "[",
	LeftBrace:        "{",
	Comma:            ",",
	Period:           ".",
	RightParenthesis: ")",
	RightBracket:     "]",
	RightBrace:       "}",
	DoubleArrow:      "=>",
	Let:              "let",
	In:               "in",
	If:               "if",
	Then:             "then",
	Else:             "else",
	Fun:              "fun",
}

var keywordTable = map[string]Token{
	"let":   Let,
	"in":    In,
	"if":    If,
	"then":  Then,
	"else":  Else,
	"fun":   Fun,
	"true":  Boolean,
	"false": Boolean,
	"null":  Null,
}
