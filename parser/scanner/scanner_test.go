package scanner_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/cloudyluna/nickel/ast"
	"github.com/cloudyluna/nickel/parser/scanner"
	"github.com/cloudyluna/nickel/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newScanner returns a scanner over src and the destination its errors
// are joined into.
func newScanner(src string) (*scanner.Scanner, *error) {
	var errs error
	return scanner.NewScanner(src, &errs), &errs
}

// scanKinds collects every token kind in src, Eof excluded, and fails
// the test on any scan error. Sources with interpolated strings need
// NextStringPart to resume and cannot be scanned flat.
func scanKinds(t *testing.T, src string) []token.Token {
	t.Helper()
	s, errs := newScanner(src)
	var kinds []token.Token
	for {
		tok := s.Next()
		if tok.Kind == token.Eof {
			break
		}
		kinds = append(kinds, tok.Kind)
		if len(kinds) > 256 {
			t.Fatalf("scanner did not reach Eof scanning %q", src)
		}
	}
	if *errs != nil {
		t.Fatalf("scan %q: %v", src, *errs)
	}
	return kinds
}

// next scans one token and fails the test unless it has the wanted
// kind. The cooked text is captured before further scanning
// invalidates it.
func next(t *testing.T, s *scanner.Scanner, want token.Token) (scanner.Token, string) {
	t.Helper()
	tok := s.Next()
	if tok.Kind != want {
		t.Fatalf("token kind = %v; want %v", tok.Kind, want)
	}
	return tok, tok.String(s)
}

// resume continues string scanning after an interpolation's closing
// brace, the way the parser does.
func resume(t *testing.T, s *scanner.Scanner, fence int, want token.Token) (scanner.Token, string) {
	t.Helper()
	tok := s.NextStringPart(fence)
	if tok.Kind != want {
		t.Fatalf("string part kind = %v; want %v", tok.Kind, want)
	}
	return tok, tok.String(s)
}

// ---------------------------------------------------------------------------
// Operators, punctuation, keywords
// ---------------------------------------------------------------------------

func TestOperatorKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{"x + y * 2", []token.Token{token.Identifier, token.Plus, token.Identifier, token.Multiply, token.Number}},
		{"a ++ b", []token.Token{token.Identifier, token.Concat, token.Identifier}},
		{"a + + b", []token.Token{token.Identifier, token.Plus, token.Plus, token.Identifier}},
		{"= == => != !", []token.Token{token.Assign, token.Equal, token.DoubleArrow, token.NotEqual, token.Not}},
		{"< <= > >=", []token.Token{token.Less, token.LessOrEqual, token.Greater, token.GreaterOrEqual}},
		{"a && b || c", []token.Token{token.Identifier, token.LogicalAnd, token.Identifier, token.LogicalOr, token.Identifier}},
		{"( ) [ ] { } , .", []token.Token{
			token.LeftParenthesis, token.RightParenthesis,
			token.LeftBracket, token.RightBracket,
			token.LeftBrace, token.RightBrace,
			token.Comma, token.Period,
		}},
		{"- /", []token.Token{token.Minus, token.Slash}},
	}

	for _, tt := range tests {
		if got := scanKinds(t, tt.src); !slices.Equal(got, tt.want) {
			t.Errorf("scanKinds(%q) = %v; want %v", tt.src, got, tt.want)
		}
	}
}

func TestKeywordKinds(t *testing.T) {
	got := scanKinds(t, "let in if then else fun true false null")
	want := []token.Token{
		token.Let, token.In, token.If, token.Then, token.Else,
		token.Fun, token.Boolean, token.Boolean, token.Null,
	}
	if !slices.Equal(got, want) {
		t.Errorf("keyword kinds = %v; want %v", got, want)
	}
}

func TestKeywordPrefixedIdentifiers(t *testing.T) {
	// Words that merely start like a keyword stay identifiers.
	words := "letter input iffy theme elsewhere funnel trueish nullable mode m2"
	got := scanKinds(t, words)
	for i, kind := range got {
		if kind != token.Identifier {
			t.Errorf("token %d of %q = %v; want Identifier", i, words, kind)
		}
	}
	if len(got) != 10 {
		t.Errorf("token count = %d; want 10", len(got))
	}
}

func TestKebabIdentifiers(t *testing.T) {
	s, _ := newScanner("base-url total-count'")
	_, text := next(t, s, token.Identifier)
	if text != "base-url" {
		t.Errorf("first identifier = %q; want \"base-url\"", text)
	}
	_, text = next(t, s, token.Identifier)
	if text != "total-count'" {
		t.Errorf("second identifier = %q; want \"total-count'\"", text)
	}
}

func TestCommentsSkipped(t *testing.T) {
	got := scanKinds(t, "a # the rest is ignored\nb")
	want := []token.Token{token.Identifier, token.Identifier}
	if !slices.Equal(got, want) {
		t.Errorf("kinds = %v; want %v", got, want)
	}
	if got := scanKinds(t, "# nothing but a comment"); len(got) != 0 {
		t.Errorf("comment-only source produced %v", got)
	}
}

func TestNumberRaw(t *testing.T) {
	s, _ := newScanner("3.25")
	tok, _ := next(t, s, token.Number)
	if raw := tok.Raw(s); raw != "3.25" {
		t.Errorf("number raw = %q; want \"3.25\"", raw)
	}
}

func TestInvalidCharacter(t *testing.T) {
	s, errs := newScanner("a ? b")
	next(t, s, token.Identifier)
	tok := s.Next()
	if tok.Kind != token.Illegal {
		t.Fatalf("token kind = %v; want Illegal", tok.Kind)
	}
	if *errs == nil {
		t.Error("invalid character recorded no error")
	}
}

// ---------------------------------------------------------------------------
// Simple string literals
// ---------------------------------------------------------------------------

func TestSimpleString(t *testing.T) {
	s, errs := newScanner(`"hello"`)
	tok, text := next(t, s, token.String)
	if text != "hello" {
		t.Errorf("cooked text = %q; want \"hello\"", text)
	}
	if tok.Fence != 0 {
		t.Errorf("fence = %d; want 0", tok.Fence)
	}
	next(t, s, token.Eof)
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\rlf"`, "cr\rlf"},
		{`"quote \" inside"`, `quote " inside`},
		{`"back\\slash"`, `back\slash`},
		{`"100\%{"`, "100%{"}, // escaped percent never opens interpolation
	}

	for _, tt := range tests {
		s, errs := newScanner(tt.src)
		_, text := next(t, s, token.String)
		if text != tt.want {
			t.Errorf("cooked %s = %q; want %q", tt.src, text, tt.want)
		}
		if *errs != nil {
			t.Errorf("scan %s: %v", tt.src, *errs)
		}
	}
}

func TestLonePercentIsContent(t *testing.T) {
	s, errs := newScanner(`"100% sure"`)
	_, text := next(t, s, token.String)
	if text != "100% sure" {
		t.Errorf("cooked text = %q; want \"100%% sure\"", text)
	}
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestInvalidEscape(t *testing.T) {
	s, errs := newScanner(`"a\qb"`)
	_, text := next(t, s, token.String)
	if text != "aqb" {
		t.Errorf("cooked text = %q; want \"aqb\"", text)
	}
	if !errors.Is(*errs, scanner.ErrInvalidEscape) {
		t.Errorf("errors = %v; want ErrInvalidEscape", *errs)
	}
}

func TestUnterminatedString(t *testing.T) {
	s, errs := newScanner(`"abc`)
	if tok := s.Next(); tok.Kind != token.Undetermined {
		t.Fatalf("token kind = %v; want Undetermined", tok.Kind)
	}
	if !errors.Is(*errs, scanner.ErrUnterminatedLiteral) {
		t.Errorf("errors = %v; want ErrUnterminatedLiteral", *errs)
	}
}

func TestInterpolationParts(t *testing.T) {
	s, errs := newScanner(`"a%{x}b%{y}c"`)

	_, text := next(t, s, token.StringHead)
	if text != "a" {
		t.Errorf("head text = %q; want \"a\"", text)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)

	_, text = resume(t, s, 0, token.StringMiddle)
	if text != "b" {
		t.Errorf("middle text = %q; want \"b\"", text)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)

	_, text = resume(t, s, 0, token.StringTail)
	if text != "c" {
		t.Errorf("tail text = %q; want \"c\"", text)
	}
	next(t, s, token.Eof)
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestInterpolationEmptyText(t *testing.T) {
	s, _ := newScanner(`"%{x}"`)
	_, text := next(t, s, token.StringHead)
	if text != "" {
		t.Errorf("head text = %q; want empty", text)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)
	_, text = resume(t, s, 0, token.StringTail)
	if text != "" {
		t.Errorf("tail text = %q; want empty", text)
	}
}

// ---------------------------------------------------------------------------
// Multiline string literals
// ---------------------------------------------------------------------------

func TestMultilineBasic(t *testing.T) {
	s, errs := newScanner(`m%"hello"%`)
	tok, text := next(t, s, token.String)
	if tok.Fence != 1 {
		t.Errorf("fence = %d; want 1", tok.Fence)
	}
	if text != "hello" {
		t.Errorf("cooked text = %q; want \"hello\"", text)
	}
	next(t, s, token.Eof)
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMultilineFenceWidths(t *testing.T) {
	tests := []struct {
		src   string
		fence int
		want  string
	}{
		{`m%%"a"%%`, 2, "a"},
		{`m%%%"b"%%%`, 3, "b"},
	}

	for _, tt := range tests {
		s, _ := newScanner(tt.src)
		tok, text := next(t, s, token.String)
		if tok.Fence != tt.fence {
			t.Errorf("fence of %s = %d; want %d", tt.src, tok.Fence, tt.fence)
		}
		if text != tt.want {
			t.Errorf("cooked %s = %q; want %q", tt.src, text, tt.want)
		}
	}
}

func TestMultilineNoEscapes(t *testing.T) {
	// Backslashes are plain content inside a percent fence.
	s, errs := newScanner(`m%"a\nb"%`)
	_, text := next(t, s, token.String)
	if text != `a\nb` {
		t.Errorf("cooked text = %q; want %q", text, `a\nb`)
	}
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMultilineInnerQuotes(t *testing.T) {
	s, _ := newScanner(`m%"she said "hi""%`)
	_, text := next(t, s, token.String)
	if text != `she said "hi"` {
		t.Errorf("cooked text = %q; want %q", text, `she said "hi"`)
	}
}

func TestMultilineQuoteAloneIsContent(t *testing.T) {
	s, _ := newScanner(`m%"""%`)
	_, text := next(t, s, token.String)
	if text != `"` {
		t.Errorf("cooked text = %q; want %q", text, `"`)
	}
}

func TestMultilineQuoteBeforeMarkerIsContent(t *testing.T) {
	// The fence-wide run after the quote belongs to `%{`, so the quote
	// stays content instead of closing the literal.
	s, errs := newScanner(`m%"a"%{x}b"%`)

	_, text := next(t, s, token.StringHead)
	if text != `a"` {
		t.Errorf("head text = %q; want %q", text, `a"`)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)

	_, text = resume(t, s, 1, token.StringTail)
	if text != "b" {
		t.Errorf("tail text = %q; want \"b\"", text)
	}
	next(t, s, token.Eof)
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMultilineSurplusPercentsBeforeMarker(t *testing.T) {
	// With fence 1, `%%{` is one literal percent followed by the marker.
	s, _ := newScanner(`m%"a%%{x}"%`)
	_, text := next(t, s, token.StringHead)
	if text != "a%" {
		t.Errorf("head text = %q; want \"a%%\"", text)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)
	resume(t, s, 1, token.StringTail)
}

func TestMultilineWideSurplusBeforeMarker(t *testing.T) {
	// Two percents of surplus degrade to content, not just one.
	s, _ := newScanner(`m%"a%%%{x}"%`)
	_, text := next(t, s, token.StringHead)
	if text != "a%%" {
		t.Errorf("head text = %q; want \"a%%%%\"", text)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)
	resume(t, s, 1, token.StringTail)
}

func TestMultilineQuoteBeforeLongMarkerIsContent(t *testing.T) {
	// A quote in front of a longer-than-fence run that ends in `{` is
	// content, like the surplus percents after it.
	s, errs := newScanner(`m%%""%%%{s}" w"%%`)

	_, text := next(t, s, token.StringHead)
	if text != `"%` {
		t.Errorf("head text = %q; want %q", text, `"%`)
	}
	next(t, s, token.Identifier)
	next(t, s, token.RightBrace)

	_, text = resume(t, s, 2, token.StringTail)
	if text != `" w` {
		t.Errorf("tail text = %q; want %q", text, `" w`)
	}
	next(t, s, token.Eof)
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMultilineShortRunStaysContent(t *testing.T) {
	// One percent cannot interpolate through a fence of two.
	s, errs := newScanner(`m%%"50%{x}"%%`)
	tok, text := next(t, s, token.String)
	if tok.Fence != 2 {
		t.Errorf("fence = %d; want 2", tok.Fence)
	}
	if text != "50%{x}" {
		t.Errorf("cooked text = %q; want \"50%%{x}\"", text)
	}
	if *errs != nil {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMultilineLongRunClosesWithSurplus(t *testing.T) {
	// A run longer than the fence with no brace after it closes the
	// literal; the surplus percent stays behind in the source.
	s, _ := newScanner(`m%"x"%%`)
	_, text := next(t, s, token.String)
	if text != "x" {
		t.Errorf("cooked text = %q; want \"x\"", text)
	}
	if tok := s.Next(); tok.Kind != token.Illegal {
		t.Errorf("leftover token kind = %v; want Illegal", tok.Kind)
	}
}

func TestMultilineOpenerDegradesToIdentifier(t *testing.T) {
	// `m` with percents but no quote rewinds to a plain identifier; the
	// percent is left for the next scan.
	s, _ := newScanner("m%x")
	_, text := next(t, s, token.Identifier)
	if text != "m" {
		t.Errorf("first identifier = %q; want \"m\"", text)
	}
	if tok := s.Next(); tok.Kind != token.Illegal {
		t.Fatalf("token kind = %v; want Illegal", tok.Kind)
	}
	_, text = next(t, s, token.Identifier)
	if text != "x" {
		t.Errorf("second identifier = %q; want \"x\"", text)
	}
}

func TestMultilineUnterminated(t *testing.T) {
	for _, src := range []string{`m%"abc`, `m%"abc"`, `m%%"abc"%`} {
		s, errs := newScanner(src)
		if tok := s.Next(); tok.Kind != token.Undetermined {
			t.Errorf("scan %s: token kind = %v; want Undetermined", src, tok.Kind)
			continue
		}
		if !errors.Is(*errs, scanner.ErrUnterminatedLiteral) {
			t.Errorf("scan %s: errors = %v; want ErrUnterminatedLiteral", src, *errs)
		}
	}
}

// ---------------------------------------------------------------------------
// ScanLiteral
// ---------------------------------------------------------------------------

// stepOver stands in for the expression parser: every interpolated
// expression in these sources is a single character wide.
func stepOver(at ast.Idx) (ast.Idx, error) {
	return at + 1, nil
}

func TestScanLiteralSimple(t *testing.T) {
	src := `"a%{x}b"`
	segs, end, err := scanner.ScanLiteral(src, 1, 0, stepOver)
	if err != nil {
		t.Fatalf("ScanLiteral: %v", err)
	}
	if end != ast.Idx(len(src)) {
		t.Errorf("end = %d; want %d", end, len(src))
	}
	want := []scanner.Segment{
		{From: 1, To: 2, Text: "a"},
		{From: 4, To: 5, Interp: true},
		{From: 6, To: 7, Text: "b"},
	}
	if !slices.Equal(segs, want) {
		t.Errorf("segments = %+v; want %+v", segs, want)
	}
}

func TestScanLiteralFenced(t *testing.T) {
	src := `m%"x%{a}y"%`
	segs, end, err := scanner.ScanLiteral(src, 3, 1, stepOver)
	if err != nil {
		t.Fatalf("ScanLiteral: %v", err)
	}
	if end != ast.Idx(len(src)) {
		t.Errorf("end = %d; want %d", end, len(src))
	}
	want := []scanner.Segment{
		{From: 3, To: 4, Text: "x"},
		{From: 6, To: 7, Interp: true},
		{From: 8, To: 9, Text: "y"},
	}
	if !slices.Equal(segs, want) {
		t.Errorf("segments = %+v; want %+v", segs, want)
	}
}

func TestScanLiteralMalformed(t *testing.T) {
	// The callback reports an end that is not a closing brace.
	_, _, err := scanner.ScanLiteral(`"a%{x]"`, 1, 0, stepOver)
	if !errors.Is(err, scanner.ErrMalformedInterpolation) {
		t.Errorf("err = %v; want ErrMalformedInterpolation", err)
	}
}

func TestScanLiteralPropagatesParseError(t *testing.T) {
	sentinel := errors.New("boom")
	_, _, err := scanner.ScanLiteral(`"%{x}"`, 1, 0, func(ast.Idx) (ast.Idx, error) {
		return 0, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("err = %v; want the callback's error", err)
	}
}

func TestScanLiteralUnterminated(t *testing.T) {
	segs, _, err := scanner.ScanLiteral(`"abc`, 1, 0, stepOver)
	if segs != nil {
		t.Errorf("segments = %+v; want none", segs)
	}
	if !errors.Is(err, scanner.ErrUnterminatedLiteral) {
		t.Errorf("err = %v; want ErrUnterminatedLiteral", err)
	}
}
