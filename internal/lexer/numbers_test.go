package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"sesh/internal/diag"
	"sesh/internal/lexer"
	"sesh/internal/source"
	"sesh/internal/testkit"
	"sesh/internal/token"
)

func TestNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "Int 0..1"},
		{"1_000", "Int 0..5"},
		{"5_", "Int 0..2"},
		{"3.14", "Float 0..4"},
		{"0.5_5", "Float 0..5"},
		{"42kb", "Size 0..4"},
		{"2gib", "Size 0..4"},
		{"1.5mb", "Size 0..5"},
		{"10s", "Duration 0..3"},
		{"1.5ms", "Duration 0..5"},
		{"3day", "Duration 0..4"},
		{"5kb2", "Size 0..3\nInt 3..4"},
		{"7 s", "Int 0..1\nWhitespace 1..2\nIdent 2..3"},
	}
	for _, tc := range cases {
		sink := check(t, tc.src, tc.want)
		expectNoErrors(t, sink)
	}
}

func TestFloatWithoutFractional(t *testing.T) {
	sink := check(t, "3.", "Float 0..2")
	errs := sink.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	var fe *lexer.FloatWithoutFractional
	if !errors.As(errs[0], &fe) {
		t.Fatalf("error is %T, want *FloatWithoutFractional", errs[0])
	}
	if fe.Span.Range() != "0..2" {
		t.Fatalf("error span = %s, want 0..2", fe.Span.Range())
	}
}

func TestFloatWithoutFractionalStopsScanning(t *testing.T) {
	// the number ends at the dot: no suffix and no second fraction
	sink := check(t, "1.x 12..3", `
		Float 0..2
		Ident 2..3
		Whitespace 3..4
		Float 4..7
		Unknown 7..8
		Int 8..9
	`)
	errs := sink.Errors()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if got := errs[1].Primary().Range(); got != "4..7" {
		t.Fatalf("second error span = %s, want 4..7", got)
	}
}

func TestUnknownNumericSuffix(t *testing.T) {
	cases := []struct {
		src    string
		kind   token.Kind
		suffix string
		span   string
	}{
		{"7sec", token.Int, "sec", "1..4"},
		{"1.5xyz", token.Float, "xyz", "3..6"},
		{"1abc", token.Int, "abc", "1..4"},
		{"12é", token.Int, "é", "2..3"},
		{"3KB", token.Int, "KB", "1..3"},
		{"9m", token.Int, "m", "1..2"},
	}
	for _, tc := range cases {
		tokens, sink := lexer.Lex(tc.src)
		if len(tokens) != 1 {
			t.Fatalf("%q: got %d tokens, want 1: %s", tc.src, len(tokens), dump(tokens))
		}
		if tokens[0].Kind != tc.kind || tokens[0].Span.End != uint32(len([]rune(tc.src))) {
			t.Fatalf("%q: token %v %s", tc.src, tokens[0].Kind, tokens[0].Span.Range())
		}
		if sink.Len() != 1 {
			t.Fatalf("%q: got %d errors, want 1", tc.src, sink.Len())
		}
		var se *lexer.UnknownNumericSuffix
		if !errors.As(sink.Errors()[0], &se) {
			t.Fatalf("%q: error is %T", tc.src, sink.Errors()[0])
		}
		if se.Suffix != tc.suffix || se.Span.Range() != tc.span {
			t.Fatalf("%q: suffix %q at %s, want %q at %s", tc.src, se.Suffix, se.Span.Range(), tc.suffix, tc.span)
		}
	}
}

func TestEverySuffix(t *testing.T) {
	for _, sfx := range lexer.SizeSuffixes() {
		expectKinds(t, "12"+sfx, token.Size)
		expectKinds(t, "1.25"+sfx, token.Size)
	}
	for _, sfx := range lexer.DurationSuffixes() {
		expectKinds(t, "12"+sfx, token.Duration)
		expectKinds(t, "1.25"+sfx, token.Duration)
	}
	if got := len(lexer.SizeSuffixes()) + len(lexer.DurationSuffixes()); got != 14 {
		t.Fatalf("suffix count = %d, want 14", got)
	}
}

func TestSuffixListsAreCopies(t *testing.T) {
	s := lexer.SizeSuffixes()
	s[0] = "zz"
	if lexer.SizeSuffixes()[0] != "b" {
		t.Fatal("SizeSuffixes exposes internal slice")
	}
}

func TestUnterminatedString(t *testing.T) {
	sink := check(t, `"abc`, "String 0..4")
	errs := sink.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	var ue *lexer.UnterminatedString
	if !errors.As(errs[0], &ue) || ue.Span.Range() != "0..1" {
		t.Fatalf("error = %#v, want UnterminatedString at 0..1", errs[0])
	}
}

func TestStrings(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`""`, "String 0..2"},
		{`"a\"b"`, "String 0..6"},
		{`"\\"`, "String 0..4"},
		{`"\n"`, "String 0..4"},
		{"\"a\nb\"", "String 0..5"},
		{`"héllo" x`, "String 0..7\nWhitespace 7..8\nIdent 8..9"},
		{`"a""b"`, "String 0..3\nString 3..6"},
	}
	for _, tc := range cases {
		expectNoErrors(t, check(t, tc.src, tc.want))
	}
}

func TestEscapedQuoteAtEOF(t *testing.T) {
	sink := check(t, `x "abc\"`, "Ident 0..1\nWhitespace 1..2\nString 2..8")
	if sink.Len() != 1 || sink.Errors()[0].Primary().Range() != "2..3" {
		t.Fatalf("errors = %v", sink.Errors())
	}
}

func TestErrorMessages(t *testing.T) {
	_, a := lexer.Lex(`"x`)
	_, b := lexer.Lex("1.")
	_, c := lexer.Lex("2q")
	cases := []struct {
		err   lexer.Error
		code  diag.Code
		msg   string
		label string
	}{
		{a.Errors()[0], diag.LexUnterminatedString, "unterminated string literal", "string starts here"},
		{b.Errors()[0], diag.LexFloatWithoutFractional, "float literal is missing its fractional part", "expected a digit after `.`"},
		{c.Errors()[0], diag.LexUnknownNumericSuffix, "unknown numeric suffix `q`", "unknown suffix"},
	}
	for _, tc := range cases {
		if tc.err.Code() != tc.code || tc.err.Error() != tc.msg || tc.err.Label() != tc.label {
			t.Fatalf("got %v %q %q", tc.err.Code(), tc.err.Error(), tc.err.Label())
		}
		if tc.err.Help() == "" {
			t.Fatalf("%v: empty help", tc.code)
		}
		d := tc.err.Diagnostic()
		if d.Severity != diag.SevError || d.Code != tc.code || d.Message != tc.msg || d.Primary != tc.err.Primary() {
			t.Fatalf("diagnostic mismatch: %+v", d)
		}
	}
	help := c.Errors()[0].Help()
	for _, sfx := range append(lexer.SizeSuffixes(), lexer.DurationSuffixes()...) {
		if !strings.Contains(help, sfx) {
			t.Fatalf("help %q does not mention %q", help, sfx)
		}
	}
}

func TestCoverage(t *testing.T) {
	inputs := []string{
		"",
		"let x = 1.5kb + 2 // done\n",
		"\"unterminated",
		"1. 2.x 3..4 5sec 6_7_",
		"fn f(a: Int, b: [String]) | g || !h && i",
		"é日本  \r\n\t",
		"\xff\xfe bad bytes \xc3",
		"@@@###$$$",
		"while true { print(\"a\\\"b\\\\\") }",
		"1.2.3.4",
	}
	for _, src := range inputs {
		tokens, _ := lexer.Lex(src)
		var next uint32
		for i, tok := range tokens {
			if tok.Span.Start != next {
				t.Fatalf("%q: token %d starts at %d, want %d", src, i, tok.Span.Start, next)
			}
			if tok.Span.End <= tok.Span.Start {
				t.Fatalf("%q: token %d has empty span %s", src, i, tok.Span.Range())
			}
			next = tok.Span.End
		}
		file := source.NewFile("t.sel", []byte(src))
		if next != file.RuneLen {
			t.Fatalf("%q: tokens cover %d runes, input has %d", src, next, file.RuneLen)
		}
	}
}

func TestSingleTokenRelex(t *testing.T) {
	// text cut out of a larger input, re-lexed alone
	tests := []struct {
		ctx  string
		text string
		kind token.Kind
	}{
		{"a // c\n", "// c", token.Comment},
		{"a \t\r\n", " \t\r", token.Whitespace},
		{"a\nb", "\n", token.Newline},
		{"a||b", "||", token.Or},
		{"a| |b", "|", token.Pipe},
		{"a&&b", "&&", token.And},
		{"a & b", "&", token.Unknown},
		{"x/2", "/", token.Div},
		{"@1", "@", token.Unknown},
		{"s = \"a\\\"b\" + 1", "\"a\\\"b\"", token.String},
		{"f([1], 2)", "[", token.OpenBracket},
	}
	for _, tt := range tests {
		tokens, _ := lexer.Lex(tt.ctx)
		found := false
		file := source.NewFile("t.sel", []byte(tt.ctx))
		for _, tok := range tokens {
			if tok.Kind == tt.kind && file.Text(tok.Span) == tt.text {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q: no %v token with text %q", tt.ctx, tt.kind, tt.text)
		}
		expectKinds(t, tt.text, tt.kind)
	}

	for _, src := range []string{
		"let x = 1.5kb + 2 // done\n",
		"fn f(a: Int, b: [String]) | g || !h && i",
		"é日本  \r\n\t",
		"\xff\xfe bad bytes \xc3",
		"@@@###$$$ & | ^ % * -",
		"while true { print(\"a\\\"b\\\\\") }",
		"\"closed\" \"open\\\"",
	} {
		file := source.NewFile("t.sel", []byte(src))
		tokens, sink := lexer.LexFile(file)
		if err := testkit.CheckSingleTokenRelex(file, tokens, sink.Errors()); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestKeywordIdentPartition(t *testing.T) {
	for _, kw := range token.Keywords() {
		want, _ := token.LookupKeyword(kw)
		expectKinds(t, kw, want)
		expectKinds(t, kw+"_", token.Ident)
		expectKinds(t, strings.ToUpper(kw[:1])+kw[1:]+"x", token.Ident)
	}
	for _, id := range []string{"lets", "iff", "string", "int", "date_time", "Datetime"} {
		expectKinds(t, id, token.Ident)
	}
}

func TestSinkReport(t *testing.T) {
	_, sink := lexer.Lex("\"a 1.")
	// unterminated string swallows the rest
	if sink.Len() != 1 {
		t.Fatalf("got %d errors", sink.Len())
	}
	_, sink = lexer.Lex("1. 2q \"z")
	bag := diag.NewBag(0)
	sink.Report(diag.BagReporter{Bag: bag})
	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("bag has %d items, want 3", len(items))
	}
	want := []diag.Code{diag.LexFloatWithoutFractional, diag.LexUnknownNumericSuffix, diag.LexUnterminatedString}
	for i, code := range want {
		if items[i].Code != code {
			t.Fatalf("item %d code %v, want %v", i, items[i].Code, code)
		}
	}
}

func TestNilSink(t *testing.T) {
	var s *lexer.Sink
	if s.HasErrors() || s.Len() != 0 || s.Errors() != nil {
		t.Fatal("nil sink should be empty")
	}
	s.Report(diag.NopReporter{})
}
