package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sesh/internal/lexer"
	"sesh/internal/source"
	"sesh/internal/token"
)

// dump renders tokens one per line as "Kind start..end".
func dump(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%v %s\n", tok.Kind, tok.Span.Range())
	}
	return b.String()
}

// check lexes src and compares the dump with want (leading tabs and blank
// lines in want are ignored so expectations can be indented).
func check(t *testing.T, src, want string) *lexer.Sink {
	t.Helper()
	tokens, sink := lexer.Lex(src)
	got := dump(tokens)
	if got != trimExpect(want) {
		t.Fatalf("tokens for %q:\ngot:\n%s\nwant:\n%s", src, got, trimExpect(want))
	}
	return sink
}

func trimExpect(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func kinds(src string) []token.Kind {
	tokens, _ := lexer.Lex(src)
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(src)
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
}

func expectNoErrors(t *testing.T, sink *lexer.Sink) {
	t.Helper()
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
}

func TestPunctuationAndOperators(t *testing.T) {
	sink := check(t, "()[]:=,|+-*/^%&||!", `
		OpenParen 0..1
		CloseParen 1..2
		OpenBracket 2..3
		CloseBracket 3..4
		Colon 4..5
		Equals 5..6
		Comma 6..7
		Pipe 7..8
		Add 8..9
		Sub 9..10
		Mul 10..11
		Div 11..12
		Pow 12..13
		Rem 13..14
		Unknown 14..15
		Or 15..17
		Not 17..18
	`)
	expectNoErrors(t, sink)
}

func TestKeywordsAndTypeNames(t *testing.T) {
	sink := check(t, "let fn if else for in while String Int Float Bool Size Duration Date Time DateTime", `
		LetKw 0..3
		Whitespace 3..4
		FnKw 4..6
		Whitespace 6..7
		IfKw 7..9
		Whitespace 9..10
		ElseKw 10..14
		Whitespace 14..15
		ForKw 15..18
		Whitespace 18..19
		InKw 19..21
		Whitespace 21..22
		WhileKw 22..27
		Whitespace 27..28
		StringTy 28..34
		Whitespace 34..35
		IntTy 35..38
		Whitespace 38..39
		FloatTy 39..44
		Whitespace 44..45
		BoolTy 45..49
		Whitespace 49..50
		SizeTy 50..54
		Whitespace 54..55
		DurationTy 55..63
		Whitespace 63..64
		DateTy 64..68
		Whitespace 68..69
		TimeTy 69..73
		Whitespace 73..74
		DateTimeTy 74..82
	`)
	expectNoErrors(t, sink)
}

func TestIdents(t *testing.T) {
	check(t, "abc d le letf", `
		Ident 0..3
		Whitespace 3..4
		Ident 4..5
		Whitespace 5..6
		Ident 6..8
		Whitespace 8..9
		Ident 9..13
	`)
}

func TestIdentSymbols(t *testing.T) {
	tokens, _ := lexer.Lex("foo bar foo let")
	if tokens[0].Sym != tokens[4].Sym {
		t.Fatalf("repeated identifier interned twice: %d vs %d", tokens[0].Sym, tokens[4].Sym)
	}
	if tokens[0].Sym == tokens[2].Sym {
		t.Fatal("distinct identifiers share a symbol")
	}
	if tokens[2].Sym.String() != "bar" {
		t.Fatalf("Sym.String() = %q, want bar", tokens[2].Sym.String())
	}
	if tokens[6].Kind != token.LetKw || tokens[6].Sym != 0 {
		t.Fatalf("keyword should carry no symbol: %+v", tokens[6])
	}
}

func TestUnicodeIdents(t *testing.T) {
	check(t, "π _x 日本 x1 _", `
		Ident 0..1
		Whitespace 1..2
		Ident 2..4
		Whitespace 4..5
		Ident 5..7
		Whitespace 7..8
		Ident 8..10
		Whitespace 10..11
		Ident 11..12
	`)
}

func TestBoolLiterals(t *testing.T) {
	expectKinds(t, "true false truex True",
		token.Bool, token.Whitespace, token.Bool, token.Whitespace, token.Ident, token.Whitespace, token.Ident)
}

func TestTrivia(t *testing.T) {
	check(t, "x // note\n\t \r\n// end", `
		Ident 0..1
		Whitespace 1..2
		Comment 2..9
		Newline 9..10
		Whitespace 10..13
		Newline 13..14
		Comment 14..20
	`)
}

func TestUnicodeWhitespace(t *testing.T) {
	check(t, "\u00a0\u3000x\u2028y", `
		Whitespace 0..2
		Ident 2..3
		Whitespace 3..4
		Ident 4..5
	`)
}

func TestSlashIsDivUnlessDoubled(t *testing.T) {
	expectKinds(t, "a/b", token.Ident, token.Div, token.Ident)
	expectKinds(t, "a//b", token.Ident, token.Comment)
	expectKinds(t, "/", token.Div)
}

func TestPipeAndAmpersand(t *testing.T) {
	expectKinds(t, "|||", token.Or, token.Pipe)
	expectKinds(t, "&&&", token.And, token.Unknown)
	expectKinds(t, "&", token.Unknown)
	expectKinds(t, "a | b", token.Ident, token.Whitespace, token.Pipe, token.Whitespace, token.Ident)
}

func TestUnknownCharacters(t *testing.T) {
	sink := check(t, "@#.;~\xff", `
		Unknown 0..1
		Unknown 1..2
		Unknown 2..3
		Unknown 3..4
		Unknown 4..5
		Unknown 5..6
	`)
	expectNoErrors(t, sink)
}

func TestNextAfterEOF(t *testing.T) {
	lx := lexer.New(source.NewFile("t.sel", []byte("x")))
	if _, _, ok := lx.Next(); !ok {
		t.Fatal("expected one token")
	}
	for i := 0; i < 3; i++ {
		if tok, err, ok := lx.Next(); ok || err != nil {
			t.Fatalf("Next after EOF returned %v, %v, %v", tok, err, ok)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, sink := lexer.Lex("")
	if len(tokens) != 0 || sink.HasErrors() {
		t.Fatalf("empty input produced %v / %v", tokens, sink.Errors())
	}
}

func TestSpansCarryFileID(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("first.sel", []byte("a"))
	id := fs.AddVirtual("second.sel", []byte("b \"c"))
	tokens, sink := lexer.LexFile(fs.Get(id))
	for _, tok := range tokens {
		if tok.Span.File != id {
			t.Fatalf("token %v has file %d, want %d", tok.Kind, tok.Span.File, id)
		}
	}
	if got := sink.Errors()[0].Primary().File; got != id {
		t.Fatalf("error span file = %d, want %d", got, id)
	}
}
